// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
)

func RandCoin() coin.Coin {
	return coin.Coin(RandUint64N(ledger.MaxCoinSupply + 1))
}

// RandDelta returns a signed amount in [-n, n].
func RandDelta(n uint64) coin.DeltaCoin {
	return coin.DeltaCoin(RandUint64N(2*n+1)) - coin.DeltaCoin(n)
}
