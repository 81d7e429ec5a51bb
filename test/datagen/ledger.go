// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package datagen

import (
	"crypto/rand"

	"github.com/domabrown/cardano-ledger/ledger"
)

func RandCredential() (c ledger.StakeCredential) {
	rand.Read(c[:])
	return
}

func RandPoolID() (p ledger.PoolID) {
	rand.Read(p[:])
	return
}
