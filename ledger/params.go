// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

// Constants of the ledger protocol.
const (
	// MaxCoinSupply the total amount of lovelace that can ever exist.
	// 45 billion ada, expressed in lovelace.
	MaxCoinSupply uint64 = 45_000_000_000_000_000

	// PortionDenominator the fixed denominator of fractional portions of
	// stake or funds. A portion p represents the fraction p/PortionDenominator.
	PortionDenominator uint64 = 1_000_000_000_000_000
)
