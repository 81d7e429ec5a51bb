// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package portion provides fixed-denominator fractions of stake or funds.
//
// A Portion is an integer numerator over ledger.PortionDenominator. Applying
// a portion to a coin amount is exact integer arithmetic widened through
// uint256; no floating point is involved, so results cannot drift across
// platforms. Only the unit-interval constructor accepts floating input.
package portion

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
)

// Denominator the fixed denominator shared by all portions.
const Denominator = ledger.PortionDenominator

// TooLargeError numerator exceeds the fixed denominator.
type TooLargeError struct {
	Numerator uint64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("portion: numerator %d exceeds denominator %d", e.Numerator, Denominator)
}

// OutOfRangeError unit-interval value outside [0, 1].
type OutOfRangeError struct {
	Value float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("portion: value %v out of unit interval", e.Value)
}

// Portion represents the fraction numerator/Denominator.
// The zero value is the zero portion.
type Portion struct {
	numerator uint64
}

// FromNumerator creates a portion from an integer numerator.
func FromNumerator(n uint64) (Portion, error) {
	if n > Denominator {
		return Portion{}, &TooLargeError{Numerator: n}
	}
	return Portion{numerator: n}, nil
}

// MustFromNumerator creates a portion from an integer numerator, panic on error.
func MustFromNumerator(n uint64) Portion {
	p, err := FromNumerator(n)
	if err != nil {
		panic(err)
	}
	return p
}

// FromUnitInterval creates the nearest portion to a value in [0, 1].
// Ties round away from zero (math.Round). An exact tie cannot actually occur:
// (k+0.5)/Denominator is never binary-representable since the denominator
// carries a factor of 5^15. The convention is still fixed here and pinned by
// test so it cannot drift with the platform.
func FromUnitInterval(x float64) (Portion, error) {
	if math.IsNaN(x) || x < 0 || x > 1 {
		return Portion{}, &OutOfRangeError{Value: x}
	}
	n := uint64(math.Round(x * float64(Denominator)))
	if n > Denominator { // guard against float rounding past the top
		n = Denominator
	}
	return Portion{numerator: n}, nil
}

// Numerator returns the integer numerator.
func (p Portion) Numerator() uint64 {
	return p.numerator
}

// IsZero returns true if p is the zero portion.
func (p Portion) IsZero() bool {
	return p.numerator == 0
}

// ApplyDown returns floor(p * c / Denominator).
func (p Portion) ApplyDown(c coin.Coin) coin.Coin {
	v := new(uint256.Int).SetUint64(p.numerator)
	v.Mul(v, new(uint256.Int).SetUint64(uint64(c)))
	v.Div(v, new(uint256.Int).SetUint64(Denominator))
	return coin.Coin(v.Uint64())
}

// ApplyUp returns ceil(p * c / Denominator).
// For any p and c, ApplyDown(c) <= ApplyUp(c).
func (p Portion) ApplyUp(c coin.Coin) coin.Coin {
	v := new(uint256.Int).SetUint64(p.numerator)
	v.Mul(v, new(uint256.Int).SetUint64(uint64(c)))
	v.AddUint64(v, Denominator-1)
	v.Div(v, new(uint256.Int).SetUint64(Denominator))
	return coin.Coin(v.Uint64())
}

// String implements Stringer.
func (p Portion) String() string {
	return fmt.Sprintf("%d/%d", p.numerator, Denominator)
}
