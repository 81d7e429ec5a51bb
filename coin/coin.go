// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package coin provides bounded monetary amounts with checked arithmetic.
//
// A Coin is a non-negative amount of lovelace in [0, ledger.MaxCoinSupply].
// Arithmetic that would leave the range is a typed failure, never a silent
// wraparound: conservation bookkeeping downstream depends on it.
package coin

import (
	"errors"
	"strconv"

	"github.com/domabrown/cardano-ledger/ledger"
)

var (
	// ErrOverflow amount arithmetic exceeded the coin range.
	ErrOverflow = errors.New("coin: amount overflow")
	// ErrUnderflow amount arithmetic fell below zero.
	ErrUnderflow = errors.New("coin: amount underflow")
)

// Coin is a non-negative lovelace amount.
// It can be used as a value without state sharing.
type Coin uint64

// Zero the additive identity.
const Zero = Coin(0)

// Max the largest representable amount.
const Max = Coin(ledger.MaxCoinSupply)

// Add returns c + other, or ErrOverflow if the sum exceeds Max.
func (c Coin) Add(other Coin) (Coin, error) {
	sum := c + other
	if sum < c || sum > Max {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub returns c - other, or ErrUnderflow if other exceeds c.
func (c Coin) Sub(other Coin) (Coin, error) {
	if other > c {
		return 0, ErrUnderflow
	}
	return c - other, nil
}

// AddDelta applies a signed delta to c.
// Fails with ErrUnderflow if the result would be negative and with
// ErrOverflow if it would exceed Max.
func (c Coin) AddDelta(d DeltaCoin) (Coin, error) {
	if d < 0 {
		return c.Sub(Coin(uint64(-d)))
	}
	return c.Add(Coin(uint64(d)))
}

// IsZero returns true if c is the zero amount.
func (c Coin) IsZero() bool {
	return c == 0
}

// Delta converts c into its signed counterpart.
// Always exact: Max fits well within the DeltaCoin range.
func (c Coin) Delta() DeltaCoin {
	return DeltaCoin(c)
}

// String implements Stringer.
func (c Coin) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Coin) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Coin) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return err
	}
	if Coin(v) > Max {
		return ErrOverflow
	}
	*c = Coin(v)
	return nil
}

// Sum folds a mapping of amounts into their checked total.
func Sum[K comparable](m map[K]Coin) (Coin, error) {
	total := Zero
	for _, v := range m {
		var err error
		if total, err = total.Add(v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
