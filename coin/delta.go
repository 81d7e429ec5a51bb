// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package coin

import (
	"io"
	"math"
	"strconv"

	"github.com/ethereum/go-ethereum/rlp"
)

// DeltaCoin is a signed lovelace amount. Under checked addition it forms a
// commutative group with identity zero, which is what reward-sum aggregation
// relies on.
type DeltaCoin int64

// Add returns d + other, or ErrOverflow/ErrUnderflow on int64 boundary.
func (d DeltaCoin) Add(other DeltaCoin) (DeltaCoin, error) {
	sum := d + other
	if other > 0 && sum < d {
		return 0, ErrOverflow
	}
	if other < 0 && sum > d {
		return 0, ErrUnderflow
	}
	return sum, nil
}

// Neg returns -d. Fails only on the asymmetric int64 minimum.
func (d DeltaCoin) Neg() (DeltaCoin, error) {
	if d == math.MinInt64 {
		return 0, ErrOverflow
	}
	return -d, nil
}

// IsZero returns true if d is the zero delta.
func (d DeltaCoin) IsZero() bool {
	return d == 0
}

// String implements Stringer.
func (d DeltaCoin) String() string {
	return strconv.FormatInt(int64(d), 10)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d DeltaCoin) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *DeltaCoin) UnmarshalText(text []byte) error {
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return err
	}
	*d = DeltaCoin(v)
	return nil
}

// rlp has no signed integer form, so deltas go on the wire as
// a sign flag plus magnitude.
type deltaRLP struct {
	Neg bool
	Abs uint64
}

// EncodeRLP implements rlp.Encoder.
func (d DeltaCoin) EncodeRLP(w io.Writer) error {
	enc := deltaRLP{}
	if d < 0 {
		enc.Neg = true
		enc.Abs = uint64(-(int64(d) + 1)) + 1 // two's complement safe for MinInt64
	} else {
		enc.Abs = uint64(d)
	}
	return rlp.Encode(w, &enc)
}

// DecodeRLP implements rlp.Decoder.
func (d *DeltaCoin) DecodeRLP(s *rlp.Stream) error {
	var dec deltaRLP
	if err := s.Decode(&dec); err != nil {
		return err
	}
	if dec.Neg {
		if dec.Abs > uint64(math.MaxInt64)+1 {
			return ErrUnderflow
		}
		*d = DeltaCoin(-int64(dec.Abs - 1) - 1)
	} else {
		if dec.Abs > uint64(math.MaxInt64) {
			return ErrOverflow
		}
		*d = DeltaCoin(dec.Abs)
	}
	return nil
}

// SumDelta folds a mapping of signed amounts into their checked total.
func SumDelta[K comparable](m map[K]DeltaCoin) (DeltaCoin, error) {
	total := DeltaCoin(0)
	for _, v := range m {
		var err error
		if total, err = total.Add(v); err != nil {
			return 0, err
		}
	}
	return total, nil
}
