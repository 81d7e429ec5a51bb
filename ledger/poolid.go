// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
)

const (
	// PoolIDLength length of a pool identifier in bytes (pool operator key hash).
	PoolIDLength = 28
)

// PoolID identifies a stake pool to which stake may be delegated.
type PoolID [PoolIDLength]byte

// String implements the stringer interface
func (p PoolID) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// Bytes returns byte slice form of PoolID.
func (p PoolID) Bytes() []byte {
	return p[:]
}

// IsZero returns if PoolID has all zero bytes.
func (p PoolID) IsZero() bool {
	return p == PoolID{}
}

// MarshalJSON implements json.Marshaler.
func (p *PoolID) MarshalJSON() ([]byte, error) {
	if p == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PoolID) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	parsed, err := ParsePoolID(hex)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePoolID convert string presented pool identifier into PoolID type.
func ParsePoolID(s string) (PoolID, error) {
	if len(s) == PoolIDLength*2 {
	} else if len(s) == PoolIDLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return PoolID{}, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return PoolID{}, errors.New("invalid length")
	}

	var p PoolID
	_, err := hex.Decode(p[:], []byte(s))
	if err != nil {
		return PoolID{}, err
	}
	return p, nil
}

// MustParsePoolID convert string presented pool identifier into PoolID type, panic on error.
func MustParsePoolID(s string) PoolID {
	p, err := ParsePoolID(s)
	if err != nil {
		panic(err)
	}
	return p
}

// BytesToPoolID converts bytes slice into PoolID.
// If b is larger than pool ID length, b will be cropped (from the left).
// If b is smaller than pool ID length, b will be extended (from the left).
func BytesToPoolID(b []byte) PoolID {
	var p PoolID
	if len(b) > PoolIDLength {
		b = b[len(b)-PoolIDLength:]
	}
	copy(p[PoolIDLength-len(b):], b)
	return p
}
