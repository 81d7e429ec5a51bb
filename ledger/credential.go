// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// CredentialLength length of a stake credential in bytes (blake2b-224 key hash).
	CredentialLength = 28
)

// StakeCredential identifies a party eligible to register for rewards and
// delegate stake. It is the hash of a stake verification key.
type StakeCredential [CredentialLength]byte

var (
	_ json.Marshaler   = (*StakeCredential)(nil)
	_ json.Unmarshaler = (*StakeCredential)(nil)
)

// String implements stringer
func (c StakeCredential) String() string {
	return "0x" + hex.EncodeToString(c[:])
}

// AbbrevString returns abbrev string presentation.
func (c StakeCredential) AbbrevString() string {
	return fmt.Sprintf("0x%x…%x", c[:4], c[CredentialLength-4:])
}

// Bytes returns byte slice form of StakeCredential.
func (c StakeCredential) Bytes() []byte {
	return c[:]
}

// IsZero returns if StakeCredential has all zero bytes.
func (c StakeCredential) IsZero() bool {
	return c == StakeCredential{}
}

// Compare orders credentials lexicographically by bytes.
// Returns -1, 0 or +1.
func (c StakeCredential) Compare(other StakeCredential) int {
	return bytes.Compare(c[:], other[:])
}

// MarshalJSON implements json.Marshaler.
func (c *StakeCredential) MarshalJSON() ([]byte, error) {
	if c == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *StakeCredential) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	parsed, err := ParseCredential(hex)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCredential convert string presented into StakeCredential type
func ParseCredential(s string) (StakeCredential, error) {
	if len(s) == CredentialLength*2 {
	} else if len(s) == CredentialLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return StakeCredential{}, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return StakeCredential{}, errors.New("invalid length")
	}

	var c StakeCredential
	_, err := hex.Decode(c[:], []byte(s))
	if err != nil {
		return StakeCredential{}, err
	}
	return c, nil
}

// MustParseCredential convert string presented into StakeCredential type, panic on error.
func MustParseCredential(s string) StakeCredential {
	c, err := ParseCredential(s)
	if err != nil {
		panic(err)
	}
	return c
}

// BytesToCredential converts bytes slice into StakeCredential.
// If b is larger than credential length, b will be cropped (from the left).
// If b is smaller than credential length, b will be extended (from the left).
func BytesToCredential(b []byte) StakeCredential {
	var c StakeCredential
	if len(b) > CredentialLength {
		b = b[len(b)-CredentialLength:]
	}
	copy(c[CredentialLength-len(b):], b)
	return c
}
