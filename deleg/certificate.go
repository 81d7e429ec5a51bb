// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package deleg

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
)

// Pot selects the protocol-level fund pot an instantaneous reward is drawn from.
type Pot uint8

const (
	// PotReserves the monetary reserves pot.
	PotReserves Pot = iota + 1
	// PotTreasury the treasury pot.
	PotTreasury
)

// IsValid returns whether p names a known pot.
func (p Pot) IsValid() bool {
	return p == PotReserves || p == PotTreasury
}

// String implements stringer
func (p Pot) String() string {
	switch p {
	case PotReserves:
		return "reserves"
	case PotTreasury:
		return "treasury"
	default:
		return fmt.Sprintf("pot(%d)", uint8(p))
	}
}

// Certificate is a delegation-affecting operation accepted by the transition
// rule. The set of implementations is closed: Registration, Deregistration,
// Delegation and MoveInstantaneousRewards. Certificates arrive already
// validated (signatures, fees) from the ledger driver.
type Certificate interface {
	// Kind returns the certificate kind name, used for logging and metering.
	Kind() string

	isCertificate()
}

// Registration registers a stake credential with a zero reward balance.
type Registration struct {
	Credential ledger.StakeCredential
}

// Deregistration removes a stake credential and its delegation, if any.
type Deregistration struct {
	Credential ledger.StakeCredential
}

// Delegation points a registered stake credential at a pool, replacing any
// previous target.
type Delegation struct {
	Credential ledger.StakeCredential
	Pool       ledger.PoolID
}

// MoveInstantaneousRewards records per-credential fund movements from the
// selected pot. Entries overwrite any pending entry for the same credential;
// they are not added to it.
type MoveInstantaneousRewards struct {
	Pot     Pot
	Rewards map[ledger.StakeCredential]coin.DeltaCoin
}

func (*Registration) Kind() string             { return "registration" }
func (*Deregistration) Kind() string           { return "deregistration" }
func (*Delegation) Kind() string               { return "delegation" }
func (*MoveInstantaneousRewards) Kind() string { return "move-instantaneous-rewards" }

func (*Registration) isCertificate()             {}
func (*Deregistration) isCertificate()           {}
func (*Delegation) isCertificate()               {}
func (*MoveInstantaneousRewards) isCertificate() {}

// certificate kind tags on the wire
const (
	kindRegistration uint8 = iota + 1
	kindDeregistration
	kindDelegation
	kindMoveInstantaneousRewards
)

type certEnvelope struct {
	Kind uint8
	Body rlp.RawValue
}

type delegationBody struct {
	Credential ledger.StakeCredential
	Pool       ledger.PoolID
}

type mirEntry struct {
	Credential ledger.StakeCredential
	Delta      coin.DeltaCoin
}

type mirBody struct {
	Pot     uint8
	Rewards []mirEntry
}

// EncodeCertificate encodes a certificate into its rlp envelope form:
// a kind tag followed by the kind-specific body. Mapping entries are sorted
// by credential so encoding is deterministic.
func EncodeCertificate(cert Certificate) ([]byte, error) {
	var (
		kind uint8
		body any
	)
	switch c := cert.(type) {
	case *Registration:
		kind, body = kindRegistration, c.Credential
	case *Deregistration:
		kind, body = kindDeregistration, c.Credential
	case *Delegation:
		kind, body = kindDelegation, &delegationBody{Credential: c.Credential, Pool: c.Pool}
	case *MoveInstantaneousRewards:
		entries := make([]mirEntry, 0, len(c.Rewards))
		for cred, delta := range c.Rewards {
			entries = append(entries, mirEntry{Credential: cred, Delta: delta})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Credential.Compare(entries[j].Credential) < 0
		})
		kind, body = kindMoveInstantaneousRewards, &mirBody{Pot: uint8(c.Pot), Rewards: entries}
	default:
		return nil, errors.Errorf("unknown certificate kind %T", cert)
	}

	raw, err := rlp.EncodeToBytes(body)
	if err != nil {
		return nil, err
	}
	return rlp.EncodeToBytes(&certEnvelope{Kind: kind, Body: raw})
}

// DecodeCertificate decodes a certificate from its rlp envelope form.
func DecodeCertificate(data []byte) (Certificate, error) {
	var env certEnvelope
	if err := rlp.DecodeBytes(data, &env); err != nil {
		return nil, err
	}

	switch env.Kind {
	case kindRegistration:
		var cred ledger.StakeCredential
		if err := rlp.DecodeBytes(env.Body, &cred); err != nil {
			return nil, err
		}
		return &Registration{Credential: cred}, nil
	case kindDeregistration:
		var cred ledger.StakeCredential
		if err := rlp.DecodeBytes(env.Body, &cred); err != nil {
			return nil, err
		}
		return &Deregistration{Credential: cred}, nil
	case kindDelegation:
		var body delegationBody
		if err := rlp.DecodeBytes(env.Body, &body); err != nil {
			return nil, err
		}
		return &Delegation{Credential: body.Credential, Pool: body.Pool}, nil
	case kindMoveInstantaneousRewards:
		var body mirBody
		if err := rlp.DecodeBytes(env.Body, &body); err != nil {
			return nil, err
		}
		if !Pot(body.Pot).IsValid() {
			return nil, &InvalidPotError{Pot: Pot(body.Pot)}
		}
		rewards := make(map[ledger.StakeCredential]coin.DeltaCoin, len(body.Rewards))
		for _, entry := range body.Rewards {
			if _, ok := rewards[entry.Credential]; ok {
				return nil, errors.Errorf("duplicate reward target %v", entry.Credential)
			}
			rewards[entry.Credential] = entry.Delta
		}
		return &MoveInstantaneousRewards{Pot: Pot(body.Pot), Rewards: rewards}, nil
	default:
		return nil, errors.Errorf("unknown certificate kind tag %d", env.Kind)
	}
}
