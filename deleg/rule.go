// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package deleg implements the stake-delegation transition rule: the
// deterministic update of the delegation state triggered by registration,
// deregistration, delegation and instantaneous-reward certificates.
//
// The rule is a pure function. Apply never mutates its input state; it either
// returns a fresh state with all effects of the certificate committed, or a
// typed rejection with no effects at all. The ledger driver folds it over a
// block's certificate list in protocol order and treats any rejection as
// making the whole block invalid.
package deleg

import (
	"maps"

	"github.com/pkg/errors"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/log"
)

var logger = log.WithContext("pkg", "deleg")

// SetLogger overrides the package logger.
func SetLogger(l log.Logger) {
	logger = l
}

// Apply executes one certificate against the state, returning the successor
// state or a typed rejection. The input state is never modified; maps the
// certificate does not touch are shared between input and output.
func Apply(s *DState, cert Certificate) (*DState, error) {
	switch c := cert.(type) {
	case *Registration:
		return applyRegistration(s, c)
	case *Deregistration:
		return applyDeregistration(s, c)
	case *Delegation:
		return applyDelegation(s, c)
	case *MoveInstantaneousRewards:
		return applyMoveInstantaneousRewards(s, c)
	default:
		// the certificate union is closed; anything else is a decoder bug
		return nil, errors.Errorf("unknown certificate kind %T", cert)
	}
}

func applyRegistration(s *DState, c *Registration) (*DState, error) {
	if s.IsRegistered(c.Credential) {
		return nil, &AlreadyRegisteredError{Credential: c.Credential}
	}

	rewards := maps.Clone(s.rewards)
	rewards[c.Credential] = coin.Zero

	return &DState{
		rewards:     rewards,
		delegations: s.delegations,
		irReserves:  s.irReserves,
		irTreasury:  s.irTreasury,
	}, nil
}

func applyDeregistration(s *DState, c *Deregistration) (*DState, error) {
	balance, ok := s.rewards[c.Credential]
	if !ok {
		return nil, &NotRegisteredError{Credential: c.Credential}
	}
	if !balance.IsZero() {
		// The epoch-boundary payout rule drains balances before credentials
		// retire, so a nonzero balance here means the driver fed certificates
		// out of order. The removal still proceeds; the reward-sum
		// conservation check surfaces the discrepancy.
		logger.Warn("deregistering credential with nonzero balance",
			"credential", c.Credential.AbbrevString(), "balance", balance)
	}

	rewards := maps.Clone(s.rewards)
	delete(rewards, c.Credential)

	delegations := s.delegations
	if _, ok := delegations[c.Credential]; ok {
		delegations = maps.Clone(s.delegations)
		delete(delegations, c.Credential)
	}

	return &DState{
		rewards:     rewards,
		delegations: delegations,
		irReserves:  s.irReserves,
		irTreasury:  s.irTreasury,
	}, nil
}

func applyDelegation(s *DState, c *Delegation) (*DState, error) {
	if !s.IsRegistered(c.Credential) {
		return nil, &NotRegisteredError{Credential: c.Credential}
	}

	delegations := maps.Clone(s.delegations)
	delegations[c.Credential] = c.Pool

	return &DState{
		rewards:     s.rewards,
		delegations: delegations,
		irReserves:  s.irReserves,
		irTreasury:  s.irTreasury,
	}, nil
}

// applyMoveInstantaneousRewards overwrites the pot's pending entry for every
// targeted credential. Overwrite, not accumulate: an entry carries the most
// recent certificate's intent for that credential, never a running sum.
// Targets need not be registered; registration is enforced at epoch-merge
// time by the rule that folds the accumulators into the reward mapping.
func applyMoveInstantaneousRewards(s *DState, c *MoveInstantaneousRewards) (*DState, error) {
	if !c.Pot.IsValid() {
		return nil, &InvalidPotError{Pot: c.Pot}
	}

	acc := maps.Clone(s.accumulator(c.Pot))
	for cred, delta := range c.Rewards {
		acc[cred] = delta
	}

	next := &DState{
		rewards:     s.rewards,
		delegations: s.delegations,
		irReserves:  s.irReserves,
		irTreasury:  s.irTreasury,
	}
	switch c.Pot {
	case PotReserves:
		next.irReserves = acc
	case PotTreasury:
		next.irTreasury = acc
	}
	return next, nil
}
