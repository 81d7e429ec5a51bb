// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package deleg

import (
	"io"
	"maps"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
)

// DState is the delegation sub-state of the ledger: registered credentials
// with their merged reward balances, their pool delegations, and the pending
// instantaneous-reward accumulators for each pot.
//
// A DState is immutable once observed. Apply returns a fresh value sharing
// the maps it did not touch; no map reachable from a published DState is ever
// written again, so snapshots can be read from any goroutine.
type DState struct {
	rewards     map[ledger.StakeCredential]coin.Coin
	delegations map[ledger.StakeCredential]ledger.PoolID
	irReserves  map[ledger.StakeCredential]coin.DeltaCoin
	irTreasury  map[ledger.StakeCredential]coin.DeltaCoin
}

// NewDState creates an empty delegation state.
func NewDState() *DState {
	return &DState{
		rewards:     map[ledger.StakeCredential]coin.Coin{},
		delegations: map[ledger.StakeCredential]ledger.PoolID{},
		irReserves:  map[ledger.StakeCredential]coin.DeltaCoin{},
		irTreasury:  map[ledger.StakeCredential]coin.DeltaCoin{},
	}
}

// IsRegistered returns whether the credential is currently registered.
func (s *DState) IsRegistered(cred ledger.StakeCredential) bool {
	_, ok := s.rewards[cred]
	return ok
}

// Reward returns the merged reward balance of a credential.
func (s *DState) Reward(cred ledger.StakeCredential) (coin.Coin, bool) {
	c, ok := s.rewards[cred]
	return c, ok
}

// DelegatedPool returns the pool a credential delegates to.
func (s *DState) DelegatedPool(cred ledger.StakeCredential) (ledger.PoolID, bool) {
	p, ok := s.delegations[cred]
	return p, ok
}

// InstantReward returns the pending instantaneous-reward entry of a
// credential in the given pot.
func (s *DState) InstantReward(pot Pot, cred ledger.StakeCredential) (coin.DeltaCoin, bool) {
	acc := s.accumulator(pot)
	if acc == nil {
		return 0, false
	}
	d, ok := acc[cred]
	return d, ok
}

// Rewards returns a copy of the reward mapping.
func (s *DState) Rewards() map[ledger.StakeCredential]coin.Coin {
	return maps.Clone(s.rewards)
}

// Delegations returns a copy of the delegation mapping.
func (s *DState) Delegations() map[ledger.StakeCredential]ledger.PoolID {
	return maps.Clone(s.delegations)
}

// InstantRewards returns a copy of the instantaneous-reward accumulator of
// the given pot. Returns nil for an unknown pot.
func (s *DState) InstantRewards(pot Pot) map[ledger.StakeCredential]coin.DeltaCoin {
	return maps.Clone(s.accumulator(pot))
}

// RewardsTotal returns the checked sum of all merged reward balances.
func (s *DState) RewardsTotal() (coin.Coin, error) {
	return coin.Sum(s.rewards)
}

// InstantTotal returns the checked sum of the pending instantaneous rewards
// of the given pot.
func (s *DState) InstantTotal(pot Pot) (coin.DeltaCoin, error) {
	acc := s.accumulator(pot)
	if acc == nil {
		return 0, &InvalidPotError{Pot: pot}
	}
	return coin.SumDelta(acc)
}

// NumRegistered returns the number of registered credentials.
func (s *DState) NumRegistered() int {
	return len(s.rewards)
}

func (s *DState) accumulator(pot Pot) map[ledger.StakeCredential]coin.DeltaCoin {
	switch pot {
	case PotReserves:
		return s.irReserves
	case PotTreasury:
		return s.irTreasury
	default:
		return nil
	}
}

type rewardSnapEntry struct {
	Credential ledger.StakeCredential
	Balance    coin.Coin
}

type delegSnapEntry struct {
	Credential ledger.StakeCredential
	Pool       ledger.PoolID
}

type dstateSnapshot struct {
	Rewards     []rewardSnapEntry
	Delegations []delegSnapEntry
	Reserves    []mirEntry
	Treasury    []mirEntry
}

// EncodeRLP implements rlp.Encoder. Mapping entries are emitted in credential
// order so equal states always encode to equal bytes.
func (s *DState) EncodeRLP(w io.Writer) error {
	snap := dstateSnapshot{
		Rewards:     make([]rewardSnapEntry, 0, len(s.rewards)),
		Delegations: make([]delegSnapEntry, 0, len(s.delegations)),
		Reserves:    sortedMIREntries(s.irReserves),
		Treasury:    sortedMIREntries(s.irTreasury),
	}
	for cred, balance := range s.rewards {
		snap.Rewards = append(snap.Rewards, rewardSnapEntry{Credential: cred, Balance: balance})
	}
	sort.Slice(snap.Rewards, func(i, j int) bool {
		return snap.Rewards[i].Credential.Compare(snap.Rewards[j].Credential) < 0
	})
	for cred, pool := range s.delegations {
		snap.Delegations = append(snap.Delegations, delegSnapEntry{Credential: cred, Pool: pool})
	}
	sort.Slice(snap.Delegations, func(i, j int) bool {
		return snap.Delegations[i].Credential.Compare(snap.Delegations[j].Credential) < 0
	})
	return rlp.Encode(w, &snap)
}

// DecodeRLP implements rlp.Decoder. The decoded state is checked against the
// structural invariants: no duplicate entries, every delegated credential
// registered, and balances within the coin range.
func (s *DState) DecodeRLP(st *rlp.Stream) error {
	var snap dstateSnapshot
	if err := st.Decode(&snap); err != nil {
		return err
	}

	decoded := NewDState()
	for _, entry := range snap.Rewards {
		if _, ok := decoded.rewards[entry.Credential]; ok {
			return errors.Errorf("duplicate reward entry %v", entry.Credential)
		}
		if entry.Balance > coin.Max {
			return coin.ErrOverflow
		}
		decoded.rewards[entry.Credential] = entry.Balance
	}
	for _, entry := range snap.Delegations {
		if _, ok := decoded.delegations[entry.Credential]; ok {
			return errors.Errorf("duplicate delegation entry %v", entry.Credential)
		}
		if _, ok := decoded.rewards[entry.Credential]; !ok {
			return errors.Errorf("delegation of unregistered credential %v", entry.Credential)
		}
		decoded.delegations[entry.Credential] = entry.Pool
	}
	for _, entry := range snap.Reserves {
		if _, ok := decoded.irReserves[entry.Credential]; ok {
			return errors.Errorf("duplicate reserves entry %v", entry.Credential)
		}
		decoded.irReserves[entry.Credential] = entry.Delta
	}
	for _, entry := range snap.Treasury {
		if _, ok := decoded.irTreasury[entry.Credential]; ok {
			return errors.Errorf("duplicate treasury entry %v", entry.Credential)
		}
		decoded.irTreasury[entry.Credential] = entry.Delta
	}

	*s = *decoded
	return nil
}

func sortedMIREntries(acc map[ledger.StakeCredential]coin.DeltaCoin) []mirEntry {
	entries := make([]mirEntry, 0, len(acc))
	for cred, delta := range acc {
		entries = append(entries, mirEntry{Credential: cred, Delta: delta})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Credential.Compare(entries[j].Credential) < 0
	})
	return entries
}
