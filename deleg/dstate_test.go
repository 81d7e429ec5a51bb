// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package deleg

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
	"github.com/domabrown/cardano-ledger/test/datagen"
)

func buildState(t *testing.T, registrations, delegations, mirs int) *DState {
	t.Helper()

	state := NewDState()
	creds := make([]ledger.StakeCredential, 0, registrations)
	for range registrations {
		cred := datagen.RandCredential()
		creds = append(creds, cred)
		next, err := Apply(state, &Registration{Credential: cred})
		require.NoError(t, err)
		state = next
	}
	for i := range delegations {
		next, err := Apply(state, &Delegation{Credential: creds[i], Pool: datagen.RandPoolID()})
		require.NoError(t, err)
		state = next
	}
	for i := range mirs {
		pot := PotReserves
		if i%2 == 0 {
			pot = PotTreasury
		}
		next, err := Apply(state, &MoveInstantaneousRewards{
			Pot: pot,
			Rewards: map[ledger.StakeCredential]coin.DeltaCoin{
				creds[i]: datagen.RandDelta(1_000_000),
			},
		})
		require.NoError(t, err)
		state = next
	}
	return state
}

func TestDStateAccessorsCopy(t *testing.T) {
	state := buildState(t, 8, 4, 4)

	rewards := state.Rewards()
	for cred := range rewards {
		rewards[cred] = coin.Coin(999)
		break
	}
	for cred, balance := range state.rewards {
		assert.Equal(t, coin.Zero, balance, "mutating the copy must not reach %v", cred)
	}

	delegations := state.Delegations()
	assert.Equal(t, 4, len(delegations))
	for cred := range delegations {
		delete(delegations, cred)
	}
	assert.Equal(t, 4, len(state.delegations))
}

func TestDStateInstantRewardsUnknownPot(t *testing.T) {
	state := buildState(t, 2, 0, 2)

	assert.Nil(t, state.InstantRewards(Pot(0)))
	_, err := state.InstantTotal(Pot(77))
	var invalid *InvalidPotError
	assert.ErrorAs(t, err, &invalid)
}

func TestDStateRLPRoundTrip(t *testing.T) {
	state := buildState(t, 16, 10, 12)

	encoded, err := rlp.EncodeToBytes(state)
	require.NoError(t, err)

	var decoded DState
	require.NoError(t, rlp.DecodeBytes(encoded, &decoded))

	assert.Equal(t, state.Rewards(), decoded.Rewards())
	assert.Equal(t, state.Delegations(), decoded.Delegations())
	assert.Equal(t, state.InstantRewards(PotReserves), decoded.InstantRewards(PotReserves))
	assert.Equal(t, state.InstantRewards(PotTreasury), decoded.InstantRewards(PotTreasury))
}

func TestDStateRLPDeterministic(t *testing.T) {
	// two states built with the same entries in different order must encode
	// to the same bytes
	cred1 := ledger.MustParseCredential("0x00112233445566778899aabbccddeeff00112233445566778899aabb")
	cred2 := ledger.MustParseCredential("0xffeeddccbbaa99887766554433221100ffeeddccbbaa998877665544")

	a, err := ApplyBlock(NewDState(), []Certificate{
		&Registration{Credential: cred1},
		&Registration{Credential: cred2},
	})
	require.NoError(t, err)
	b, err := ApplyBlock(NewDState(), []Certificate{
		&Registration{Credential: cred2},
		&Registration{Credential: cred1},
	})
	require.NoError(t, err)

	encodedA, err := rlp.EncodeToBytes(a)
	require.NoError(t, err)
	encodedB, err := rlp.EncodeToBytes(b)
	require.NoError(t, err)
	assert.Equal(t, encodedA, encodedB)
}

func TestDStateRLPRejectsBrokenInvariants(t *testing.T) {
	cred := datagen.RandCredential()

	// delegation of an unregistered credential
	broken := dstateSnapshot{
		Delegations: []delegSnapEntry{{Credential: cred, Pool: datagen.RandPoolID()}},
	}
	encoded, err := rlp.EncodeToBytes(&broken)
	require.NoError(t, err)
	var decoded DState
	assert.Error(t, rlp.DecodeBytes(encoded, &decoded))

	// duplicate reward entries
	broken = dstateSnapshot{
		Rewards: []rewardSnapEntry{
			{Credential: cred, Balance: 1},
			{Credential: cred, Balance: 2},
		},
	}
	encoded, err = rlp.EncodeToBytes(&broken)
	require.NoError(t, err)
	assert.Error(t, rlp.DecodeBytes(encoded, &decoded))

	// balance past the coin range
	broken = dstateSnapshot{
		Rewards: []rewardSnapEntry{{Credential: cred, Balance: coin.Max + 1}},
	}
	encoded, err = rlp.EncodeToBytes(&broken)
	require.NoError(t, err)
	assert.Error(t, rlp.DecodeBytes(encoded, &decoded))
}

func TestDStateDelegationsSubsetOfRewards(t *testing.T) {
	state := buildState(t, 12, 12, 0)

	// deregister a few and confirm I1 holds throughout
	for cred := range state.Rewards() {
		next, err := Apply(state, &Deregistration{Credential: cred})
		require.NoError(t, err)
		state = next

		for delegated := range state.delegations {
			assert.True(t, state.IsRegistered(delegated))
		}
	}
	assert.Equal(t, 0, state.NumRegistered())
	assert.Equal(t, 0, len(state.delegations))
}
