// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package deleg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
	"github.com/domabrown/cardano-ledger/test/datagen"
)

func TestApplyBlock(t *testing.T) {
	cred := datagen.RandCredential()
	pool := datagen.RandPoolID()

	// later certificates depend on earlier ones in the same block
	state, err := ApplyBlock(NewDState(), []Certificate{
		&Registration{Credential: cred},
		&Delegation{Credential: cred, Pool: pool},
	})
	require.NoError(t, err)

	delegated, ok := state.DelegatedPool(cred)
	assert.True(t, ok)
	assert.Equal(t, pool, delegated)
}

func TestApplyBlock_RejectionAbandonsBlock(t *testing.T) {
	cred := datagen.RandCredential()
	initial := NewDState()

	// the middle certificate fails; nothing of the block may leak out
	next, err := ApplyBlock(initial, []Certificate{
		&Registration{Credential: cred},
		&Delegation{Credential: datagen.RandCredential(), Pool: datagen.RandPoolID()},
		&Registration{Credential: datagen.RandCredential()},
	})
	assert.Nil(t, next)
	assert.True(t, IsNotRegistered(err))
	assert.ErrorContains(t, err, "certificate #1")
	assert.Equal(t, 0, initial.NumRegistered())
}

func TestApplyBlock_Empty(t *testing.T) {
	initial := NewDState()
	next, err := ApplyBlock(initial, nil)
	require.NoError(t, err)
	assert.Equal(t, initial, next)
}

// Speculative validation: independent candidate blocks may be folded on
// separate goroutines, each over its own snapshot of the same base state.
func TestApplyBlock_ConcurrentCandidates(t *testing.T) {
	creds := make([]ledger.StakeCredential, 16)
	base := NewDState()
	for i := range creds {
		creds[i] = datagen.RandCredential()
		next, err := Apply(base, &Registration{Credential: creds[i]})
		require.NoError(t, err)
		base = next
	}

	results := make([]*DState, 8)
	var group errgroup.Group
	for i := range results {
		group.Go(func() error {
			certs := []Certificate{
				&Delegation{Credential: creds[i], Pool: datagen.RandPoolID()},
				&Deregistration{Credential: creds[(i+1)%len(creds)]},
				&MoveInstantaneousRewards{
					Pot:     PotTreasury,
					Rewards: map[ledger.StakeCredential]coin.DeltaCoin{creds[i]: coin.DeltaCoin(i)},
				},
			}
			next, err := ApplyBlock(base, certs)
			if err != nil {
				return err
			}
			results[i] = next
			return nil
		})
	}
	require.NoError(t, group.Wait())

	// base is untouched and every candidate sees only its own changes
	assert.Equal(t, len(creds), base.NumRegistered())
	assert.Equal(t, 0, len(base.Delegations()))
	for i, result := range results {
		assert.Equal(t, len(creds)-1, result.NumRegistered())
		delegated, ok := result.DelegatedPool(creds[i])
		assert.True(t, ok)
		assert.False(t, delegated.IsZero())
		_, ok = result.DelegatedPool(creds[(i+2)%len(creds)])
		assert.False(t, ok)
	}
}
