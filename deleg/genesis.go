// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package deleg

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/domabrown/cardano-ledger/coin"
	"github.com/domabrown/cardano-ledger/ledger"
)

// CustomGenesis is a user customized initial delegation state.
type CustomGenesis struct {
	Registrations []GenesisRegistration `json:"registrations"`
}

// GenesisRegistration pre-registers a stake credential, optionally with an
// initial reward balance and a pool delegation.
type GenesisRegistration struct {
	Credential ledger.StakeCredential `json:"credential"`
	Balance    *hexutil.Big           `json:"balance,omitempty"`
	Pool       *ledger.PoolID         `json:"pool,omitempty"`
}

// NewCustomState builds the initial delegation state described by a custom
// genesis. The result satisfies the same structural invariants as any state
// reachable through Apply.
func NewCustomState(gen *CustomGenesis) (*DState, error) {
	state := NewDState()

	total := coin.Zero
	for _, reg := range gen.Registrations {
		if reg.Credential.IsZero() {
			return nil, errors.New("credential must be set")
		}
		if _, ok := state.rewards[reg.Credential]; ok {
			return nil, errors.Errorf("%v: duplicate registration", reg.Credential)
		}

		balance := coin.Zero
		if reg.Balance != nil {
			var err error
			if balance, err = balanceToCoin(reg.Balance.ToInt()); err != nil {
				return nil, errors.Wrapf(err, "%v: balance", reg.Credential)
			}
		}
		var err error
		if total, err = total.Add(balance); err != nil {
			return nil, errors.Wrap(err, "total genesis balance")
		}

		state.rewards[reg.Credential] = balance
		if reg.Pool != nil {
			if reg.Pool.IsZero() {
				return nil, errors.Errorf("%v: pool must not be zero", reg.Credential)
			}
			state.delegations[reg.Credential] = *reg.Pool
		}
	}

	logger.Info("built custom genesis state",
		"registrations", state.NumRegistered(), "total", total)
	return state, nil
}

func balanceToCoin(b *big.Int) (coin.Coin, error) {
	if b.Sign() < 0 {
		return 0, coin.ErrUnderflow
	}
	if !b.IsUint64() || coin.Coin(b.Uint64()) > coin.Max {
		return 0, coin.ErrOverflow
	}
	return coin.Coin(b.Uint64()), nil
}
