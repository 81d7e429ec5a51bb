// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package deleg

import (
	"errors"
	"fmt"

	"github.com/domabrown/cardano-ledger/ledger"
)

// AlreadyRegisteredError rejection of a Registration certificate whose
// credential is already registered.
type AlreadyRegisteredError struct {
	Credential ledger.StakeCredential
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("stake credential %v already registered", e.Credential.AbbrevString())
}

// NotRegisteredError rejection of a Deregistration or Delegation certificate
// whose credential is not registered.
type NotRegisteredError struct {
	Credential ledger.StakeCredential
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("stake credential %v not registered", e.Credential.AbbrevString())
}

// InvalidPotError rejection of an instantaneous-reward certificate naming an
// unknown fund pot.
type InvalidPotError struct {
	Pot Pot
}

func (e *InvalidPotError) Error() string {
	return fmt.Sprintf("invalid instantaneous-reward pot %v", e.Pot)
}

// IsAlreadyRegistered reports whether err is an AlreadyRegisteredError.
func IsAlreadyRegistered(err error) bool {
	var target *AlreadyRegisteredError
	return errors.As(err, &target)
}

// IsNotRegistered reports whether err is a NotRegisteredError.
func IsNotRegistered(err error) bool {
	var target *NotRegisteredError
	return errors.As(err, &target)
}
