// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package deleg

import (
	"github.com/pkg/errors"

	"github.com/domabrown/cardano-ledger/metrics"
)

var metricCertificates = metrics.LazyLoadCounterVec("deleg_certificates_total", []string{"kind", "result"})

// ApplyBlock folds a block's certificate list over the state in order.
// Certificates within one block must be applied in their protocol-defined
// order, since later certificates' preconditions can depend on earlier ones'
// effects (Registration then Delegation in the same block, for instance).
//
// On the first rejection the whole fold is abandoned and the error is
// returned annotated with the certificate index; the caller treats the
// containing block as invalid. The input state is never modified either way.
func ApplyBlock(s *DState, certs []Certificate) (*DState, error) {
	next := s
	for i, cert := range certs {
		applied, err := Apply(next, cert)
		if err != nil {
			metricCertificates().AddWithLabel(1, map[string]string{"kind": cert.Kind(), "result": "rejected"})
			logger.Debug("certificate rejected",
				"index", i, "kind", cert.Kind(), "error", err)
			return nil, errors.Wrapf(err, "certificate #%d (%s)", i, cert.Kind())
		}
		metricCertificates().AddWithLabel(1, map[string]string{"kind": cert.Kind(), "result": "applied"})
		next = applied
	}
	return next, nil
}
