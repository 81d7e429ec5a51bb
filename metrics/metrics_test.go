// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopByDefault(t *testing.T) {
	// metering against the default noop service must be safe
	assert.NotPanics(t, func() {
		Counter("noop_counter").Add(1)
		CounterVec("noop_counter_vec", []string{"kind"}).AddWithLabel(1, map[string]string{"kind": "x"})
		Gauge("noop_gauge").Set(42)
	})
	assert.Nil(t, HTTPHandler())
}

func TestPrometheusMetrics(t *testing.T) {
	// defined before initialization, must still bind to prometheus
	lazyCounter := LazyLoadCounter("test_lazy_counter")

	InitializePrometheusMetrics()
	// initializing twice keeps the same service
	InitializePrometheusMetrics()

	Counter("test_counter").Add(3)
	Counter("test_counter").Add(2)
	CounterVec("test_counter_vec", []string{"kind"}).AddWithLabel(1, map[string]string{"kind": "a"})
	Gauge("test_gauge").Set(7)
	Gauge("test_gauge").Add(-2)
	lazyCounter().Add(4)

	handler := HTTPHandler()
	require.NotNil(t, handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, "cardano_ledger_test_counter 5")
	assert.Contains(t, body, `cardano_ledger_test_counter_vec{kind="a"} 1`)
	assert.Contains(t, body, "cardano_ledger_test_gauge 5")
	assert.Contains(t, body, "cardano_ledger_test_lazy_counter 4")
}
