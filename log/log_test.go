// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	// loggers created before SetDefault still pick up the handler
	logger := WithContext("pkg", "test")

	var buf bytes.Buffer
	SetDefault(slog.NewTextHandler(&buf, nil))
	defer SetDefault(slog.DiscardHandler)

	logger.Info("hello", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "pkg=test")
	assert.Contains(t, out, "count=3")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(slog.NewTextHandler(&buf, nil))
	defer SetDefault(slog.DiscardHandler)

	logger := WithContext("pkg", "test").With("sub", "inner")
	logger.Warn("careful")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "pkg=test")
	assert.Contains(t, out, "sub=inner")
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	defer SetDefault(slog.DiscardHandler)

	logger := WithContext("pkg", "test")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	lines := strings.Count(buf.String(), "\n")
	assert.Equal(t, 4, lines)
}

func TestDefaultDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		WithContext("pkg", "test").Error("nobody listens")
	})
}
