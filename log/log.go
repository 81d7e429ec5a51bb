// Copyright (c) 2026 The cardano-ledger developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides the structured logging facade used across the module.
// It is a thin wrapper over log/slog: packages grab a context-scoped Logger
// once at init, and the process decides at startup where records go.
// The default handler discards everything, so library use is silent.
package log

import (
	"log/slog"
	"sync/atomic"
)

// Logger writes structured records with key-value context.
type Logger interface {
	With(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

var root atomic.Pointer[slog.Logger]

func init() {
	root.Store(slog.New(slog.DiscardHandler))
}

// SetDefault installs the handler backing all loggers, including those
// created before the call.
func SetDefault(h slog.Handler) {
	root.Store(slog.New(h))
}

// WithContext returns a Logger that attaches the given key-value context to
// every record.
func WithContext(ctx ...any) Logger {
	return &logger{ctx: ctx}
}

type logger struct {
	ctx []any
}

func (l *logger) With(ctx ...any) Logger {
	merged := make([]any, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	return &logger{ctx: merged}
}

func (l *logger) Debug(msg string, ctx ...any) { l.log(slog.LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...any)  { l.log(slog.LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...any)  { l.log(slog.LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...any) { l.log(slog.LevelError, msg, ctx) }

func (l *logger) log(level slog.Level, msg string, ctx []any) {
	args := make([]any, 0, len(l.ctx)+len(ctx))
	args = append(args, l.ctx...)
	args = append(args, ctx...)
	switch level {
	case slog.LevelDebug:
		root.Load().Debug(msg, args...)
	case slog.LevelInfo:
		root.Load().Info(msg, args...)
	case slog.LevelWarn:
		root.Load().Warn(msg, args...)
	default:
		root.Load().Error(msg, args...)
	}
}
