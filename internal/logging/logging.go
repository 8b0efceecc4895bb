// Package logging holds the logger shared by the drawing core packages.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// SetLogger replaces the logger used by the core packages. Passing nil
// restores the silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: stroke commits, history moves, line type switches
//   - [slog.LevelWarn]: background or export problems that were recovered from
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the active logger. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
