// Package testutil provides test helpers: quiet loggers and an HTTP stub
// standing in for the Google Maps web services.
package testutil

import (
	"io"
	"log/slog"
)

// NewTestLogger returns a debug-level text logger writing to w, or to
// io.Discard when w is nil.
func NewTestLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// DiscardLogger returns a logger that drops everything. Most tests use this
// to keep handler and client noise out of test output.
func DiscardLogger() *slog.Logger {
	return NewTestLogger(nil)
}
