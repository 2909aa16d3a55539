package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that drops everything, so test output
// stays readable
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
