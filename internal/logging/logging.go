// Package logging configures the zerolog logger shared by the CLI and the
// loader.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr at the given level.
// Stderr keeps log lines out of the resolved-configuration output, which
// goes to stdout.
func New(level zerolog.Level) zerolog.Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// NewWithWriter returns a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
