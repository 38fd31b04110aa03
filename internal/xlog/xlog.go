// Package xlog carries the structured logger shared by the lvc package, in
// the same disabled-by-default style as gnark-crypto's own internal logger:
// silent until a caller opts in, so that a library import never writes to a
// process's stdout uninvited.
package xlog

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard)
)

// SetOutput redirects the package logger to w, with level added as a
// convenience so callers do not need a second call to adjust verbosity.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Disable silences the package logger again.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(io.Discard)
}

// Logger returns the current package logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}
