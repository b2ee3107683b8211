package xterm

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// logger is the package-wide diagnostics sink. It defaults to
// disabled so importers pay nothing unless they opt in with
// [SetLogger]. Diagnostics are never required for correctness: the
// parser and encoder behave identically whether or not a logger is
// attached.
var (
	loggerMu sync.RWMutex
	logger   = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.Disabled)
)

// SetLogger attaches l as the package's diagnostics sink. Pass a
// zerolog.Logger with the desired level; the zero value disables
// logging again.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func log() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
