package lca

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger   = zerolog.Nop()
	loggerMu sync.RWMutex
)

// SetLogger injects a logger for the package-level helpers (unit
// conversion warnings, dropped-flow notices). Components holding an
// Aggregator get their logger through NewAggregator instead.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func pkgLogger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
