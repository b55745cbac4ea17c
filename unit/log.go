package unit

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the library's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the library logger. Call it once at startup, before
// mounting units.
func SetLogger(l *zap.Logger) {
	logger = l
	loggerOnce.Do(func() {})
}

// Debug enables diagnostics that are too strict for production, like the
// malformed-result warning in lazy resolution.
var Debug = false

func debugf(format string, args ...any) {
	if Debug {
		Logger().Sugar().Debugf(format, args...)
	}
}
