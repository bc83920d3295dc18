package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Get returns the process-wide logger, building it on first use.
// LOG_LEVEL and LOG_FORMAT (console|json) control the output.
func Get() *zap.Logger {
	once.Do(func() {
		instance = build()
	})
	return instance
}

// Set replaces the process-wide logger. Intended for tests and for
// binaries that configure logging from flags before first use.
func Set(l *zap.Logger) {
	once.Do(func() {})
	instance = l
}

func build() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	if os.Getenv("LOG_FORMAT") == "json" {
		cfg = zap.NewProductionConfig()
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := zapcore.ParseLevel(lvl); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	l, err := cfg.Build()
	if err != nil {
		// Logging must never take the process down; fall back to a no-op.
		return zap.NewNop()
	}
	return l
}
