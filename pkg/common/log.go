// Package common holds infrastructure shared by the core packages and the
// CLI: logging, generic set operations, bounded parallel fan-out, and corpus
// path resolution.
package common

import (
	"sync"

	"go.uber.org/zap"
)

var (
	// VerboseEnabled controls whether debug-level output is shown.
	VerboseEnabled = false

	loggerOnce sync.Once
	sugar      *zap.SugaredLogger
)

// logger lazily builds the process-wide logger on first use so packages can
// log before main() has had a chance to call SetVerbose.
func logger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		var zl *zap.Logger
		var err error
		if VerboseEnabled {
			zl, err = zap.NewDevelopment()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.DisableStacktrace = true
			zl, err = cfg.Build()
		}
		if err != nil {
			zl = zap.NewNop()
		}
		sugar = zl.Sugar()
	})
	return sugar
}

// SetVerbose switches the logger to development mode (console encoding, debug
// level) and resets it so the next log call picks up the new configuration.
// Intended to be called once, early, from main() after flags are parsed.
func SetVerbose(v bool) {
	VerboseEnabled = v
	loggerOnce = sync.Once{}
}

// Info logs an informational message, always shown.
func Info(format string, args ...any) {
	logger().Infof(format, args...)
}

// Verbose logs a message only relevant when debugging a run.
func Verbose(format string, args ...any) {
	logger().Debugf(format, args...)
}

// Warning logs a warning message, always shown.
func Warning(format string, args ...any) {
	logger().Warnf(format, args...)
}

// Error logs an error message, always shown.
func Error(format string, args ...any) {
	logger().Errorf(format, args...)
}

// With returns a logger carrying the given structured fields, for call sites
// that want correlation (run_id, level, book_id) attached to every line
// rather than interpolated into the message.
func With(args ...any) *zap.SugaredLogger {
	return logger().With(args...)
}

// Sync flushes any buffered log entries. Call from main() before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
