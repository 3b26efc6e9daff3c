// Package logger holds the global logger for spdx-go.
//
// The library is quiet by default: the logger is a no-op until the
// embedding application calls Initialize. All spdx-go packages log
// through logger.Logger rather than constructing their own loggers.
package logger

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger at package load time so library code can log
	// without a nil check before Initialize is called.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. With jsonOutput the logger emits
// JSON structured output for machine consumption, otherwise a
// human-readable development configuration is used.
func Initialize(jsonOutput bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zapLogger, err = config.Build()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Set replaces the global logger. Passing nil restores the no-op logger.
func Set(l *zap.SugaredLogger) {
	if l == nil {
		Logger = zap.NewNop().Sugar()
		return
	}
	Logger = l
}
