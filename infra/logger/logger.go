// Package logger provides the zerolog implementation of the core
// logging interface.
package logger

import (
	"fmt"

	"github.com/rs/zerolog"

	corelogger "github.com/predlab/predeval/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component. The output format is
// detected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// SetLevel applies the given severity level globally.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
