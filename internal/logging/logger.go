// Package logging constructs the structured logger used throughout the
// coordinator and CLI. It is purely an ambient-stack addition: only the
// CLI imports it; the cache coordinator accepts any logger with the
// methods its own Logger interface lists, and the geometry and assembly
// packages do not log.
package logging

import "go.uber.org/zap"

// New builds a zap.SugaredLogger. debug selects zap's human-readable
// development encoder; otherwise the production JSON encoder is used.
func New(debug bool) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Noop returns a logger that discards everything, used by tests and by
// callers that never configured one.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
