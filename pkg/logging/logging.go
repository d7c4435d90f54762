// Package logging provides the concrete core.Logger implementation
// used at the edges of the program (cmd/hlines, web); the core
// packages themselves only ever see the core.Logger interface.
package logging

import (
	"go.uber.org/zap"

	"github.com/goplotter/hlines/pkg/core"
)

// ZapLogger adapts a *zap.SugaredLogger to core.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a development-mode zap logger (readable console
// output, no sampling) wrapped as a core.Logger.
func NewZapLogger() (*ZapLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// Printf implements core.Logger by routing through zap's printf-style
// Infof, so every diagnostic line still gets zap's level, timestamp,
// and caller formatting.
func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Sync flushes any buffered log entries; callers should defer it.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ core.Logger = (*ZapLogger)(nil)
