// Package zap adapts a *zap.Logger to cachecheck.Logger.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/cachecheck"
)

var _ cachecheck.Logger = Logger{}

// Logger forwards check logs to L. A nil L drops everything.
type Logger struct{ L *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{L: l.Named("cachecheck")} }

func (z Logger) Debug(msg string, f cachecheck.Fields) { z.log(zap.DebugLevel, msg, f) }
func (z Logger) Info(msg string, f cachecheck.Fields)  { z.log(zap.InfoLevel, msg, f) }
func (z Logger) Warn(msg string, f cachecheck.Fields)  { z.log(zap.WarnLevel, msg, f) }
func (z Logger) Error(msg string, f cachecheck.Fields) { z.log(zap.ErrorLevel, msg, f) }

func (z Logger) log(lvl zapcore.Level, msg string, f cachecheck.Fields) {
	if z.L == nil {
		return
	}
	if ce := z.L.Check(lvl, msg); ce != nil {
		ce.Write(fields(f)...)
	}
}

func fields(f cachecheck.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
