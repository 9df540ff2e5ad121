// Package logrus adapts a *logrus.Entry to cachecheck.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/cachecheck"
)

var _ cachecheck.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New tags every entry with component=cachecheck.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "cachecheck")}
}

func (l Logger) Debug(msg string, f cachecheck.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f cachecheck.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f cachecheck.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f cachecheck.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f cachecheck.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	out := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			k = logrus.ErrorKey
			v = err
		}
		out[k] = v
	}
	return l.E.WithFields(out)
}
