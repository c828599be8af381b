// Package logrus adapts a *logrus.Entry to storagecache.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/storagecache"
)

var _ storagecache.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New tags every line with component=storagecache.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "storagecache")}
}

func (l Logger) Debug(msg string, f storagecache.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f storagecache.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f storagecache.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f storagecache.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
