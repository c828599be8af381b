// Package zap adapts a *zap.Logger to storagecache.Logger.
package zap

import (
	"sort"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/storagecache"
)

var _ storagecache.Logger = Logger{}

type Logger struct{ L *zap.Logger }

// New names the logger "storagecache" so registry lines are easy to filter.
func New(l *zap.Logger) Logger { return Logger{L: l.Named("storagecache")} }

func (z Logger) Debug(msg string, f storagecache.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f storagecache.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f storagecache.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f storagecache.Fields) { z.L.Error(msg, fields(f)...) }

// fields sorts by key so output is stable across runs.
func fields(f storagecache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
