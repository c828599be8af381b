// Package zerolog adapts a zerolog.Logger to storagecache.Logger.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/storagecache"
)

var _ storagecache.Logger = Logger{}

type Logger struct{ L zerolog.Logger }

// New tags every event with component=storagecache.
func New(l zerolog.Logger) Logger {
	return Logger{L: l.With().Str("component", "storagecache").Logger()}
}

func (z Logger) Debug(msg string, f storagecache.Fields) { z.L.Debug().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Info(msg string, f storagecache.Fields)  { z.L.Info().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Warn(msg string, f storagecache.Fields)  { z.L.Warn().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Error(msg string, f storagecache.Fields) { z.L.Error().Fields(map[string]any(f)).Msg(msg) }
