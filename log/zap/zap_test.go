package zap

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/storagecache"
)

func TestLoggerForwardsLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("list handle created", storagecache.Fields{"id": "abc"})
	l.Warn("store rejected by provider (pressure)", storagecache.Fields{"key": "list:ns:abc", "kind": "list"})
	l.Error("boom", nil)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].LoggerName != "storagecache" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if got := entries[0].ContextMap()["id"]; got != "abc" {
		t.Fatalf("id field = %v", got)
	}
	ctx := entries[1].Context
	if len(ctx) != 2 || ctx[0].Key != "key" || ctx[1].Key != "kind" {
		t.Fatalf("fields not sorted: %+v", ctx)
	}
	if entries[2].Level != zapcore.ErrorLevel || len(entries[2].Context) != 0 {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
}
