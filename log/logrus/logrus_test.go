package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/storagecache"
)

func TestLoggerForwardsLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("dataset handle created", storagecache.Fields{"id": "abc"})
	l.Warn("store rejected by provider (pressure)", storagecache.Fields{"key": "data:ns:abc"})

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != logrus.DebugLevel || entries[0].Data["id"] != "abc" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Data["component"] != "storagecache" || entries[1].Data["key"] != "data:ns:abc" {
		t.Fatalf("unexpected fields: %+v", entries[1].Data)
	}
}
