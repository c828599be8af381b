package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/storagecache"
)

func TestLoggerWritesSortedAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))}

	l.Debug("expired entry", storagecache.Fields{"key": "list:ns:abc", "id": "abc"})

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, `msg="expired entry"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if strings.Index(out, "id=abc") > strings.Index(out, "key=list:ns:abc") {
		t.Fatalf("attrs not sorted: %s", out)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn}))}

	l.Info("dropped", nil)
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered: %s", buf.String())
	}
	l.Warn("kept", nil)
	if !strings.Contains(buf.String(), "msg=kept") {
		t.Fatalf("warn missing: %s", buf.String())
	}
}
