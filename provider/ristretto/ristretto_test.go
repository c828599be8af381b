package ristretto

import (
	"bytes"
	"context"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for zero config")
	}
}

func TestRistrettoSyncReadAfterWrite(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64, Metrics: true, Sync: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	if ok, err := p.Set(ctx, "list:ns:1", []byte("folders"), 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "list:ns:1")
	if err != nil || !ok || !bytes.Equal(got, []byte("folders")) {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}
	if p.Metrics() == nil {
		t.Fatalf("metrics requested but nil")
	}

	if err := p.Del(ctx, "list:ns:1"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "list:ns:1"); ok {
		t.Fatalf("expected miss after Del")
	}
}
