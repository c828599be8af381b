package bigcache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestBigcacheGetSetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{LifeWindow: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	if _, ok, err := p.Get(ctx, "data:ns:1"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, "data:ns:1", []byte("dataset"), 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "data:ns:1")
	if err != nil || !ok || !bytes.Equal(got, []byte("dataset")) {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}
	if err := p.Del(ctx, "data:ns:1"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if err := p.Del(ctx, "data:ns:1"); err != nil {
		t.Fatalf("Del of missing key should be nil, got %v", err)
	}
	if _, ok, _ := p.Get(ctx, "data:ns:1"); ok {
		t.Fatalf("expected miss after Del")
	}
}
