package redis

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
)

// setupTestRedis connects to STORAGECACHE_TEST_REDIS (default localhost:6379)
// and skips the test when no server answers.
func setupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	addr := os.Getenv("STORAGECACHE_TEST_REDIS")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr, DB: 15})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush test DB: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestNewRejectsNilClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("err = %v, want ErrNilClient", err)
	}
}

func TestRedisGetSetDel(t *testing.T) {
	client := setupTestRedis(t)
	p, err := New(Config{Client: client, KeyPrefix: "test:"})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, ok, err := p.Get(ctx, "list:ns:abc"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if ok, err := p.Set(ctx, "list:ns:abc", []byte("payload"), 1, 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "list:ns:abc")
	if err != nil || !ok || !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}
	if n := client.Exists(ctx, "test:list:ns:abc").Val(); n != 1 {
		t.Fatalf("prefixed key missing in redis")
	}
	if err := p.Del(ctx, "list:ns:abc"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if err := p.Del(ctx, "list:ns:abc"); err != nil {
		t.Fatalf("Del of missing key: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "list:ns:abc"); ok {
		t.Fatalf("expected miss after Del")
	}
	if err := p.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
