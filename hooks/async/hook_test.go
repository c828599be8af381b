package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/storagecache"
)

type recordingHooks struct {
	storagecache.NopHooks
	mu      sync.Mutex
	created []string
	release chan struct{}
}

func (r *recordingHooks) HandleCreated(_ storagecache.ResourceKind, id string) {
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	r.created = append(r.created, id)
	r.mu.Unlock()
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	rec := &recordingHooks{}
	h := New(rec, 2, 16)
	for _, id := range []string{"a", "b", "c"} {
		h.HandleCreated(storagecache.KindList, id)
	}
	h.Close()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.created) != 3 {
		t.Fatalf("got %d events, want 3", len(rec.created))
	}
	if h.Dropped() != 0 {
		t.Fatalf("dropped = %d, want 0", h.Dropped())
	}
}

func TestFullQueueDrops(t *testing.T) {
	rec := &recordingHooks{release: make(chan struct{})}
	h := New(rec, 1, 1)

	// The worker blocks on the first event; one more fits in the queue.
	for i := 0; i < 10; i++ {
		h.HandleCreated(storagecache.KindData, "x")
	}
	close(rec.release)
	h.Close()

	if h.Dropped() == 0 {
		t.Fatalf("expected drops with a blocked worker and qlen=1")
	}
	h.HandleCreated(storagecache.KindData, "after-close")
}
