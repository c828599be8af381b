// Package asynchook moves hook work off the registry's call path.
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{SelfHealEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	reg, _ := storagecache.New(storagecache.Options{
//	    Namespace: "kolab:prod",
//	    Provider:  provider,
//	    Hooks:     hooks,
//	})
//
// Events are dropped, not queued, when the buffer is full.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/storagecache"
)

type Hooks struct {
	inner   storagecache.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ storagecache.Hooks = (*Hooks)(nil)

func New(inner storagecache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events fired after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) HandleCreated(k storagecache.ResourceKind, id string) {
	h.try(func() { h.inner.HandleCreated(k, id) })
}

func (h *Hooks) Loaded(k storagecache.ResourceKind, hit bool) {
	h.try(func() { h.inner.Loaded(k, hit) })
}

func (h *Hooks) SelfHeal(key, reason string) {
	h.try(func() { h.inner.SelfHeal(key, reason) })
}

func (h *Hooks) ProviderSetRejected(key string, k storagecache.ResourceKind) {
	h.try(func() { h.inner.ProviderSetRejected(key, k) })
}

func (h *Hooks) ProviderError(op string, k storagecache.ResourceKind, err error) {
	h.try(func() { h.inner.ProviderError(op, k, err) })
}
