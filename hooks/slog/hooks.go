// Package sloghook logs registry hook events with log/slog.
package sloghook

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/storagecache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery uint64
	LoadEvery     uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	loadCtr     atomic.Uint64
}

var _ storagecache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) HandleCreated(kind storagecache.ResourceKind, id string) {
	if h.l == nil {
		return
	}
	h.l.Debug("storagecache.handle_created",
		"kind", kind.String(),
		"id", id)
}

func (h *Hooks) Loaded(kind storagecache.ResourceKind, hit bool) {
	if h.l == nil || !sample(h.opts.LoadEvery, &h.loadCtr) {
		return
	}
	h.l.Debug("storagecache.loaded",
		"kind", kind.String(),
		"hit", hit)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Info("storagecache.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string, kind storagecache.ResourceKind) {
	if h.l == nil {
		return
	}
	h.l.Warn("storagecache.provider_set_rejected",
		"key", h.redact(storageKey),
		"kind", kind.String())
}

func (h *Hooks) ProviderError(op string, kind storagecache.ResourceKind, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("storagecache.provider_error",
		"op", op,
		"kind", kind.String(),
		"err", err)
}
