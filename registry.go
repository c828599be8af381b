package storagecache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/unkn0wn-root/storagecache/internal/wire"
	pr "github.com/unkn0wn-root/storagecache/provider"
)

// Registry owns the dataset and list handles of one cache and passes payloads
// through to the provider. At most one handle exists per identity for the
// lifetime of the registry.
type Registry struct {
	ns             string
	provider       pr.Provider
	log            Logger
	hooks          Hooks
	enabled        bool
	computeSetCost SetCostFunc
	maxAttachment  int64

	dsMu     sync.Mutex
	datasets map[string]*DatasetHandle

	listMu sync.Mutex
	lists  map[string]*ListHandle
}

func (r *Registry) Enabled() bool { return r.enabled }

// Close closes the provider. Handles stay valid but every call that reaches
// the provider afterwards fails the way the provider decides.
func (r *Registry) Close(ctx context.Context) error {
	return r.provider.Close(ctx)
}

// GetDatasetHandle returns the handle for the dataset described by src,
// creating it on first use. A *MissingParameterError is returned unchanged.
func (r *Registry) GetDatasetHandle(src ParamSource) (*DatasetHandle, error) {
	id, err := DataID(src)
	if err != nil {
		return nil, err
	}

	r.dsMu.Lock()
	h, ok := r.datasets[id]
	if !ok {
		h = &DatasetHandle{reg: r, id: id}
		r.datasets[id] = h
	}
	r.dsMu.Unlock()

	if !ok {
		r.log.Debug("dataset handle created", Fields{"id": id})
		r.hooks.HandleCreated(KindData, id)
	}
	return h, nil
}

// GetListHandle returns the handle for the folder list of the connection
// described by src, creating it on first use.
func (r *Registry) GetListHandle(src ParamSource) (*ListHandle, error) {
	id, err := ListID(src)
	if err != nil {
		return nil, err
	}

	r.listMu.Lock()
	h, ok := r.lists[id]
	if !ok {
		h = &ListHandle{reg: r}
		h.setID(id)
		r.lists[id] = h
	}
	r.listMu.Unlock()

	if !ok {
		r.log.Debug("list handle created", Fields{"id": id})
		r.hooks.HandleCreated(KindList, id)
	}
	return h, nil
}

// HandleCount reports how many distinct identities have been resolved.
func (r *Registry) HandleCount() (datasets, lists int) {
	r.dsMu.Lock()
	datasets = len(r.datasets)
	r.dsMu.Unlock()
	r.listMu.Lock()
	lists = len(r.lists)
	r.listMu.Unlock()
	return datasets, lists
}

func (r *Registry) LoadDataset(ctx context.Context, dataID string) ([]byte, bool, error) {
	return r.load(ctx, KindData, dataID)
}

func (r *Registry) StoreDataset(ctx context.Context, dataID string, data []byte) error {
	return r.store(ctx, KindData, dataID, data)
}

func (r *Registry) ExpireDataset(ctx context.Context, dataID string) error {
	return r.expire(ctx, KindData, dataID)
}

func (r *Registry) LoadList(ctx context.Context, listID string) ([]byte, bool, error) {
	return r.load(ctx, KindList, listID)
}

func (r *Registry) StoreList(ctx context.Context, listID string, data []byte) error {
	return r.store(ctx, KindList, listID, data)
}

func (r *Registry) ExpireList(ctx context.Context, listID string) error {
	return r.expire(ctx, KindList, listID)
}

// LoadAttachment returns a reader over a cached attachment.
func (r *Registry) LoadAttachment(ctx context.Context, dataID, objectID, attachmentID string) (io.ReadCloser, bool, error) {
	b, ok, err := r.load(ctx, KindAttachment, AttachmentID(dataID, objectID, attachmentID))
	if err != nil || !ok {
		return nil, false, err
	}
	return io.NopCloser(bytes.NewReader(b)), true, nil
}

// StoreAttachment drains rd and caches its content. With a size limit set,
// an oversized stream yields ErrAttachmentTooLarge and nothing is written.
func (r *Registry) StoreAttachment(ctx context.Context, dataID, objectID, attachmentID string, rd io.Reader) error {
	if !r.enabled {
		return nil
	}
	if r.maxAttachment > 0 {
		rd = io.LimitReader(rd, r.maxAttachment+1)
	}
	b, err := io.ReadAll(rd)
	if err != nil {
		return fmt.Errorf("storagecache: read attachment: %w", err)
	}
	if r.maxAttachment > 0 && int64(len(b)) > r.maxAttachment {
		return fmt.Errorf("%w: more than %d bytes", ErrAttachmentTooLarge, r.maxAttachment)
	}
	return r.store(ctx, KindAttachment, AttachmentID(dataID, objectID, attachmentID), b)
}

func (r *Registry) ExpireAttachment(ctx context.Context, dataID, objectID, attachmentID string) error {
	return r.expire(ctx, KindAttachment, AttachmentID(dataID, objectID, attachmentID))
}

// load accepts a cached value of any age; staleness is handled by the caller
// deriving a new identity.
func (r *Registry) load(ctx context.Context, kind ResourceKind, id string) ([]byte, bool, error) {
	if !r.enabled {
		return nil, false, nil
	}
	k := r.storageKey(kind, id)
	raw, ok, err := r.provider.Get(ctx, k)
	if err != nil {
		r.hooks.ProviderError("get", kind, err)
		return nil, false, err
	}
	if !ok {
		r.hooks.Loaded(kind, false)
		return nil, false, nil
	}
	payload, err := wire.Decode(byte(kind), raw)
	if err != nil {
		reason := "corrupt"
		if errors.Is(err, wire.ErrWrongKind) {
			reason = "wrong_kind"
		}
		r.selfHeal(ctx, kind, k, reason)
		r.hooks.Loaded(kind, false)
		return nil, false, nil
	}
	r.hooks.Loaded(kind, true)
	// in-process providers hand out their stored slice
	return bytes.Clone(payload), true, nil
}

func (r *Registry) store(ctx context.Context, kind ResourceKind, id string, data []byte) error {
	if !r.enabled {
		return nil
	}
	if err := checkPayloadLen(len(data)); err != nil {
		return err
	}
	k := r.storageKey(kind, id)
	raw := wire.Encode(byte(kind), data)
	// ttl 0: entries never expire on their own
	ok, err := r.provider.Set(ctx, k, raw, r.computeSetCost(k, raw, kind), 0)
	if err != nil {
		r.hooks.ProviderError("set", kind, err)
		return err
	}
	if !ok {
		r.log.Warn("store rejected by provider (pressure)", Fields{"key": k, "kind": kind.String()})
		r.hooks.ProviderSetRejected(k, kind)
	}
	return nil
}

// checkPayloadLen rejects payloads the envelope's u32 length cannot describe.
func checkPayloadLen(n int) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, n)
	}
	return nil
}

func (r *Registry) expire(ctx context.Context, kind ResourceKind, id string) error {
	if !r.enabled {
		return nil
	}
	k := r.storageKey(kind, id)
	if err := r.provider.Del(ctx, k); err != nil {
		r.hooks.ProviderError("del", kind, err)
		return err
	}
	r.log.Debug("expired entry", Fields{"key": k})
	return nil
}

func (r *Registry) selfHeal(ctx context.Context, kind ResourceKind, storageKey, reason string) {
	if err := r.provider.Del(ctx, storageKey); err != nil {
		r.hooks.ProviderError("del", kind, err)
	}
	r.log.Debug("dropped unreadable entry", Fields{"key": storageKey, "reason": reason})
	r.hooks.SelfHeal(storageKey, reason)
}

func (r *Registry) storageKey(kind ResourceKind, id string) string {
	// isolate by kind and namespace
	return kind.String() + ":" + r.ns + ":" + id
}
