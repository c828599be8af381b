package storagecache

import (
	"context"
	"errors"
	"io"

	pr "github.com/unkn0wn-root/storagecache/provider"
)

// SetCostFunc returns the cost handed to cost-aware providers for one write.
type SetCostFunc func(storageKey string, raw []byte, kind ResourceKind) int64

// Store is the passthrough surface of a Registry. Higher-level list and
// dataset managers depend on it rather than on *Registry.
type Store interface {
	LoadDataset(ctx context.Context, dataID string) ([]byte, bool, error)
	StoreDataset(ctx context.Context, dataID string, data []byte) error
	ExpireDataset(ctx context.Context, dataID string) error

	LoadList(ctx context.Context, listID string) ([]byte, bool, error)
	StoreList(ctx context.Context, listID string, data []byte) error
	ExpireList(ctx context.Context, listID string) error

	LoadAttachment(ctx context.Context, dataID, objectID, attachmentID string) (io.ReadCloser, bool, error)
	StoreAttachment(ctx context.Context, dataID, objectID, attachmentID string, r io.Reader) error
	ExpireAttachment(ctx context.Context, dataID, objectID, attachmentID string) error
}

var _ Store = (*Registry)(nil)

// Options configure a Registry. Namespace and Provider are required.
type Options struct {
	Namespace string // isolates storage keys, e.g. "kolab:prod"
	Provider  pr.Provider

	Logger            Logger      // nil => NopLogger
	Hooks             Hooks       // nil => NopHooks
	Disabled          bool        // loads miss and stores are dropped; handles still resolve
	ComputeSetCost    SetCostFunc // nil => 1 per write
	MaxAttachmentSize int64       // bytes; 0 => unlimited
}

// New constructs a Registry. The registry owns no global state; its handles
// live as long as it does.
func New(opts Options) (*Registry, error) {
	if opts.Provider == nil {
		return nil, errors.New("storagecache: provider is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("storagecache: namespace is required")
	}
	if opts.MaxAttachmentSize < 0 {
		return nil, errors.New("storagecache: negative attachment size limit")
	}

	r := &Registry{
		ns:            opts.Namespace,
		provider:      opts.Provider,
		enabled:       !opts.Disabled,
		maxAttachment: opts.MaxAttachmentSize,
		datasets:      make(map[string]*DatasetHandle),
		lists:         make(map[string]*ListHandle),
	}
	r.log = coalesce[Logger](opts.Logger, NopLogger{})
	r.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.ComputeSetCost != nil {
		r.computeSetCost = opts.ComputeSetCost
	} else {
		r.computeSetCost = func(string, []byte, ResourceKind) int64 { return 1 }
	}
	return r, nil
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
