package storagecache

import (
	"context"
	"io"
)

// Slot is a single cached payload bound to a fixed identity.
// Both handle kinds are slots.
type Slot interface {
	ID() string
	Load(ctx context.Context) ([]byte, bool, error)
	Store(ctx context.Context, data []byte) error
	Expire(ctx context.Context) error

	registry() *Registry
	kind() ResourceKind
}

var (
	_ Slot = (*DatasetHandle)(nil)
	_ Slot = (*ListHandle)(nil)
)

// DatasetHandle is the registry's view of one folder's object dataset and its
// attachments. Obtain it from Registry.GetDatasetHandle; handles for equal
// parameters are the same pointer.
type DatasetHandle struct {
	reg *Registry
	id  string
}

func (h *DatasetHandle) ID() string { return h.id }

func (h *DatasetHandle) Load(ctx context.Context) ([]byte, bool, error) {
	return h.reg.LoadDataset(ctx, h.id)
}

func (h *DatasetHandle) Store(ctx context.Context, data []byte) error {
	return h.reg.StoreDataset(ctx, h.id, data)
}

func (h *DatasetHandle) Expire(ctx context.Context) error {
	return h.reg.ExpireDataset(ctx, h.id)
}

func (h *DatasetHandle) LoadAttachment(ctx context.Context, objectID, attachmentID string) (io.ReadCloser, bool, error) {
	return h.reg.LoadAttachment(ctx, h.id, objectID, attachmentID)
}

func (h *DatasetHandle) StoreAttachment(ctx context.Context, objectID, attachmentID string, r io.Reader) error {
	return h.reg.StoreAttachment(ctx, h.id, objectID, attachmentID, r)
}

func (h *DatasetHandle) ExpireAttachment(ctx context.Context, objectID, attachmentID string) error {
	return h.reg.ExpireAttachment(ctx, h.id, objectID, attachmentID)
}

func (h *DatasetHandle) registry() *Registry { return h.reg }
func (h *DatasetHandle) kind() ResourceKind  { return KindData }

// ListHandle is the registry's view of the folder list of one connection.
type ListHandle struct {
	reg *Registry
	id  string
}

// setID is called once by the registry before the handle is published.
func (h *ListHandle) setID(id string) { h.id = id }

func (h *ListHandle) ID() string { return h.id }

func (h *ListHandle) Load(ctx context.Context) ([]byte, bool, error) {
	return h.reg.LoadList(ctx, h.id)
}

func (h *ListHandle) Store(ctx context.Context, data []byte) error {
	return h.reg.StoreList(ctx, h.id, data)
}

func (h *ListHandle) Expire(ctx context.Context) error {
	return h.reg.ExpireList(ctx, h.id)
}

func (h *ListHandle) registry() *Registry { return h.reg }
func (h *ListHandle) kind() ResourceKind  { return KindList }
