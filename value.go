package storagecache

import (
	"context"

	c "github.com/unkn0wn-root/storagecache/codec"
)

// Value reads and writes a typed payload through a handle.
//
//	lh, _ := reg.GetListHandle(storagecache.ConnectionParams{Host: "imap", Port: 143, User: "alice"})
//	folders := storagecache.Bind[[]string](lh, codec.JSON[[]string]{})
//	_ = folders.Set(ctx, []string{"INBOX", "Calendar"})
type Value[V any] struct {
	slot  Slot
	codec c.Codec[V]
}

func Bind[V any](slot Slot, codec c.Codec[V]) Value[V] {
	return Value[V]{slot: slot, codec: codec}
}

// Get decodes the cached payload. A payload the codec rejects is expired and
// reported as a miss.
func (v Value[V]) Get(ctx context.Context) (V, bool, error) {
	var zero V
	raw, ok, err := v.slot.Load(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := v.codec.Decode(raw)
	if err != nil {
		reg := v.slot.registry()
		reg.selfHeal(ctx, v.slot.kind(), reg.storageKey(v.slot.kind(), v.slot.ID()), "value_decode")
		return zero, false, nil
	}
	return out, true, nil
}

func (v Value[V]) Set(ctx context.Context, val V) error {
	raw, err := v.codec.Encode(val)
	if err != nil {
		return err
	}
	return v.slot.Store(ctx, raw)
}
