// Package codec converts typed payloads to the bytes a handle stores.
// The registry itself never interprets payload bytes; codecs are applied by
// storagecache.Value on the caller's side.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
