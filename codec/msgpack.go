package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use. Struct fields follow `msgpack:"name"` tags.
//
// A folder dataset keyed by object backend id is the usual payload. Map keys
// are written in iteration order, so two encodings of the same dataset may
// differ byte for byte; use a deterministic CBOR codec when that matters.
type Msgpack[V any] struct{}

var _ Codec[map[string][]byte] = Msgpack[map[string][]byte]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
