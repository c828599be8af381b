package codec

import "encoding/json"

// JSON encodes values with encoding/json. The zero value is ready to use.
//
// It suits small list payloads such as a folder list ([]string) or the
// folder-to-type map of a connection, where a readable entry in the store
// helps debugging. Larger folder datasets are cheaper with CBOR or Msgpack.
// encoding/json sorts map keys, so equal maps encode to equal bytes.
type JSON[V any] struct{}

var _ Codec[[]string] = JSON[[]string]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
