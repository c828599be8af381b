package codec

import (
	"errors"

	"google.golang.org/protobuf/proto"
)

var errNoConstructor = errors.New("codec: protobuf codec has no message constructor")

// Protobuf serializes one concrete message type, typically a generated
// folder-list or dataset message shared with other services reading the
// same store. Build it with NewProtobuf; the zero value cannot decode.
type Protobuf[T proto.Message] struct {
	newMsg func() T
}

// NewProtobuf takes a constructor returning a fresh, non-nil message, e.g.
// func() *pb.FolderList { return &pb.FolderList{} }.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{newMsg: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	if c.newMsg == nil {
		var zero T
		return zero, errNoConstructor
	}
	m := c.newMsg()
	if err := proto.Unmarshal(b, m); err != nil {
		var zero T
		return zero, err
	}
	return m, nil
}
