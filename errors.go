package storagecache

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter matches every *MissingParameterError via errors.Is.
	ErrMissingParameter = errors.New("storagecache: missing parameter")

	// ErrAttachmentTooLarge is returned by StoreAttachment when the stream
	// exceeds Options.MaxAttachmentSize. Nothing is written in that case.
	ErrAttachmentTooLarge = errors.New("storagecache: attachment too large")

	// ErrPayloadTooLarge is returned by the store operations for payloads of
	// 4 GiB or more, which the entry envelope cannot frame.
	ErrPayloadTooLarge = errors.New("storagecache: payload too large")
)

// ResourceKind names the kind of cached resource an identity belongs to.
type ResourceKind uint8

const (
	KindList ResourceKind = iota + 1
	KindData
	KindAttachment
)

func (k ResourceKind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindData:
		return "data"
	case KindAttachment:
		return "attachment"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MissingParameterError reports a required field absent from a parameter bag.
// It is raised before any hashing or store access.
type MissingParameterError struct {
	Kind  ResourceKind
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("storagecache: unable to determine the %s cache key: the %q parameter is missing",
		e.Kind, e.Field)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}
