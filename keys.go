package storagecache

import (
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/storagecache/internal/util"
)

var (
	listFields = []string{"host", "port", "user"}
	dataFields = []string{"host", "port", "folder", "type", "owner"}
)

// canonical encodes maps with sorted keys and shortest integer forms
// (RFC 8949 core deterministic encoding), so equal bags give equal bytes.
var canonical = mustCanonicalMode()

func mustCanonicalMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// Params is an unordered parameter bag describing a connection or a dataset.
// A nil value counts as absent.
type Params map[string]any

// ParamSource produces the parameter bag an identity is derived from.
type ParamSource interface {
	Params() Params
}

var (
	_ ParamSource = Params(nil)
	_ ParamSource = ConnectionParams{}
	_ ParamSource = DatasetParams{}
)

func (p Params) Params() Params { return p }

// ConnectionParams describes a backend connection; it identifies a folder list.
// Zero-valued required fields are left out of the bag and fail validation.
// Extra entries named like a required field are ignored, so only the typed
// fields can satisfy or set host, port and user.
type ConnectionParams struct {
	Host  string
	Port  int
	User  string
	Extra Params // additional fields that also partition the identity
}

func (c ConnectionParams) Params() Params {
	p := make(Params, 3+len(c.Extra))
	copyExtra(p, c.Extra, listFields)
	setNonZero(p, "host", c.Host)
	setNonZero(p, "port", c.Port)
	setNonZero(p, "user", c.User)
	return p
}

// DatasetParams describes one folder's object dataset. As with
// ConnectionParams, Extra cannot supply or override a required field.
type DatasetParams struct {
	Host   string
	Port   int
	Folder string
	Type   string // groupware object type, e.g. "event", "contact"
	Owner  string
	Extra  Params
}

func (d DatasetParams) Params() Params {
	p := make(Params, 5+len(d.Extra))
	copyExtra(p, d.Extra, dataFields)
	setNonZero(p, "host", d.Host)
	setNonZero(p, "port", d.Port)
	setNonZero(p, "folder", d.Folder)
	setNonZero(p, "type", d.Type)
	setNonZero(p, "owner", d.Owner)
	return p
}

func copyExtra(dst, extra Params, reserved []string) {
	for k, v := range extra {
		if !slices.Contains(reserved, k) {
			dst[k] = v
		}
	}
}

func setNonZero[T comparable](p Params, key string, v T) {
	var zero T
	if v != zero {
		p[key] = v
	}
}

// ListID derives the folder-list identity of a connection.
// host, port and user are required.
func ListID(src ParamSource) (string, error) {
	return deriveID(KindList, listFields, src.Params())
}

// DataID derives the dataset identity of a folder.
// host, port, folder, type and owner are required.
func DataID(src ParamSource) (string, error) {
	return deriveID(KindData, dataFields, src.Params())
}

// AttachmentID derives the identity of one attachment of one object.
// The arguments are not validated; callers always hold all three.
func AttachmentID(dataID, objectID, attachmentID string) string {
	b, err := canonical.Marshal(map[string]string{
		"d": dataID,
		"o": objectID,
		"p": attachmentID,
	})
	if err != nil {
		// strings always encode
		panic(err)
	}
	return util.Digest(b)
}

func deriveID(kind ResourceKind, required []string, p Params) (string, error) {
	for _, field := range required {
		if v, ok := p[field]; !ok || v == nil {
			return "", &MissingParameterError{Kind: kind, Field: field}
		}
	}
	b, err := canonical.Marshal(map[string]any(p))
	if err != nil {
		return "", fmt.Errorf("storagecache: encode %s parameters: %w", kind, err)
	}
	return util.Digest(b), nil
}
