// Package wire frames cached payloads with a small kind-tagged header so the
// registry can tell its own entries from foreign or truncated values.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1
	hdrLen       = 4 + 1 + 1 + 4
)

var (
	ErrCorrupt   = errors.New("storagecache: corrupt entry")
	ErrWrongKind = errors.New("storagecache: entry kind mismatch")
	magic4       = [...]byte{'K', 'S', 'C', 'E'}
)

// Encode frames payload as
//
//	magic(4) | ver(1) | kind(1) | plen(u32 be) | payload(plen)
func Encode(kind byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kind)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode returns the payload of an entry framed by Encode with the same kind.
// The payload aliases b.
func Decode(kind byte, b []byte) ([]byte, error) {
	if len(b) < hdrLen || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return nil, ErrCorrupt
	}
	if b[5] != kind {
		return nil, ErrWrongKind
	}
	plen := int(binary.BigEndian.Uint32(b[6:hdrLen]))
	if plen != len(b)-hdrLen { // trailing or missing bytes
		return nil, ErrCorrupt
	}
	return b[hdrLen:], nil
}
