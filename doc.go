// Package storagecache caches folder lists, folder datasets and attachments
// read from a groupware storage backend (IMAP folders with annotations, ACLs
// and messages) in front of a pluggable byte store.
//
// Components:
//   - Registry: owns one handle per resource identity and passes payloads
//     through to the Provider.
//   - ListHandle / DatasetHandle: identity-bound views used by the folder-list
//     and dataset layers.
//   - Provider: byte store (Redis, BigCache, Ristretto).
//   - Codec[V]: optional typed view over a handle via Value[V].
//
// Identities are the hex SHA-256 of the canonical CBOR encoding of the
// parameter bag, so equal bags map to the same handle regardless of field
// order, and distinct bags never share one:
//
//	lh, err := reg.GetListHandle(storagecache.ConnectionParams{Host: "imap", Port: 143, User: "alice"})
//	dh, err := reg.GetDatasetHandle(storagecache.DatasetParams{
//		Host: "imap", Port: 143, Folder: "INBOX/Calendar", Type: "event", Owner: "alice",
//	})
//
// Keys:
//
//	list:<ns>:<id>        folder-list snapshots
//	data:<ns>:<id>        folder datasets
//	attachment:<ns>:<id>  attachments; id derived from (dataset, object, attachment)
//
// Cached values never expire on their own. A changed folder yields a new
// identity, or the caller expires the old entry.
package storagecache
