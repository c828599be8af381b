package storagecache

// Hooks are callbacks for high-signal registry events.
// Implementations MUST be cheap and non-blocking; the registry calls them on
// hot paths (never while holding a handle-map lock).
type Hooks interface {
	// A handle was created for a previously unseen identity.
	HandleCreated(kind ResourceKind, id string)

	// A load finished; hit reports whether a payload was returned.
	Loaded(kind ResourceKind, hit bool)

	// An entry was deleted on read.
	// reason ∈ {"corrupt", "wrong_kind", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string, kind ResourceKind)

	// The provider failed a Get, Set or Del. op ∈ {"get", "set", "del"}.
	ProviderError(op string, kind ResourceKind, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) HandleCreated(ResourceKind, string)        {}
func (NopHooks) Loaded(ResourceKind, bool)                 {}
func (NopHooks) SelfHeal(string, string)                   {}
func (NopHooks) ProviderSetRejected(string, ResourceKind)  {}
func (NopHooks) ProviderError(string, ResourceKind, error) {}
