package models

// MutationOrigin states who initiated a domain-store mutation. The sync
// engine applies remote changes with OriginSyncApplied so the store skips
// building a new sync item and emitting change events, which would loop the
// change straight back into the push path.
type MutationOrigin int

const (
	// OriginUser is a mutation initiated locally by the user.
	OriginUser MutationOrigin = iota

	// OriginSyncApplied is a mutation performed by the sync engine while
	// applying a remote item.
	OriginSyncApplied
)

// MutationOptions travels with every domain-store mutation.
type MutationOptions struct {
	Origin MutationOrigin
}

// ShouldSaveSyncItem reports whether the mutation should produce a local
// sync item (push path).
func (o MutationOptions) ShouldSaveSyncItem() bool { return o.Origin == OriginUser }

// ShouldEmitEvent reports whether the mutation should notify listeners.
func (o MutationOptions) ShouldEmitEvent() bool { return o.Origin == OriginUser }
