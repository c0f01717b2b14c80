package storage

import "habitmini/internal/store"

// Provider is a durable key/value slot for the store snapshot. Every
// implementation keeps the snapshot as a single JSON document under
// constants.StateKey; swapping providers never changes the persisted shape.
//
// Provider satisfies store.Snapshotter, so a loaded provider can be handed
// straight to store.New.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshot
	SaveSnapshot(store.Snapshot) error
	// LoadSnapshot returns the persisted snapshot. ok is false when the slot
	// has never been written; a malformed slot is an error.
	LoadSnapshot() (snap store.Snapshot, ok bool, err error)

	// Utils
	GetConfigPath() string
}
