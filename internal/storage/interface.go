package storage

// Provider is the durable storage contract. Implementations own all
// blocking I/O; nothing above this interface touches the disk.
//
// Load never fails on missing or corrupt data: it degrades to a
// default snapshot so a storage problem can never block the user.
// Save replaces the whole durable state with the given snapshot; after
// a successful Save, Load returns an observationally equal snapshot.
type Provider interface {
	Init() error
	Load() (Snapshot, error)
	Save(Snapshot) error
	Close() error
	Path() string
}
