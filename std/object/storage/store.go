package storage

import enc "github.com/named-data/ndnlp/std/encoding"

// Store keeps encoded frames keyed by name.
type Store interface {
	// Get returns the wire stored under the given name.
	// prefix = return the wire with the canonically last name under the given prefix
	Get(name enc.Name, prefix bool) ([]byte, error)

	// Put inserts a wire into the store, replacing any wire with the same name
	Put(name enc.Name, wire []byte) error

	// Remove removes a wire from the store
	Remove(name enc.Name) error
	// RemovePrefix removes all wires under a prefix
	RemovePrefix(prefix enc.Name) error

	// List returns the names of all wires under a prefix, in canonical order
	List(prefix enc.Name) ([]enc.Name, error)

	// Close releases the underlying storage
	Close() error
}
