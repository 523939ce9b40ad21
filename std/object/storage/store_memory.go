package storage

import (
	"slices"
	"strings"
	"sync"

	enc "github.com/named-data/ndnlp/std/encoding"
)

// MemoryStore is a Store held in memory, sorted the same way BadgerStore
// sorts its keys.
type MemoryStore struct {
	mutex   sync.RWMutex
	entries []memoryEntry
}

type memoryEntry struct {
	key  string
	name enc.Name
	wire []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) String() string {
	return "memory-store"
}

func memoryKey(name enc.Name) string {
	return string(name.BytesInner())
}

// search returns the position of key, or where it would be inserted.
func (s *MemoryStore) search(key string) (int, bool) {
	return slices.BinarySearchFunc(s.entries, key, func(e memoryEntry, k string) int {
		return strings.Compare(e.key, k)
	})
}

// span returns the range of entries whose names start with prefix.
// No component encoding starts with 0xff, so every key under the
// prefix sorts before prefix+0xff.
func (s *MemoryStore) span(prefix enc.Name) (int, int) {
	key := memoryKey(prefix)
	lo, _ := s.search(key)
	hi, _ := s.search(key + "\xff")
	return lo, hi
}

func (s *MemoryStore) Get(name enc.Name, prefix bool) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if prefix {
		if lo, hi := s.span(name); lo < hi {
			return s.entries[hi-1].wire, nil
		}
		return nil, nil
	}

	if i, ok := s.search(memoryKey(name)); ok {
		return s.entries[i].wire, nil
	}
	return nil, nil
}

func (s *MemoryStore) Put(name enc.Name, wire []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e := memoryEntry{key: memoryKey(name), wire: slices.Clone(wire)}
	i, ok := s.search(e.key)
	if ok {
		s.entries[i].wire = e.wire
		return nil
	}
	e.name = name.Clone()
	s.entries = slices.Insert(s.entries, i, e)
	return nil
}

func (s *MemoryStore) Remove(name enc.Name) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if i, ok := s.search(memoryKey(name)); ok {
		s.entries = slices.Delete(s.entries, i, i+1)
	}
	return nil
}

func (s *MemoryStore) RemovePrefix(prefix enc.Name) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lo, hi := s.span(prefix)
	s.entries = slices.Delete(s.entries, lo, hi)
	return nil
}

func (s *MemoryStore) List(prefix enc.Name) ([]enc.Name, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lo, hi := s.span(prefix)
	names := make([]enc.Name, 0, hi-lo)
	for _, e := range s.entries[lo:hi] {
		names = append(names, e.name.Clone())
	}
	return names, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// MemSize returns the total size of stored wires.
func (s *MemoryStore) MemSize() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	size := 0
	for _, e := range s.entries {
		size += len(e.wire)
	}
	return size
}
