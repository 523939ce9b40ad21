package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/log"
)

// BadgerStore is a Store on disk using badger.
//
// Keys are name encodings without the Name TL. Every name under a prefix
// then has a key under the prefix's key, and byte order of keys matches
// canonical name order, so both prefix lookups become key range scans.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store at %s: %w", path, err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) String() string {
	return "badger-store"
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// scan calls fn on each item whose key starts with prefix until fn returns false.
func scan(txn *badger.Txn, prefix []byte, reverse bool, keysOnly bool, fn func(*badger.Item) (bool, error)) error {
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	opts.PrefetchValues = !keysOnly

	start := prefix
	if reverse {
		// no component encoding starts with 0xff
		start = append(append([]byte{}, prefix...), 0xff)
	} else {
		opts.Prefix = prefix
	}
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(start); it.ValidForPrefix(prefix); it.Next() {
		more, err := fn(it.Item())
		if err != nil || !more {
			return err
		}
	}
	return nil
}

func (s *BadgerStore) Get(name enc.Name, prefix bool) (wire []byte, err error) {
	key := name.BytesInner()
	err = s.db.View(func(txn *badger.Txn) error {
		if prefix {
			return scan(txn, key, true, false, func(item *badger.Item) (bool, error) {
				wire, err = item.ValueCopy(nil)
				return false, err
			})
		}

		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		wire, err = item.ValueCopy(nil)
		return err
	})
	return wire, err
}

func (s *BadgerStore) Put(name enc.Name, wire []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(name.BytesInner(), wire)
	})
}

func (s *BadgerStore) Remove(name enc.Name) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(name.BytesInner())
	})
}

func (s *BadgerStore) RemovePrefix(prefix enc.Name) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return scan(txn, prefix.BytesInner(), false, true, func(item *badger.Item) (bool, error) {
			return true, txn.Delete(item.KeyCopy(nil))
		})
	})
}

func (s *BadgerStore) List(prefix enc.Name) ([]enc.Name, error) {
	names := make([]enc.Name, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		return scan(txn, prefix.BytesInner(), false, true, func(item *badger.Item) (bool, error) {
			r := enc.NewBufferView(item.KeyCopy(nil))
			name, err := r.ReadName()
			if err != nil {
				log.Warn(s, "Skipping undecodable key", "key", item.Key(), "err", err)
				return true, nil
			}
			names = append(names, name)
			return true, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// badgerLogger routes badger output to our logger one level lower,
// since badger reports routine compaction at INFO.
type badgerLogger struct{}

func (badgerLogger) String() string {
	return "badger"
}

func (l badgerLogger) Errorf(f string, v ...any) {
	log.Default().Error(l, fmt.Sprintf(f, v...))
}

func (l badgerLogger) Warningf(f string, v ...any) {
	log.Default().Warn(l, fmt.Sprintf(f, v...))
}

func (l badgerLogger) Infof(f string, v ...any) {
	log.Default().Debug(l, fmt.Sprintf(f, v...))
}

func (l badgerLogger) Debugf(f string, v ...any) {
	log.Default().Trace(l, fmt.Sprintf(f, v...))
}
