package orm

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
)

// index keeps a separate database entry for every indexed entity. The entry
// key is
//
//	<index prefix> | len(value) | value | primary key
//
// so that all entities indexed under the same value share a common prefix.
type index struct {
	prefix  []byte
	indexer Indexer
}

func (idx *index) valuePrefix(value []byte) []byte {
	out := make([]byte, 0, len(idx.prefix)+1+len(value))
	out = append(out, idx.prefix...)
	out = append(out, byte(len(value)))
	return append(out, value...)
}

func (idx *index) entryKey(value, pk []byte) []byte {
	return append(idx.valuePrefix(value), pk...)
}

func (idx *index) value(m Model) ([]byte, error) {
	value, err := idx.indexer(m)
	if err != nil {
		return nil, err
	}
	if len(value) > 255 {
		return nil, errors.Wrap(errors.ErrInput, "index value too long")
	}
	return value, nil
}

func (idx *index) add(db weave.KVStore, pk []byte, m Model) error {
	value, err := idx.value(m)
	if err != nil || value == nil {
		return err
	}
	return db.Set(idx.entryKey(value, pk), []byte{})
}

func (idx *index) remove(db weave.KVStore, pk []byte, m Model) error {
	value, err := idx.value(m)
	if err != nil || value == nil {
		return err
	}
	return db.Delete(idx.entryKey(value, pk))
}

func (idx *index) keys(db weave.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	prefix := idx.valuePrefix(value)
	start, end := store.PrefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	defer it.Release()

	var keys [][]byte
	for {
		key, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return keys, nil
		}
		if err != nil {
			return nil, err
		}
		keys = append(keys, key[len(prefix):])
	}
}
