package store

import (
	"github.com/iov-one/tokenweave/errors"
)

// SliceIterator iterates over models in the order of the slice.
type SliceIterator struct {
	models []Model
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(models []Model) *SliceIterator {
	return &SliceIterator{models: models}
}

func (it *SliceIterator) Next() (key, value []byte, err error) {
	if len(it.models) == 0 {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice")
	}
	m := it.models[0]
	it.models = it.models[1:]
	return m.Key, m.Value, nil
}

func (it *SliceIterator) Release() {
	it.models = nil
}

// EmptyKVStore is a store that holds nothing and ignores all writes. It is
// the bottom layer of a cache that does not need persistence.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has([]byte) (bool, error)   { return false, nil }
func (EmptyKVStore) Set(_, _ []byte) error      { return nil }
func (EmptyKVStore) Delete([]byte) error        { return nil }
func (e EmptyKVStore) NewBatch() Batch          { return NewNonAtomicBatch(e) }

func (EmptyKVStore) Iterator(_, _ []byte) (Iterator, error) {
	return &SliceIterator{}, nil
}

func (EmptyKVStore) ReverseIterator(_, _ []byte) (Iterator, error) {
	return &SliceIterator{}, nil
}

// Op is a single write, either a set or a delete, that is applied later.
type Op struct {
	del   bool
	key   []byte
	value []byte
}

func SetOp(key, value []byte) Op {
	return Op{key: key, value: value}
}

func DelOp(key []byte) Op {
	return Op{del: true, key: key}
}

func (o Op) IsSetOp() bool { return !o.del }
func (o Op) Key() []byte   { return o.key }

// Apply writes the operation to the store.
func (o Op) Apply(out SetDeleter) error {
	if o.del {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// NonAtomicBatch collects operations and applies them one by one on Write.
// A failure in the middle of Write leaves the earlier operations applied,
// so it must only be used for stores without persistence, or stores that
// are themselves discarded on failure, like a cache.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write applies all pending operations in order and clears the batch.
func (b *NonAtomicBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for i, op := range ops {
		if err := op.Apply(b.out); err != nil {
			return errors.Wrapf(err, "batch operation %d", i)
		}
	}
	return nil
}

// ShowOps returns the pending operations.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}

// PrefixRange returns the iteration bounds that select exactly the keys
// starting with prefix. The end is nil when the prefix is all 0xFF bytes.
func PrefixRange(prefix []byte) (start, end []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	start = append([]byte(nil), prefix...)
	end = append([]byte(nil), prefix...)
	for len(end) > 0 {
		last := len(end) - 1
		if end[last] != 0xFF {
			end[last]++
			return start, end
		}
		end = end[:last]
	}
	return start, nil
}
