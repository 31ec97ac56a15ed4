package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree keeps nodes small, caches hold the writes of a single block.
const btreeDegree = 2

// BTreeCacheable turns any KVStore into a CacheableKVStore by caching
// writes in a btree until they are written back.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns an empty in-memory store. Nothing it holds is ever
// persisted.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return NewBTreeCacheWrap(empty, empty.NewBatch(), nil)
}

// BTreeCacheWrap buffers writes in a btree. Reads see the buffered writes
// first and fall back to the parent store. Write flushes the buffer
// through batch.
type BTreeCacheWrap struct {
	entries *btree.BTree
	free    *btree.FreeList
	parent  ReadOnlyKVStore
	batch   Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap caches writes over parent. All writes also go to
// batch, parent is only read. Nested caches share free to recycle nodes,
// pass nil to allocate a new list.
func NewBTreeCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		entries: btree.NewWithFreeList(btreeDegree, free),
		free:    free,
		parent:  parent,
		batch:   batch,
	}
}

// CacheWrap stacks another cache on this one. Writing it flushes into
// this cache, not into the parent store.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write flushes the buffered writes and empties the cache.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard drops the buffered writes. Nodes return to the free list.
func (b BTreeCacheWrap) Discard() {
	for b.entries.Len() > 0 {
		b.entries.DeleteMin()
	}
}

func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.entries.ReplaceOrInsert(entry{key: key, value: value})
	return b.batch.Set(key, value)
}

func (b BTreeCacheWrap) Delete(key []byte) error {
	b.entries.ReplaceOrInsert(entry{key: key, deleted: true})
	return b.batch.Delete(key)
}

func (b BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	found := b.entries.Get(entry{key: key})
	if found == nil {
		return entry{}, false
	}
	return found.(entry), true
}

func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	e, ok := b.lookup(key)
	switch {
	case !ok:
		return b.parent.Get(key)
	case e.deleted:
		return nil, nil
	default:
		return e.value, nil
	}
}

func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	e, ok := b.lookup(key)
	if !ok {
		return b.parent.Has(key)
	}
	return !e.deleted, nil
}

// Iterator returns the [start, end) range in ascending key order, with
// the buffered writes applied over the parent content.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(b.snapshot(start, end), parent, false)
}

// ReverseIterator is Iterator in descending key order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	entries := b.snapshot(start, end)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return newMergeIterator(entries, parent, true)
}

// snapshot copies the buffered entries within [start, end) in ascending
// order. Nil bounds are open.
func (b BTreeCacheWrap) snapshot(start, end []byte) []entry {
	var res []entry
	visit := func(i btree.Item) bool {
		e := i.(entry)
		if end != nil && bytes.Compare(e.key, end) >= 0 {
			return false
		}
		res = append(res, e)
		return true
	}
	if start == nil {
		b.entries.Ascend(visit)
	} else {
		b.entries.AscendGreaterOrEqual(entry{key: start}, visit)
	}
	return res
}

// entry is a buffered write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
