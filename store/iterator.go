package store

import (
	"bytes"

	"github.com/iov-one/tokenweave/errors"
)

// mergeIterator combines a snapshot of the cache items with the iterator of
// the parent store. Cache items shadow parent entries of the same key and
// deleted items hide them.
type mergeIterator struct {
	items   []entry
	parent  Iterator
	reverse bool

	// peeked parent entry
	pKey, pValue []byte
	pDone        bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(items []entry, parent Iterator, reverse bool) (*mergeIterator, error) {
	it := &mergeIterator{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
	if err := it.advanceParent(); err != nil {
		parent.Release()
		return nil, err
	}
	return it, nil
}

func (m *mergeIterator) advanceParent() error {
	if m.pDone {
		return nil
	}
	k, v, err := m.parent.Next()
	if errors.ErrIteratorDone.Is(err) {
		m.pKey, m.pValue, m.pDone = nil, nil, true
		return nil
	}
	if err != nil {
		return err
	}
	m.pKey, m.pValue = k, v
	return nil
}

// Next returns the next visible entry in iteration order.
func (m *mergeIterator) Next() ([]byte, []byte, error) {
	for {
		if len(m.items) == 0 && m.pDone {
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "merge iterator")
		}
		if len(m.items) == 0 {
			return m.takeParent()
		}
		if m.pDone {
			if k, v, ok := m.takeItem(); ok {
				return k, v, nil
			}
			continue
		}

		cmp := bytes.Compare(m.items[0].key, m.pKey)
		if m.reverse {
			cmp = -cmp
		}
		switch {
		case cmp > 0:
			return m.takeParent()
		case cmp == 0:
			// cached value shadows the parent
			if err := m.advanceParent(); err != nil {
				return nil, nil, err
			}
		}
		if k, v, ok := m.takeItem(); ok {
			return k, v, nil
		}
	}
}

// takeItem consumes the first cached item. It returns false if the item is a
// deletion marker.
func (m *mergeIterator) takeItem() ([]byte, []byte, bool) {
	item := m.items[0]
	m.items = m.items[1:]
	if item.deleted {
		return nil, nil, false
	}
	return item.key, item.value, true
}

func (m *mergeIterator) takeParent() ([]byte, []byte, error) {
	k, v := m.pKey, m.pValue
	if err := m.advanceParent(); err != nil {
		return nil, nil, err
	}
	return k, v, nil
}

// Release releases the parent iterator.
func (m *mergeIterator) Release() {
	m.items = nil
	m.parent.Release()
}
