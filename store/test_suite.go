package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

// TestStoreConstructor returns a fresh, empty store and a function releasing
// its resources.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// TestSuite runs the same set of checks against any CacheableKVStore
// implementation. Every check compares the store with a plain map that
// received the same operations.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// NewTestSuite returns a suite testing stores built by constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// Run executes all checks of the suite as subtests.
func (s *TestSuite) Run(t *testing.T) {
	t.Run("get and set", s.GetSet)
	t.Run("cache layers", s.CacheLayers)
	t.Run("iterator", s.Iterator)
	t.Run("prefix iterator", s.PrefixIterator)
}

// GetSet checks that writes to a cache are visible only after Write and
// that a discarded cache leaves no trace.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	alice, bob, carol := balanceKey("alice", "gold"), balanceKey("bob", "gold"), balanceKey("carol", "gold")

	s.AssertGetHas(t, base, alice, nil, false)
	assert.Nil(t, base.Set(alice, []byte("100")))
	s.AssertGetHas(t, base, alice, []byte("100"), true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, alice, []byte("100"), true)
	assert.Nil(t, cache.Set(bob, []byte("40")))
	assert.Nil(t, cache.Set(alice, []byte("60")))
	s.AssertGetHas(t, cache, bob, []byte("40"), true)
	s.AssertGetHas(t, base, bob, nil, false)
	s.AssertGetHas(t, base, alice, []byte("100"), true)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, alice, []byte("60"), true)
	s.AssertGetHas(t, base, bob, []byte("40"), true)

	discarded := base.CacheWrap()
	assert.Nil(t, discarded.Set(carol, []byte("1")))
	assert.Nil(t, discarded.Delete(alice))
	discarded.Discard()
	s.AssertGetHas(t, base, carol, nil, false)
	s.AssertGetHas(t, base, alice, []byte("60"), true)
}

// CacheLayers applies operations to a parent store and to a cache on top of
// it and checks that each layer shows its own view.
func (s *TestSuite) CacheLayers(t *testing.T) {
	a, b, c := balanceKey("alice", "gold"), balanceKey("alice", "silver"), balanceKey("bob", "gold")

	cases := map[string]struct {
		parent []Op
		child  []Op
	}{
		"overwrite": {
			parent: []Op{SetOp(a, []byte("1"))},
			child:  []Op{SetOp(a, []byte("2"))},
		},
		"delete from parent": {
			parent: []Op{SetOp(a, []byte("1")), SetOp(b, []byte("2"))},
			child:  []Op{DelOp(b)},
		},
		"set after delete": {
			parent: []Op{SetOp(a, []byte("1"))},
			child:  []Op{DelOp(a), SetOp(a, []byte("3")), SetOp(c, []byte("4"))},
		},
		"delete missing": {
			child: []Op{DelOp(c)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			parentView := applyOps(t, parent, newMapStore(), tc.parent)
			child := parent.CacheWrap()
			childView := applyOps(t, child, parentView.clone(), tc.child)

			for _, k := range [][]byte{a, b, c} {
				s.AssertGetHas(t, parent, k, parentView[string(k)], parentView.has(k))
				s.AssertGetHas(t, child, k, childView[string(k)], childView.has(k))
			}

			assert.Nil(t, child.Write())
			for _, k := range [][]byte{a, b, c} {
				s.AssertGetHas(t, parent, k, childView[string(k)], childView.has(k))
			}
		})
	}
}

// Iterator checks ranged iteration in both directions over a cache that
// overrides and deletes part of its parent content.
func (s *TestSuite) Iterator(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	const owners, assets = 12, 4
	var parentOps, childOps []Op
	for i := 0; i < owners; i++ {
		// Insert out of order.
		o := (i * 5) % owners
		for a := 0; a < assets; a++ {
			key := balanceKey(fmt.Sprintf("owner-%02d", o), fmt.Sprintf("asset-%d", a))
			parentOps = append(parentOps, SetOp(key, []byte(fmt.Sprint(o*a))))
			switch (o + a) % 3 {
			case 0:
				childOps = append(childOps, DelOp(key))
			case 1:
				childOps = append(childOps, SetOp(key, []byte(fmt.Sprint(o+a))))
			}
		}
		childOps = append(childOps, SetOp(balanceKey(fmt.Sprintf("owner-%02d", o), "new"), []byte("1")))
	}

	view := applyOps(t, base, newMapStore(), parentOps)
	child := base.CacheWrap()
	view = applyOps(t, child, view, childOps)

	all := view.sorted()
	if len(all) < 10 {
		t.Fatalf("too few models to iterate: %d", len(all))
	}
	ranges := []struct {
		start, end []byte
	}{
		{nil, nil},
		{all[3].Key, nil},
		{nil, all[len(all)-4].Key},
		{all[2].Key, all[9].Key},
		{balanceKey("owner-03", ""), balanceKey("owner-06", "")},
		{all[5].Key, all[5].Key},
	}
	for _, r := range ranges {
		want := view.between(r.start, r.end)
		it, err := child.Iterator(r.start, r.end)
		assert.Nil(t, err)
		assertIterates(t, it, want)

		it, err = child.ReverseIterator(r.start, r.end)
		assert.Nil(t, err)
		assertIterates(t, it, reverse(want))
	}
}

// PrefixIterator checks that PrefixRange bounds select exactly the keys of
// one owner.
func (s *TestSuite) PrefixIterator(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	view := newMapStore()
	ops := []Op{
		SetOp(balanceKey("alice", "gold"), []byte("1")),
		SetOp(balanceKey("alice", "silver"), []byte("2")),
		SetOp(balanceKey("alicia", "gold"), []byte("3")),
		SetOp(balanceKey("bob", "gold"), []byte("4")),
		SetOp([]byte{0xFF, 0xFF}, []byte("5")),
	}
	view = applyOps(t, base, view, ops)

	start, end := PrefixRange(balanceKey("alice", ""))
	it, err := base.Iterator(start, end)
	assert.Nil(t, err)
	assertIterates(t, it, view.between(start, end))

	start, end = PrefixRange([]byte{0xFF})
	assert.Nil(t, end)
	it, err = base.Iterator(start, end)
	assert.Nil(t, err)
	assertIterates(t, it, []Model{Pair([]byte{0xFF, 0xFF}, []byte("5"))})
}

// AssertGetHas checks both Get and Has results for a key.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func balanceKey(owner, asset string) []byte {
	return []byte("bal:" + owner + "/" + asset)
}

// mapStore is the reference every store is compared with.
type mapStore map[string][]byte

func newMapStore() mapStore {
	return make(mapStore)
}

func (m mapStore) has(key []byte) bool {
	_, ok := m[string(key)]
	return ok
}

func (m mapStore) clone() mapStore {
	c := make(mapStore, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (m mapStore) sorted() []Model {
	res := make([]Model, 0, len(m))
	for k, v := range m {
		res = append(res, Pair([]byte(k), v))
	}
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

// between returns sorted models with start <= key < end. Nil bounds are
// open.
func (m mapStore) between(start, end []byte) []Model {
	var res []Model
	for _, p := range m.sorted() {
		if start != nil && bytes.Compare(p.Key, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(p.Key, end) >= 0 {
			continue
		}
		res = append(res, p)
	}
	return res
}

func applyOps(t testing.TB, kv SetDeleter, view mapStore, ops []Op) mapStore {
	t.Helper()
	for _, op := range ops {
		assert.Nil(t, op.Apply(kv))
		if op.IsSetOp() {
			view[string(op.key)] = op.value
		} else {
			delete(view, string(op.key))
		}
	}
	return view
}

func assertIterates(t testing.TB, it Iterator, want []Model) {
	t.Helper()
	defer it.Release()
	for i, w := range want {
		key, value, err := it.Next()
		if err != nil {
			t.Fatalf("model %d of %d: %+v", i, len(want), err)
		}
		if !bytes.Equal(w.Key, key) {
			t.Fatalf("model %d: want key %q, got %q", i, w.Key, key)
		}
		assert.Equal(t, w.Value, value)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want iterator to be done, got %+v", err)
	}
}

func reverse(models []Model) []Model {
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}
