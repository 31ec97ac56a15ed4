package orm

import (
	"fmt"
	"reflect"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
)

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db weave.ReadOnlyKVStore, key []byte) (bool, error)

	// Put saves given model in the database. The model is validated
	// first and all indexes are updated.
	Put(db weave.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db weave.KVStore, key []byte) error

	// PrefixScan returns an iterator over all entities whose primary key
	// starts with given prefix. Empty prefix iterates the whole bucket.
	PrefixScan(db weave.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error)

	// ByIndex returns the primary keys of all entities indexed under given
	// value, in ascending order.
	ByIndex(db weave.ReadOnlyKVStore, indexName string, value []byte) ([][]byte, error)

	// Register registers this bucket and all its indexes on given router.
	// Bucket content is available under /<name> and every index under
	// /<name>/<index name>.
	Register(name string, r weave.QueryRouter)
}

// ModelBucketOption configures a ModelBucket.
type ModelBucketOption func(*modelBucket)

// WithIndex declares a secondary index of given name.
func WithIndex(name string, indexer Indexer) ModelBucketOption {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal index name: %q", name))
	}
	return func(mb *modelBucket) {
		if _, ok := mb.indexes[name]; ok {
			panic(fmt.Sprintf("index %q declared twice", name))
		}
		mb.indexes[name] = &index{
			prefix:  []byte("_i." + mb.name + "_" + name + ":"),
			indexer: indexer,
		}
	}
}

// NewModelBucket returns a ModelBucket storing entities of the same type as
// given example model. Name must be unique among all buckets.
func NewModelBucket(name string, example Model, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	t := reflect.TypeOf(example)
	if t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model must be a pointer, got %T", example))
	}
	mb := &modelBucket{
		name:    name,
		prefix:  []byte(name + ":"),
		model:   t,
		indexes: make(map[string]*index),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	name    string
	prefix  []byte
	model   reflect.Type
	indexes map[string]*index
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix. A new slice is
// always allocated, so that consecutive calls never share memory.
func (mb *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, len(mb.prefix)+len(key))
	copy(out, mb.prefix)
	copy(out[len(mb.prefix):], key)
	return out
}

func (mb *modelBucket) checkType(dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot load %T, want %s", mb.name, dest, mb.model)
	}
	return nil
}

func (mb *modelBucket) newModel() Model {
	return reflect.New(mb.model.Elem()).Interface().(Model)
}

func (mb *modelBucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := mb.checkType(dest); err != nil {
		return err
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %s", mb.name)
	}
	return nil
}

func (mb *modelBucket) Has(db weave.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot read from the database")
	}
	return ok, nil
}

func (mb *modelBucket) Put(db weave.KVStore, key []byte, m Model) error {
	if err := mb.checkType(m); err != nil {
		return err
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s model", mb.name)
	}
	if len(mb.indexes) != 0 {
		if err := mb.dropIndexes(db, key); err != nil {
			return err
		}
		if err := mb.writeIndexes(db, key, m); err != nil {
			return err
		}
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %s", mb.name)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db weave.KVStore, key []byte) error {
	ok, err := mb.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	if err := mb.dropIndexes(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

// dropIndexes removes index entries of the currently stored entity, if any.
func (mb *modelBucket) dropIndexes(db weave.KVStore, key []byte) error {
	if len(mb.indexes) == 0 {
		return nil
	}
	prev := mb.newModel()
	switch err := mb.One(db, key, prev); {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return err
	}
	for name, idx := range mb.indexes {
		if err := idx.remove(db, key, prev); err != nil {
			return errors.Wrapf(err, "index %s", name)
		}
	}
	return nil
}

func (mb *modelBucket) writeIndexes(db weave.KVStore, key []byte, m Model) error {
	for name, idx := range mb.indexes {
		if err := idx.add(db, key, m); err != nil {
			return errors.Wrapf(err, "index %s", name)
		}
	}
	return nil
}

func (mb *modelBucket) PrefixScan(db weave.ReadOnlyKVStore, prefix []byte, reverse bool) (ModelIterator, error) {
	start, end := store.PrefixRange(mb.dbKey(prefix))
	var (
		it  weave.Iterator
		err error
	)
	if reverse {
		it, err = db.ReverseIterator(start, end)
	} else {
		it, err = db.Iterator(start, end)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	return &modelIterator{bucket: mb, it: it}, nil
}

func (mb *modelBucket) ByIndex(db weave.ReadOnlyKVStore, indexName string, value []byte) ([][]byte, error) {
	idx, ok := mb.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%s bucket has no %q index", mb.name, indexName)
	}
	return idx.keys(db, value)
}

func (mb *modelBucket) Register(name string, r weave.QueryRouter) {
	if name == "" {
		name = mb.name
	}
	root := "/" + name
	r.Register(root, bucketQuery{mb})
	for idxName, idx := range mb.indexes {
		r.Register(root+"/"+idxName, indexQuery{bucket: mb, idx: idx})
	}
}

type modelIterator struct {
	bucket *modelBucket
	it     weave.Iterator
}

func (i *modelIterator) Next(dest Model) ([]byte, error) {
	if err := i.bucket.checkType(dest); err != nil {
		return nil, err
	}
	key, raw, err := i.it.Next()
	if err != nil {
		return nil, err
	}
	if err := dest.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal %s", i.bucket.name)
	}
	return key[len(i.bucket.prefix):], nil
}

func (i *modelIterator) Release() {
	i.it.Release()
}
