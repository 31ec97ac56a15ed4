package orm

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
)

// bucketQuery exposes the bucket content. Returned model keys are full
// database keys, including the bucket prefix.
type bucketQuery struct {
	bucket *modelBucket
}

func (q bucketQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	switch mod {
	case weave.KeyQueryMod:
		key := q.bucket.dbKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []weave.Model{weave.Pair(key, value)}, nil
	case weave.PrefixQueryMod:
		return queryPrefix(db, q.bucket.dbKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

// indexQuery returns all entities indexed under the value given as the query
// data.
type indexQuery struct {
	bucket *modelBucket
	idx    *index
}

func (q indexQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	if mod != weave.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported index query mod %q", mod)
	}
	pks, err := q.idx.keys(db, data)
	if err != nil {
		return nil, err
	}
	res := make([]weave.Model, 0, len(pks))
	for _, pk := range pks {
		key := q.bucket.dbKey(pk)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, errors.Wrapf(errors.ErrState, "index refers to a missing %s entity", q.bucket.name)
		}
		res = append(res, weave.Pair(key, value))
	}
	return res, nil
}

// queryPrefix returns all key-value pairs whose key starts with given prefix.
func queryPrefix(db weave.ReadOnlyKVStore, prefix []byte) ([]weave.Model, error) {
	start, end := store.PrefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(it)
}

// ConsumeIterator will read all remaining data into an
// array and release the iterator
func ConsumeIterator(it weave.Iterator) ([]weave.Model, error) {
	defer it.Release()

	var res []weave.Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, weave.Pair(key, value))
	}
}
