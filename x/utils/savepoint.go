package utils

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// Savepoint runs the rest of the chain on a cache of the store. The cache
// is written only when the chain succeeds, so a failed transaction leaves
// no partial changes behind. It is disabled until enabled with OnCheck or
// OnDeliver.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ weave.Decorator = Savepoint{}

func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck enables the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver enables the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	var res *weave.CheckResult
	err := isolate(s.onCheck, db, func(kv weave.KVStore) (err error) {
		res, err = next.Check(ctx, kv, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	var res *weave.DeliverResult
	err := isolate(s.onDeliver, db, func(kv weave.KVStore) (err error) {
		res, err = next.Deliver(ctx, kv, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn with a cache of db when enabled and db can be cached,
// and with db itself otherwise.
func isolate(enabled bool, db weave.KVStore, fn func(weave.KVStore) error) error {
	cacheable, ok := db.(weave.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "savepoint")
}
