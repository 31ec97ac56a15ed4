package app

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// CommitStore layers two caches over the persistent store. Transactions
// of the current block are delivered into one, mempool checks run against
// the other. Both are rebuilt on every commit.
type CommitStore struct {
	committed weave.CommitKVStore
	deliver   weave.KVCacheWrap
	check     weave.KVCacheWrap
}

// NewCommitStore opens the latest version of store. It panics when the
// store cannot be loaded, a node cannot start without its state.
func NewCommitStore(store weave.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(errors.Wrap(err, "load latest version"))
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (weave.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists everything delivered since the last commit. Pending
// check state is dropped.
func (cs *CommitStore) Commit() (weave.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return weave.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() weave.CacheableKVStore {
	return cs.check
}

func (cs *CommitStore) DeliverStore() weave.CacheableKVStore {
	return cs.deliver
}

// QueryStore returns a read view of the committed state. Discard it once
// done.
func (cs *CommitStore) QueryStore() weave.KVCacheWrap {
	return cs.committed.CacheWrap()
}

// chainIDKey is outside of any bucket namespace.
const chainIDKey = "_tw:chainID"

func loadChainID(db weave.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID writes the chain id. It can be written only once.
func saveChainID(db weave.KVStore, chainID string) error {
	if !weave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch prev, err := loadChainID(db); {
	case err != nil:
		return err
	case prev != "":
		return errors.Wrapf(errors.ErrImmutable, "chain id already set to %q", prev)
	}
	if err := db.Set([]byte(chainIDKey), []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
