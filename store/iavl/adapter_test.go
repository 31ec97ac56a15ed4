package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/tokenweave/store"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

// makeBase returns the base layer
func makeBase() (store.CacheableKVStore, func()) {
	commit, cleanup := makeCommitStore()
	return commit.Adapter(), cleanup
}

func makeCommitStore() (CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }
	commit := NewCommitStore(tmpDir, "base")
	return commit, cleanup
}

func TestIavlStore(t *testing.T) {
	store.NewTestSuite(makeBase).Run(t)
}

func TestIavlMemStore(t *testing.T) {
	store.NewTestSuite(func() (store.CacheableKVStore, func()) {
		return NewMemCommitStore().Adapter(), func() {}
	}).Run(t)
}

func TestCommitAndReload(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-commit-")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)

	commit := NewCommitStore(tmpDir, "state")
	assert.Nil(t, commit.LoadLatestVersion())

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)

	k, v := []byte("owner"), []byte("alice")
	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set(k, v))
	assert.Nil(t, cache.Write())

	// not committed yet
	got, err := commit.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)

	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("commit hash must not be empty")
	}

	got, err = commit.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	// discarded changes never reach the tree
	discarded := commit.CacheWrap()
	assert.Nil(t, discarded.Set([]byte("other"), []byte("value")))
	discarded.Discard()
	id2, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, id.Hash, id2.Hash)
}

func TestMemCommitStore(t *testing.T) {
	commit := NewMemCommitStore()
	assert.Nil(t, commit.LoadLatestVersion())
	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("a"), []byte("1")))
	assert.Nil(t, cache.Write())
	id, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
}
