package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/store/iavl"
)

// CommitKVStore returns an iavl store persisted in a temporary directory,
// the same engine a running node uses. The directory is removed together
// with the store by the returned cleanup function.
func CommitKVStore(t testing.TB) (weave.CommitKVStore, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "tokend-store")
	if err != nil {
		t.Fatalf("temporary directory: %s", err)
	}
	kv := iavl.NewCommitStore(dir, "ledger")
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Logf("cannot remove %s: %s", dir, err)
		}
	}
	return kv, cleanup
}
