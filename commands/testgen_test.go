package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestGenCmd(t *testing.T) {
	dir, err := ioutil.TempDir("", "testgen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	meta := &weave.Metadata{Schema: 3}
	err = TestGenCmd([]Example{{Filename: "metadata", Obj: meta}}, []string{dir})
	require.NoError(t, err)

	js, err := ioutil.ReadFile(filepath.Join(dir, "metadata.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema": 3}`, string(js))

	bin, err := ioutil.ReadFile(filepath.Join(dir, "metadata.bin"))
	require.NoError(t, err)
	var got weave.Metadata
	require.NoError(t, got.Unmarshal(bin))
	assert.Equal(t, int32(3), got.Schema)
}
