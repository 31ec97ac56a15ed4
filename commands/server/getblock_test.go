package server

import (
	"bytes"
	"testing"
	"time"

	"github.com/iov-one/tokenweave/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/types"
)

func TestParseGetBlockArgs(t *testing.T) {
	_, err := parseGetBlockArgs(nil)
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	_, err = parseGetBlockArgs([]string{"data/blockstore.db", "-height=-2"})
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	a, err := parseGetBlockArgs([]string{"data/blockstore.db", "-height", "12"})
	require.NoError(t, err)
	assert.Equal(t, "data/blockstore.db", a.dbPath)
	assert.Equal(t, int64(12), a.height)
}

func TestOpenDbRequiresDbSuffix(t *testing.T) {
	for _, path := range []string{"/tmp/blockstore", "/tmp/.db/state", "db"} {
		_, err := openDb(path)
		assert.True(t, errors.ErrInput.Is(err), "%s: got %+v", path, err)
	}
}

func TestBlockJSONRoundTrip(t *testing.T) {
	block := &types.Block{
		Header: types.Header{
			ChainID: "tokend-test",
			Height:  7,
			Time:    time.Unix(1560000000, 0).UTC(),
			NumTxs:  1,
		},
		Data: types.Data{Txs: types.Txs{[]byte("tx")}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeBlock(&buf, block))

	got, err := readBlock(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, block.Header.ChainID, got.Header.ChainID)
	assert.Equal(t, block.Header.Height, got.Header.Height)
	assert.Equal(t, block.Txs, got.Txs)

	h := abciHeader(got.Header)
	assert.Equal(t, int64(7), h.Height)
	assert.Equal(t, "tokend-test", h.ChainID)

	_, err = readBlock([]byte("{"))
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestParseRetryArgs(t *testing.T) {
	_, err := parseRetryArgs([]string{"abci.db"})
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	_, err = parseRetryArgs([]string{"abci.db", "block.json", "-max=-1"})
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	a, err := parseRetryArgs([]string{"abci.db", "block.json", "-error", "-max=3"})
	require.NoError(t, err)
	assert.Equal(t, "abci.db", a.dbPath)
	assert.Equal(t, "block.json", a.blockPath)
	assert.True(t, a.untilError)
	assert.Equal(t, 3, a.maxTries)
}
