package server

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	iavlstore "github.com/iov-one/tokenweave/store/iavl"
	"github.com/tendermint/iavl"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/types"
)

type retryArgs struct {
	dbPath    string
	blockPath string
	debug     bool
	// replay until the recomputed hash differs, at most maxTries times
	untilError bool
	maxTries   int
}

func parseRetryArgs(args []string) (retryArgs, error) {
	if len(args) < 2 {
		return retryArgs{}, errors.Wrap(errors.ErrInput,
			"usage: retry <abci.db> <block.json> [-debug] [-error] [-max=N]")
	}
	res := retryArgs{dbPath: args[0], blockPath: args[1]}
	fs := flag.NewFlagSet("retry", flag.ContinueOnError)
	fs.BoolVar(&res.debug, flagDebug, false, "include stack traces in results")
	fs.BoolVar(&res.untilError, "error", false, "replay until the app hash changes")
	fs.IntVar(&res.maxTries, "max", 10, "replay limit used with -error")
	if err := fs.Parse(args[2:]); err != nil {
		return res, errors.Wrap(errors.ErrInput, err.Error())
	}
	if res.maxTries < 0 {
		return res, errors.Wrapf(errors.ErrInput, "negative -max %d", res.maxTries)
	}
	return res, nil
}

// InlineAppGenerator builds an application on top of an existing store.
type InlineAppGenerator func(weave.CommitKVStore, log.Logger, bool) (abci.Application, error)

// RetryCmd delivers again a block exported with GetBlockCmd on top of the
// application state it was originally applied to. The state must be at the
// height of the block. It is rolled back by one version before every replay
// and the recomputed app hash is printed next to the stored one.
func RetryCmd(makeApp InlineAppGenerator, logger log.Logger, home string, args []string) error {
	a, err := parseRetryArgs(args)
	if err != nil {
		return err
	}
	raw, err := ioutil.ReadFile(a.blockPath)
	if err != nil {
		return errors.Wrap(err, "read block")
	}
	block, err := readBlock(raw)
	if err != nil {
		return err
	}
	tree, err := loadTree(a.dbPath, block.Header.Height)
	if err != nil {
		return err
	}

	r := replayer{
		out:   stdout,
		tree:  tree,
		block: block,
		build: func(kv weave.CommitKVStore) (abci.Application, error) {
			return makeApp(kv, logger, a.debug)
		},
	}
	fmt.Fprintf(r.out, "height %d, stored hash %X\n", block.Header.Height, tree.Hash())

	tries := 1
	if a.untilError {
		tries += a.maxTries
	}
	for i := 0; i < tries; i++ {
		same, err := r.replay()
		if err != nil {
			return err
		}
		if !same {
			fmt.Fprintln(r.out, "app hash differs")
			return nil
		}
	}
	return nil
}

// loadTree opens the application state and ensures it is at the given
// height.
func loadTree(dbPath string, height int64) (*iavl.MutableTree, error) {
	db, err := openDb(dbPath)
	if err != nil {
		return nil, err
	}
	tree := iavl.NewMutableTree(db, iavlstore.DefaultCacheSize)
	switch ver, err := tree.Load(); {
	case err != nil:
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	case ver == 0:
		return nil, errors.Wrap(errors.ErrEmpty, "application state")
	case ver != height:
		return nil, errors.Wrapf(errors.ErrState, "state at height %d, block at %d", ver, height)
	}
	return tree, nil
}

type replayer struct {
	out   io.Writer
	tree  *iavl.MutableTree
	block *types.Block
	build func(weave.CommitKVStore) (abci.Application, error)
}

// replay rolls the state back below the block, delivers the block and
// reports whether the app hash is the one stored before.
func (r *replayer) replay() (bool, error) {
	want := r.tree.Hash()
	h := r.block.Header
	if _, err := r.tree.LoadVersionForOverwriting(h.Height - 1); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	app, err := r.build(iavlstore.NewCommitStoreFromTree(r.tree))
	if err != nil {
		return false, errors.Wrap(err, "build application")
	}

	app.BeginBlock(abci.RequestBeginBlock{Hash: h.Hash(), Header: abciHeader(h)})
	for i, tx := range r.block.Txs {
		res := app.DeliverTx(tx)
		fmt.Fprintf(r.out, "tx %d: code=%d %s\n", i, res.Code, res.Log)
	}
	app.EndBlock(abci.RequestEndBlock{Height: h.Height})
	got := app.Commit().Data
	fmt.Fprintf(r.out, "recomputed hash %X\n", got)
	return bytes.Equal(want, got), nil
}

// abciHeader converts a block header into the form BeginBlock receives.
func abciHeader(h types.Header) abci.Header {
	last := abci.BlockID{
		Hash: h.LastBlockID.Hash,
		PartsHeader: abci.PartSetHeader{
			Total: int32(h.LastBlockID.PartsHeader.Total),
			Hash:  h.LastBlockID.PartsHeader.Hash,
		},
	}
	res := abci.Header{
		ChainID:         h.ChainID,
		Height:          h.Height,
		Time:            h.Time,
		NumTxs:          h.NumTxs,
		TotalTxs:        h.TotalTxs,
		LastBlockId:     last,
		ProposerAddress: h.ProposerAddress,
	}
	res.Version.Block = uint64(h.Version.Block)
	res.Version.App = uint64(h.Version.App)
	res.LastCommitHash, res.DataHash = h.LastCommitHash, h.DataHash
	res.ValidatorsHash, res.NextValidatorsHash = h.ValidatorsHash, h.NextValidatorsHash
	res.ConsensusHash, res.AppHash = h.ConsensusHash, h.AppHash
	res.LastResultsHash, res.EvidenceHash = h.LastResultsHash, h.EvidenceHash
	return res
}
