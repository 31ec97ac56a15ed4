package server

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/tokenweave/errors"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/blockchain"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	"github.com/tendermint/tendermint/types"
)

// blockCodec serializes tendermint blocks the same way the node RPC does,
// so that an exported block can be read back by the retry command.
var blockCodec = amino.NewCodec()

func init() {
	ctypes.RegisterAmino(blockCodec)
}

// stdout is where the operational commands print. Tests replace it.
var stdout io.Writer = os.Stdout

type getBlockArgs struct {
	dbPath string
	// zero means the most recent block
	height int64
}

func parseGetBlockArgs(args []string) (getBlockArgs, error) {
	if len(args) == 0 {
		return getBlockArgs{}, errors.Wrap(errors.ErrInput, "usage: getblock <blockstore.db> [-height=H]")
	}
	res := getBlockArgs{dbPath: args[0]}
	fs := flag.NewFlagSet("getblock", flag.ContinueOnError)
	fs.Int64Var(&res.height, "height", 0, "block height, latest when not set")
	if err := fs.Parse(args[1:]); err != nil {
		return res, errors.Wrap(errors.ErrInput, err.Error())
	}
	if res.height < 0 {
		return res, errors.Wrapf(errors.ErrInput, "negative height %d", res.height)
	}
	return res, nil
}

// GetBlockCmd prints a block of the node blockstore as JSON. Together with
// RetryCmd it allows to replay a block that produced an unexpected app hash.
func GetBlockCmd(logger log.Logger, home string, args []string) error {
	a, err := parseGetBlockArgs(args)
	if err != nil {
		return err
	}
	db, err := openDb(a.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	blocks := blockchain.NewBlockStore(db)
	height := a.height
	if height == 0 {
		height = blocks.Height()
	}
	logger.Debug("exporting block", "height", height, "db", a.dbPath)
	block := blocks.LoadBlock(height)
	if block == nil {
		return errors.Wrapf(errors.ErrNotFound, "block %d", height)
	}
	return writeBlock(stdout, block)
}

func writeBlock(w io.Writer, block *types.Block) error {
	raw, err := blockCodec.MarshalJSONIndent(block, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func readBlock(raw []byte) (*types.Block, error) {
	var block *types.Block
	if err := blockCodec.UnmarshalJSON(raw, &block); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "block: %s", err)
	}
	if block == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "block")
	}
	return block, nil
}

// openDb opens the goleveldb database kept in the given "<name>.db"
// directory.
func openDb(path string) (dbm.DB, error) {
	path = filepath.Clean(path)
	name := strings.TrimSuffix(filepath.Base(path), ".db")
	if name == filepath.Base(path) {
		return nil, errors.Wrapf(errors.ErrInput, "not a .db directory: %s", path)
	}
	db, err := dbm.NewGoLevelDB(name, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return db, nil
}
