package app

import (
	"encoding/json"
	"fmt"
	"strings"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state related part of abci.Application: the
// genesis, block boundaries, commits and queries. Embed it to add
// transaction processing, see BaseApp.
//
// InitChain and Commit do not process user input. They panic on failure
// because the node cannot continue with a broken state.
type StoreApp struct {
	name   string
	logger log.Logger
	store  *CommitStore

	initializer weave.Initializer
	queryRouter weave.QueryRouter

	// chainID is empty until the genesis is loaded.
	chainID string
	// baseContext lives as long as the application. blockContext is
	// derived from it on every BeginBlock.
	baseContext  weave.Context
	blockContext weave.Context
}

// NewStoreApp loads the latest state of kv. Name is reported by Info.
func NewStoreApp(name string, kv weave.CommitKVStore, queryRouter weave.QueryRouter, ctx weave.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(kv),
		queryRouter: queryRouter,
		baseContext: ctx,
	}
	s = s.WithLogger(log.NewNopLogger())

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		panic(err)
	}
	if chainID != "" {
		s.setChainID(chainID)
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = weave.WithHeight(s.baseContext, info.Version)
	return s
}

func (s *StoreApp) setChainID(chainID string) {
	s.chainID = chainID
	s.baseContext = weave.WithChainID(s.baseContext, chainID)
}

// GetChainID returns the chain id or an empty string before genesis.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer reading the genesis app_state.
func (s *StoreApp) WithInit(init weave.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the application and of every context it
// creates.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = weave.WithLogger(s.baseContext, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() weave.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() weave.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() weave.CacheableKVStore {
	return s.store.CheckStore()
}

// Info reports the last committed block so that tendermint can replay
// what is missing.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("info", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not supported"}
}

// InitChain stores the chain id and loads the genesis app_state.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) loadGenesis(chainID string, appState []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis of chain %s already loaded", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "genesis has no app_state, run init first")
	}
	var opts weave.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.setChainID(chainID)
	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// BeginBlock starts a new block context carrying the header, height and
// block time.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := weave.WithHeader(s.baseContext, req.Header)
	ctx = weave.WithHeight(ctx, req.Header.GetHeight())
	s.blockContext = weave.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

// EndBlock never changes the validator set.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("commit", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// Query reads the last committed state. Request height is ignored.
//
// The path selects a registered query handler, for example
// "/multitoken/balances". A "?prefix" suffix turns the lookup of Data into
// a prefix scan. Response Key and Value are serialized ResultSets of equal
// length.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := req.Path, weave.KeyQueryMod
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, mod = path[:i], path[i+1:]
	}
	h := s.queryRouter.Handler(path)
	if h == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	db := s.store.QueryStore()
	defer db.Discard()

	models, err := h.Query(db, mod, req.Data)
	if err != nil {
		return queryError(err)
	}
	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err)
	}
	return res
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}
