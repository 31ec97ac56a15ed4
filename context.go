package weave

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/iov-one/tokenweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the block information and the logger down to the
// handlers. Each value has a With function to set it and a getter. Block
// values can be set only once per context, an attempt to overwrite one
// panics.
type Context = context.Context

type (
	headerKey    struct{}
	heightKey    struct{}
	blockTimeKey struct{}
	chainIDKey   struct{}
	loggerKey    struct{}
)

var (
	// DefaultLogger is returned by GetLogger for contexts without one.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID reports whether s can be used as a chain id.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

func WithHeader(ctx Context, header abci.Header) Context {
	if _, ok := GetHeader(ctx); ok {
		panic("block header already set")
	}
	return context.WithValue(ctx, headerKey{}, header)
}

func GetHeader(ctx Context) (abci.Header, bool) {
	h, ok := ctx.Value(headerKey{}).(abci.Header)
	return h, ok
}

func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("block height already set")
	}
	return context.WithValue(ctx, heightKey{}, height)
}

func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(heightKey{}).(int64)
	return h, ok
}

// WithBlockTime sets the time of the block, converted to UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, blockTimeKey{}, t.UTC())
}

// BlockTime returns the time of the block. A context without a block time,
// or with a zero one, is a programming error and results in ErrHuman.
func BlockTime(ctx Context) (time.Time, error) {
	t, ok := ctx.Value(blockTimeKey{}).(time.Time)
	switch {
	case !ok:
		return time.Time{}, errors.Wrap(errors.ErrHuman, "no block time in context")
	case t.IsZero():
		return t, errors.Wrap(errors.ErrHuman, "zero block time in context")
	}
	return t, nil
}

func mustBlockTime(ctx Context) time.Time {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return now
}

// IsExpired returns true if t is not after the block time. It panics when
// the context has no block time.
func IsExpired(ctx Context, t UnixTime) bool {
	return t <= AsUnixTime(mustBlockTime(ctx))
}

// InTheFuture returns true if t is strictly after the block time. It
// panics when the context has no block time.
func InTheFuture(ctx Context, t time.Time) bool {
	return t.After(mustBlockTime(ctx))
}

// WithChainID panics when the chain id is invalid or already set.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(chainIDKey{}) != nil {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain id %q", chainID))
	}
	return context.WithValue(ctx, chainIDKey{}, chainID)
}

// GetChainID panics when no chain id is set. Every context created by the
// application carries one.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(chainIDKey{}).(string)
	if !ok {
		panic("no chain id in context")
	}
	return id
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}

// WithLogInfo returns a context whose logger adds keyvals to every entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}
