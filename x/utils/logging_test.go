package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	"github.com/iov-one/tokenweave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewTMLogger(log.NewSyncWriter(&buf))
	ctx := weave.WithLogger(context.Background(), logger)
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "multitoken/mint"}}

	h := &weavetest.Handler{DeliverResult: weave.DeliverResult{Log: "minted"}}
	_, err := NewLogging().Deliver(ctx, db, tx, h)
	assert.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "minted"), out)
	assert.True(t, strings.Contains(out, "path=multitoken/mint"), out)

	buf.Reset()
	h = &weavetest.Handler{DeliverErr: errors.ErrUnauthorized}
	_, err = NewLogging().Deliver(ctx, db, tx, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.True(t, strings.Contains(buf.String(), "unauthorized"), buf.String())
}
