/*
Package app contains the ABCI application skeleton: a router dispatching
messages to handlers, a decorator chain and the store application that
keeps the committed state and answers queries.
*/
package app

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is a StoreApp that also executes transactions. Raw transaction
// bytes are decoded and passed to a single handler, usually a decorated
// router.
type BaseApp struct {
	*StoreApp
	decoder weave.TxDecoder
	handler weave.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp returns an application executing transactions with handler.
// In debug mode failed transactions carry the full error in their log.
func NewBaseApp(store *StoreApp, decoder weave.TxDecoder, handler weave.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(raw)
	if err != nil {
		return weave.DeliverResponse(nil, err, b.debug)
	}
	res, err := b.handler.Deliver(b.txContext("deliver_tx", tx), b.DeliverStore(), tx)
	return weave.DeliverResponse(res, err, b.debug)
}

func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := b.decode(raw)
	if err != nil {
		return weave.CheckResponse(nil, err, b.debug)
	}
	res, err := b.handler.Check(b.txContext("check_tx", tx), b.CheckStore(), tx)
	return weave.CheckResponse(res, err, b.debug)
}

func (b BaseApp) txContext(call string, tx weave.Tx) weave.Context {
	return weave.WithLogInfo(b.BlockContext(), "call", call, "path", weave.GetPath(tx))
}

// decode never panics, a malformed transaction is an ErrPanic error.
func (b BaseApp) decode(raw []byte) (tx weave.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
