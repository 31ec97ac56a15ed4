package weave

import (
	"github.com/iov-one/tokenweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is the outcome of a successfully delivered transaction.
// Failures are always reported as errors.
type DeliverResult struct {
	// Data is returned to the client as is. Send operations put the
	// encoded receiver notification here.
	Data []byte
	Log  string
	// Tags are indexed by tendermint and allow searching the
	// transaction history, for example by owner or asset.
	Tags []common.KVPair
}

// CheckResult is the outcome of a transaction accepted into the mempool.
type CheckResult struct {
	Data []byte
	Log  string
}

// DeliverResponse builds the DeliverTx response for the outcome of a
// handler call. When err is set the result is ignored. Unless debug is
// set, internal error details are not exposed.
func DeliverResponse(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: "cannot deliver tx: " + log}
	}
	if res == nil {
		return abci.ResponseDeliverTx{}
	}
	return abci.ResponseDeliverTx{Data: res.Data, Log: res.Log, Tags: res.Tags}
}

// CheckResponse builds the CheckTx response for the outcome of a handler
// call, the same way DeliverResponse does.
func CheckResponse(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseCheckTx{Code: code, Log: "cannot check tx: " + log}
	}
	if res == nil {
		return abci.ResponseCheckTx{}
	}
	return abci.ResponseCheckTx{Data: res.Data, Log: res.Log}
}
