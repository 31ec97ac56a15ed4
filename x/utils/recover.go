package utils

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// Recovery converts a panic raised further down the stack into an
// ErrPanic error, so a faulty handler fails its own transaction instead
// of halting the node. The panic is logged with the message path.
type Recovery struct{}

var _ weave.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (res *weave.CheckResult, err error) {
	defer recovered(ctx, tx, &err)
	res, err = next.Check(ctx, db, tx)
	return res, err
}

func (Recovery) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (res *weave.DeliverResult, err error) {
	defer recovered(ctx, tx, &err)
	res, err = next.Deliver(ctx, db, tx)
	return res, err
}

// recovered must be deferred directly, recover returns nil otherwise.
func recovered(ctx weave.Context, tx weave.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	weave.GetLogger(ctx).Error("handler panic", "path", weave.GetPath(tx), "panic", r)
}
