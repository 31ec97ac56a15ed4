package utils

import (
	"time"

	weave "github.com/iov-one/tokenweave"
)

// Logging writes one entry for every processed transaction, with the
// message path and the processing time. Failures are logged as errors.
// Successful deliveries are logged as info and successful checks as debug.
type Logging struct{}

var _ weave.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	entry := logEntry{tx: tx, took: time.Since(start), err: err}
	if res != nil {
		entry.msg = res.Log
	}
	entry.write(ctx, false)
	return res, err
}

func (Logging) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	entry := logEntry{tx: tx, took: time.Since(start), err: err}
	if res != nil {
		entry.msg = res.Log
	}
	entry.write(ctx, true)
	return res, err
}

type logEntry struct {
	tx   weave.Tx
	took time.Duration
	msg  string
	err  error
}

func (e logEntry) write(ctx weave.Context, deliver bool) {
	logger := weave.GetLogger(ctx).With(
		"path", weave.GetPath(e.tx),
		"duration", e.took/time.Microsecond,
	)
	switch {
	case e.err != nil:
		logger.Error(e.msg, "err", e.err)
	case deliver:
		logger.Info(e.msg)
	default:
		logger.Debug(e.msg)
	}
}
