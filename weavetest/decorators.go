package weavetest

import weave "github.com/iov-one/tokenweave"

// Decorator passes calls to the next handler unless CheckErr or
// DeliverErr is set, in which case that error is returned instead. Calls
// are counted whatever the outcome.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ weave.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate wraps h with a single decorator.
func Decorate(h weave.Handler, d weave.Decorator) weave.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   weave.Handler
	decorator weave.Decorator
}

func (d decorated) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}
