package app

import (
	"reflect"

	weave "github.com/iov-one/tokenweave"
)

// Decorators is an ordered list of decorators waiting for the handler
// they wrap. The first decorator is the outermost one.
type Decorators []weave.Decorator

// ChainDecorators starts a stack. Nil decorators, including typed nils,
// are skipped so optional parts can be passed unconditionally:
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		utils.NewSavepoint().OnCheck(),
//		sigs.NewDecorator(),
//		utils.NewSavepoint().OnDeliver(),
//	).WithHandler(router)
func ChainDecorators(ds ...weave.Decorator) Decorators {
	return Decorators(nil).Chain(ds...)
}

// Chain returns a new stack with ds appended below the existing
// decorators.
func (d Decorators) Chain(ds ...weave.Decorator) Decorators {
	res := make(Decorators, len(d), len(d)+len(ds))
	copy(res, d)
	for _, dec := range ds {
		if dec == nil {
			continue
		}
		if v := reflect.ValueOf(dec); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		res = append(res, dec)
	}
	return res
}

// WithHandler closes the stack with h.
func (d Decorators) WithHandler(h weave.Handler) weave.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = decorated{dec: d[i], next: h}
	}
	return h
}

type decorated struct {
	dec  weave.Decorator
	next weave.Handler
}

func (s decorated) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s decorated) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
