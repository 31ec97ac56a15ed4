package weavetest

import weave "github.com/iov-one/tokenweave"

// calls counts Check and Deliver invocations.
type calls struct {
	check   int
	deliver int
}

// CheckCallCount returns how many times Check was called.
func (c *calls) CheckCallCount() int { return c.check }

// DeliverCallCount returns how many times Deliver was called.
func (c *calls) DeliverCallCount() int { return c.deliver }

// CallCount returns the number of all calls.
func (c *calls) CallCount() int { return c.check + c.deliver }

// Handler returns the configured results, or the configured error when
// one is set. Calls are counted whatever the outcome.
type Handler struct {
	calls

	CheckResult weave.CheckResult
	CheckErr    error

	DeliverResult weave.DeliverResult
	DeliverErr    error
}

var _ weave.Handler = (*Handler)(nil)

func (h *Handler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// WriteHandler writes Key and Value on every call before returning the
// configured error. Use it to see whether a decorator keeps or drops the
// changes of a failed call.
type WriteHandler struct {
	Key        []byte
	Value      []byte
	CheckErr   error
	DeliverErr error
}

var _ weave.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(_ weave.Context, db weave.KVStore, _ weave.Tx) (*weave.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	return &weave.CheckResult{}, nil
}

func (h *WriteHandler) Deliver(_ weave.Context, db weave.KVStore, _ weave.Tx) (*weave.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	return &weave.DeliverResult{}, nil
}

// PanicHandler panics on every call.
type PanicHandler struct{}

var _ weave.Handler = PanicHandler{}

func (PanicHandler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	panic("check panic")
}

func (PanicHandler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	panic("deliver panic")
}
