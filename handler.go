package weave

import (
	"bytes"
	"encoding/json"

	"github.com/iov-one/tokenweave/errors"
)

// Handler executes the messages of one or more paths, such as
// "multitoken/send". Check runs for the mempool and should be cheap,
// Deliver runs when the transaction is part of a block.
type Handler interface {
	Checker
	Deliverer
}

type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around a handler. It can refuse a transaction, change
// the context the handler sees or act on the result, as signature
// verification and savepoints do.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds handlers to message paths.
type Registry interface {
	// Handle routes every message with the path of msg to h.
	Handle(msg Msg, h Handler)
}

// Options is the genesis app_state, one raw JSON section per extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the section stored under key into obj. A missing
// section leaves obj untouched and is not an error.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw := o[key]
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "%s: %s", key, err)
	}
	return nil
}

// Stream decodes a JSON list element by element, so a genesis with many
// balances is never held decoded in memory at once. The returned function
// decodes the next element into obj. It returns ErrEmpty after the last
// element and ErrState on any later call or after a decoding failure.
// A missing key is ErrEmpty.
func (o Options) Stream(key string) (func(obj interface{}) error, error) {
	raw, ok := o[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrEmpty, "no %q section", key)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	switch tok, err := dec.Token(); {
	case err != nil:
		return nil, errors.Wrapf(errors.ErrInput, "%s: %s", key, err)
	case tok != json.Delim('['):
		return nil, errors.Wrapf(errors.ErrInput, "%s is not a list", key)
	}

	var closed bool
	next := func(obj interface{}) error {
		switch {
		case closed:
			return errors.Wrap(errors.ErrState, "stream closed")
		case !dec.More():
			closed = true
			return errors.Wrap(errors.ErrEmpty, "end of list")
		}
		if err := dec.Decode(obj); err != nil {
			closed = true
			return errors.Wrapf(errors.ErrInput, "%s: %s", key, err)
		}
		return nil
	}
	return next, nil
}

// Initializer loads the state of an extension from the genesis.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers runs initializers in order and stops at the first
// failure.
type ChainInitializers []Initializer

var _ Initializer = ChainInitializers{}

func (c ChainInitializers) FromGenesis(opts Options, kv KVStore) error {
	for _, ini := range c {
		if err := ini.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
