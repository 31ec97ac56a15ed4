package sigs

import (
	"context"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/x"
)

// RegisterQuery exposes signer accounts under "/auth".
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of a transaction and makes the
// signers available to the handlers below it through Authenticate.
type Decorator struct {
	optional bool
}

var _ weave.Decorator = Decorator{}

// NewDecorator returns a decorator rejecting unsigned transactions.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy of the decorator passing unsigned
// transactions with no signers. Signatures that are present are still
// verified.
func (d Decorator) AllowMissingSigs() Decorator {
	d.optional = true
	return d
}

func (d Decorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d Decorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) authenticate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Context, error) {
	var signers []weave.Condition
	if stx, ok := tx.(SignedTx); ok {
		var err error
		signers, err = VerifyTxSignatures(db, stx, weave.GetChainID(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "verify signatures")
		}
	}
	if len(signers) == 0 && !d.optional {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction not signed")
	}
	return context.WithValue(ctx, signersKey{}, signers), nil
}

type signersKey struct{}

// Authenticate grants the conditions of everyone who signed the current
// transaction.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

func (Authenticate) GetConditions(ctx weave.Context) []weave.Condition {
	signers, _ := ctx.Value(signersKey{}).([]weave.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
