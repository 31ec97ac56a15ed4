package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
)

// Authorizer decides how much of an owner balance a caller may move.
type Authorizer struct {
	balances  BalanceBucket
	approvals ApprovalBucket
}

// NewAuthorizer returns an authorizer reading the default buckets.
func NewAuthorizer() Authorizer {
	return Authorizer{
		balances:  NewBalanceBucket(),
		approvals: NewApprovalBucket(),
	}
}

// CanOperate returns ErrUnauthorized unless the caller is the owner or holds
// an approval of the owner that is not expired for the current block.
func (a Authorizer) CanOperate(ctx weave.Context, db weave.ReadOnlyKVStore, caller, owner weave.Address) error {
	if caller.Equals(owner) {
		return nil
	}
	ok, err := a.approvals.IsApproved(ctx, db, owner, caller)
	if err != nil {
		return errors.Wrap(err, "approval")
	}
	if !ok {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an operator of %s", caller, owner)
	}
	return nil
}

// Authorize returns the amount of the owner balance the caller may move. The
// requested amount is clamped to the balance held, never rejected for being
// too large. ErrNotFound is returned when the owner has no balance record of
// the asset.
func (a Authorizer) Authorize(ctx weave.Context, db weave.ReadOnlyKVStore, caller, owner weave.Address, assetID string, requested amount.Amount) (amount.Amount, error) {
	if err := a.CanOperate(ctx, db, caller, owner); err != nil {
		return amount.Zero, err
	}
	bal, err := a.balances.Get(db, owner, assetID)
	if err != nil {
		return amount.Zero, errors.Wrapf(err, "asset %q", assetID)
	}
	held, err := bal.Amount()
	if err != nil {
		return amount.Zero, err
	}
	return amount.Min(requested, held), nil
}

// AuthorizeBatch authorizes every item separately and returns the list of
// authorized amounts, in the same order. The first failing item fails the
// whole batch.
func (a Authorizer) AuthorizeBatch(ctx weave.Context, db weave.ReadOnlyKVStore, caller, owner weave.Address, items []*TokenAmount) ([]*TokenAmount, error) {
	out := make([]*TokenAmount, 0, len(items))
	for i, it := range items {
		requested, err := it.Amount()
		if err != nil {
			return nil, errors.Field(itemField(i), err, "quantity")
		}
		allowed, err := a.Authorize(ctx, db, caller, owner, it.AssetID, requested)
		if err != nil {
			return nil, errors.Field(itemField(i), err, "not authorized")
		}
		out = append(out, NewTokenAmount(it.AssetID, allowed))
	}
	return out, nil
}
