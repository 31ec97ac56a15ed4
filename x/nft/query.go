package nft

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// OwnerOf returns the owner of a token and its approvals. Expired approvals
// are returned only when includeExpired is set.
func OwnerOf(ctx weave.Context, db weave.ReadOnlyKVStore, id string, includeExpired bool) (weave.Address, []*Approval, error) {
	t, err := NewTokenBucket().Get(db, id)
	if err != nil {
		return nil, nil, err
	}
	if includeExpired {
		return t.Owner, t.Approvals, nil
	}
	return t.Owner, t.ActiveApprovals(ctx), nil
}

// Tokens returns the IDs of all tokens held by the owner, in ascending order.
func Tokens(db weave.ReadOnlyKVStore, owner weave.Address) ([]string, error) {
	keys, err := NewTokenBucket().ByIndex(db, "owner", owner)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = string(k)
	}
	return ids, nil
}

// NumTokens returns the number of existing tokens.
func NumTokens(db weave.ReadOnlyKVStore) (int, error) {
	it, err := NewTokenBucket().PrefixScan(db, nil, false)
	if err != nil {
		return 0, err
	}
	defer it.Release()

	var n int
	for {
		var t Token
		switch _, err := it.Next(&t); {
		case errors.ErrIteratorDone.Is(err):
			return n, nil
		case err != nil:
			return 0, err
		}
		n++
	}
}

// IsOperator returns true if the operator may act on all tokens of the owner
// at the block described by the context.
func IsOperator(ctx weave.Context, db weave.ReadOnlyKVStore, owner, operator weave.Address) (bool, error) {
	return NewOperatorBucket().IsOperator(ctx, db, owner, operator)
}
