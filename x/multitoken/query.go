package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/orm"
)

// Queries are pure reads of the ledger state. None of them writes to the
// database.

// BalanceOf returns the amount of an asset held by the owner. Zero is returned
// for an owner that never held the asset.
func BalanceOf(db weave.ReadOnlyKVStore, owner weave.Address, assetID string) (amount.Amount, error) {
	return NewBalanceBucket().Quantity(db, owner, assetID)
}

// BalancesOfOwner returns all balance records of the owner, ordered by asset
// id. Zero balances are included.
func BalancesOfOwner(db weave.ReadOnlyKVStore, owner weave.Address) ([]*Balance, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	it, err := NewBalanceBucket().PrefixScan(db, owner, false)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []*Balance
	for {
		var b Balance
		switch _, err := it.Next(&b); {
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		case err != nil:
			return nil, err
		}
		res = append(res, &b)
	}
}

// Holders returns the balance records of all owners of an asset.
func Holders(db weave.ReadOnlyKVStore, assetID string) ([]*Balance, error) {
	b := NewBalanceBucket()
	keys, err := b.ByIndex(db, "asset", []byte(assetID))
	if err != nil {
		return nil, err
	}
	res := make([]*Balance, 0, len(keys))
	for _, key := range keys {
		var bal Balance
		if err := b.One(db, key, &bal); err != nil {
			return nil, errors.Wrap(err, "indexed balance")
		}
		res = append(res, &bal)
	}
	return res, nil
}

// IsApprovedForAll returns true if the operator holds an approval of the owner
// that is not expired for the block described by the context.
func IsApprovedForAll(ctx weave.Context, db weave.ReadOnlyKVStore, owner, operator weave.Address) (bool, error) {
	return NewApprovalBucket().IsApproved(ctx, db, owner, operator)
}

// ApprovedOperators returns all approvals given by the owner that are not
// expired for the block described by the context.
func ApprovedOperators(ctx weave.Context, db weave.ReadOnlyKVStore, owner weave.Address) ([]*Approval, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	it, err := NewApprovalBucket().PrefixScan(db, owner, false)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []*Approval
	for {
		var a Approval
		switch _, err := it.Next(&a); {
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		case err != nil:
			return nil, err
		}
		if !a.Expires.IsExpired(ctx) {
			res = append(res, &a)
		}
	}
}

// TotalSupply returns the amount of an asset in circulation.
func TotalSupply(db weave.ReadOnlyKVStore, assetID string) (amount.Amount, error) {
	return NewSupplyBucket().Quantity(db, assetID)
}

// TokenInfo returns the asset record. ErrNotFound is returned for an asset
// that was never minted.
func TokenInfo(db weave.ReadOnlyKVStore, assetID string) (*Token, error) {
	return NewTokenBucket().Get(db, assetID)
}

// AllTokens returns all asset records ordered by asset id.
func AllTokens(db weave.ReadOnlyKVStore) ([]*Token, error) {
	it, err := NewTokenBucket().PrefixScan(db, nil, false)
	if err != nil {
		return nil, err
	}
	return collectTokens(it)
}

func collectTokens(it orm.ModelIterator) ([]*Token, error) {
	defer it.Release()
	var res []*Token
	for {
		var t Token
		switch _, err := it.Next(&t); {
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		case err != nil:
			return nil, err
		}
		res = append(res, &t)
	}
}
