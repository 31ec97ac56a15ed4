package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
)

// Transition describes how tokens move. It is implemented only by Mint, Burn
// and Transfer.
type Transition interface {
	source() weave.Address
	destination() weave.Address
	kind() EventKind
}

// Mint creates new tokens owned by To.
type Mint struct {
	To weave.Address
}

func (Mint) source() weave.Address        { return nil }
func (m Mint) destination() weave.Address { return m.To }
func (Mint) kind() EventKind              { return EventMint }

// Burn destroys tokens owned by From.
type Burn struct {
	From weave.Address
}

func (b Burn) source() weave.Address    { return b.From }
func (Burn) destination() weave.Address { return nil }
func (Burn) kind() EventKind            { return EventBurn }

// Transfer moves tokens from one owner to another.
type Transfer struct {
	From weave.Address
	To   weave.Address
}

func (t Transfer) source() weave.Address      { return t.From }
func (t Transfer) destination() weave.Address { return t.To }
func (Transfer) kind() EventKind              { return EventTransfer }

// Engine applies transitions to the balance and supply buckets.
type Engine struct {
	balances BalanceBucket
	supplies SupplyBucket
}

// NewEngine returns an engine using the default buckets.
func NewEngine() Engine {
	return Engine{
		balances: NewBalanceBucket(),
		supplies: NewSupplyBucket(),
	}
}

// Apply executes given transition for all items. All subtractions from the
// source are done first, followed by all additions to the destination.
// Repeated asset ids accumulate. Supply grows on mint, shrinks on burn and is
// left untouched by a transfer.
//
// Apply does not roll back on failure. Run it inside of a savepoint or a
// cache wrap that is discarded when an error is returned.
func (e Engine) Apply(db weave.KVStore, t Transition, items []*TokenAmount) (*Event, error) {
	if err := checkEndpoints(t); err != nil {
		return nil, err
	}
	quantities := make([]amount.Amount, len(items))
	for i, it := range items {
		q, err := it.Amount()
		if err != nil {
			return nil, errors.Field(itemField(i), err, "quantity")
		}
		quantities[i] = q
	}

	if from := t.source(); len(from) != 0 {
		for i, it := range items {
			if err := e.subtract(db, from, it.AssetID, quantities[i]); err != nil {
				return nil, errors.Field(itemField(i), err, "cannot subtract from %s", from)
			}
		}
	}
	if to := t.destination(); len(to) != 0 {
		for i, it := range items {
			if err := e.add(db, to, it.AssetID, quantities[i]); err != nil {
				return nil, errors.Field(itemField(i), err, "cannot add to %s", to)
			}
		}
	}

	switch t.(type) {
	case Mint:
		for i, it := range items {
			if err := e.increaseSupply(db, it.AssetID, quantities[i]); err != nil {
				return nil, errors.Field(itemField(i), err, "supply")
			}
		}
	case Burn:
		for i, it := range items {
			if err := e.decreaseSupply(db, it.AssetID, quantities[i]); err != nil {
				return nil, errors.Field(itemField(i), err, "supply")
			}
		}
	}

	event := &Event{
		Kind: t.kind(),
		From: t.source(),
		To:   t.destination(),
	}
	for i, it := range items {
		event.Items = append(event.Items, EventItem{AssetID: it.AssetID, Quantity: quantities[i]})
	}
	return event, nil
}

// checkEndpoints returns ErrState when an address required by the transition
// kind is missing.
func checkEndpoints(t Transition) error {
	switch t.(type) {
	case Mint:
		if len(t.destination()) == 0 {
			return errors.Wrap(errors.ErrState, "mint without recipient")
		}
	case Burn:
		if len(t.source()) == 0 {
			return errors.Wrap(errors.ErrState, "burn without owner")
		}
	case Transfer:
		if len(t.source()) == 0 || len(t.destination()) == 0 {
			return errors.Wrap(errors.ErrState, "transfer without sender or recipient")
		}
	default:
		return errors.Wrapf(errors.ErrType, "transition %T", t)
	}
	return nil
}

func (e Engine) subtract(db weave.KVStore, owner weave.Address, assetID string, q amount.Amount) error {
	bal, err := e.balances.Get(db, owner, assetID)
	if err != nil {
		return err
	}
	held, err := bal.Amount()
	if err != nil {
		return err
	}
	left, err := held.Sub(q)
	if err != nil {
		return errors.Wrapf(err, "%s of %q held", held, assetID)
	}
	return e.balances.Set(db, owner, assetID, left)
}

func (e Engine) add(db weave.KVStore, owner weave.Address, assetID string, q amount.Amount) error {
	held, err := e.balances.Quantity(db, owner, assetID)
	if err != nil {
		return err
	}
	total, err := held.Add(q)
	if err != nil {
		return errors.Wrapf(err, "%s of %q held", held, assetID)
	}
	return e.balances.Set(db, owner, assetID, total)
}

func (e Engine) increaseSupply(db weave.KVStore, assetID string, q amount.Amount) error {
	supply, err := e.supplies.Quantity(db, assetID)
	if err != nil {
		return err
	}
	total, err := supply.Add(q)
	if err != nil {
		return err
	}
	return e.supplies.Set(db, assetID, total)
}

func (e Engine) decreaseSupply(db weave.KVStore, assetID string, q amount.Amount) error {
	supply, err := e.supplies.Quantity(db, assetID)
	if err != nil {
		return err
	}
	left, err := supply.Sub(q)
	if err != nil {
		return errors.Wrapf(errors.ErrState, "supply %s of %q lower than burned %s", supply, assetID, q)
	}
	return e.supplies.Set(db, assetID, left)
}
