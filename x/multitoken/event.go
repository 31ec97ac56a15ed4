package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/tendermint/tendermint/libs/common"
)

// EventKind names a state change of the ledger.
type EventKind string

const (
	EventMint       EventKind = "mint"
	EventBurn       EventKind = "burn"
	EventTransfer   EventKind = "transfer"
	EventApproveAll EventKind = "approve_all"
	EventRevokeAll  EventKind = "revoke_all"
)

// Event is the single aggregated notification emitted by an operation.
type Event struct {
	Kind     EventKind
	From     weave.Address
	To       weave.Address
	Owner    weave.Address
	Operator weave.Address
	Items    []EventItem
}

// EventItem is the quantity of a single asset moved by an event.
type EventItem struct {
	AssetID  string
	Quantity amount.Amount
}

// Tags renders the event as tendermint tags, sorted by key. Quantities of a
// repeated asset id are summed into a single asset:<id> tag.
func (e *Event) Tags() []common.KVPair {
	tags := common.KVPairs{
		{Key: []byte("action"), Value: []byte(e.Kind)},
	}
	for _, a := range []struct {
		name string
		addr weave.Address
	}{
		{"from", e.From},
		{"to", e.To},
		{"owner", e.Owner},
		{"operator", e.Operator},
	} {
		if len(a.addr) != 0 {
			tags = append(tags, common.KVPair{Key: []byte(a.name), Value: []byte(a.addr.String())})
		}
	}

	totals := make(map[string]amount.Amount)
	var order []string
	for _, it := range e.Items {
		prev, ok := totals[it.AssetID]
		if !ok {
			order = append(order, it.AssetID)
		}
		if sum, err := prev.Add(it.Quantity); err == nil {
			totals[it.AssetID] = sum
		} else {
			totals[it.AssetID] = amount.Max
		}
	}
	for _, id := range order {
		tags = append(tags, common.KVPair{
			Key:   []byte("asset:" + id),
			Value: []byte(totals[id].String()),
		})
	}

	tags.Sort()
	return tags
}
