package multitoken

import (
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	"github.com/iov-one/tokenweave/weavetest"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

func TestEngineApply(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	type balance struct {
		owner   weave.Address
		assetID string
		want    uint64
	}

	cases := map[string]struct {
		transition Transition
		items      []*TokenAmount
		wantErr    *errors.Error
		// all checks run against the state created by minting 10 of
		// "A" and 10 of "B" to alice
		wantBalances []balance
		wantSupply   map[string]uint64
		wantKind     EventKind
	}{
		"mint accumulates duplicates": {
			transition: Mint{To: bob},
			items: []*TokenAmount{
				{AssetID: "A", Quantity: "1"},
				{AssetID: "A", Quantity: "2"},
			},
			wantBalances: []balance{{bob, "A", 3}, {alice, "A", 10}},
			wantSupply:   map[string]uint64{"A": 13, "B": 10},
			wantKind:     EventMint,
		},
		"transfer leaves supply untouched": {
			transition: Transfer{From: alice, To: bob},
			items: []*TokenAmount{
				{AssetID: "A", Quantity: "4"},
				{AssetID: "B", Quantity: "10"},
			},
			wantBalances: []balance{{alice, "A", 6}, {alice, "B", 0}, {bob, "A", 4}, {bob, "B", 10}},
			wantSupply:   map[string]uint64{"A": 10, "B": 10},
			wantKind:     EventTransfer,
		},
		"transfer to self": {
			transition:   Transfer{From: alice, To: alice},
			items:        []*TokenAmount{{AssetID: "A", Quantity: "10"}},
			wantBalances: []balance{{alice, "A", 10}},
			wantSupply:   map[string]uint64{"A": 10},
			wantKind:     EventTransfer,
		},
		"transfer of duplicates above the balance": {
			transition: Transfer{From: alice, To: bob},
			items: []*TokenAmount{
				{AssetID: "A", Quantity: "6"},
				{AssetID: "A", Quantity: "6"},
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"burn decreases supply": {
			transition:   Burn{From: alice},
			items:        []*TokenAmount{{AssetID: "B", Quantity: "7"}},
			wantBalances: []balance{{alice, "B", 3}},
			wantSupply:   map[string]uint64{"A": 10, "B": 3},
			wantKind:     EventBurn,
		},
		"burn more than held": {
			transition: Burn{From: alice},
			items:      []*TokenAmount{{AssetID: "B", Quantity: "11"}},
			wantErr:    errors.ErrInsufficientAmount,
		},
		"burn of a never held asset": {
			transition: Burn{From: bob},
			items:      []*TokenAmount{{AssetID: "A", Quantity: "1"}},
			wantErr:    errors.ErrNotFound,
		},
		"mint without recipient": {
			transition: Mint{},
			items:      []*TokenAmount{{AssetID: "A", Quantity: "1"}},
			wantErr:    errors.ErrState,
		},
		"burn without owner": {
			transition: Burn{},
			items:      []*TokenAmount{{AssetID: "A", Quantity: "1"}},
			wantErr:    errors.ErrState,
		},
		"transfer without recipient": {
			transition: Transfer{From: alice},
			items:      []*TokenAmount{{AssetID: "A", Quantity: "1"}},
			wantErr:    errors.ErrState,
		},
		"transfer without sender": {
			transition: Transfer{To: bob},
			items:      []*TokenAmount{{AssetID: "A", Quantity: "1"}},
			wantErr:    errors.ErrState,
		},
		"malformed quantity": {
			transition: Mint{To: bob},
			items:      []*TokenAmount{{AssetID: "A", Quantity: "-1"}},
			wantErr:    errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			engine := NewEngine()
			_, err := engine.Apply(db, Mint{To: alice}, []*TokenAmount{
				{AssetID: "A", Quantity: "10"},
				{AssetID: "B", Quantity: "10"},
			})
			assert.Nil(t, err)

			event, err := engine.Apply(db, tc.transition, tc.items)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantKind, event.Kind)
			for _, b := range tc.wantBalances {
				got, err := BalanceOf(db, b.owner, b.assetID)
				assert.Nil(t, err)
				if !got.Equals(amount.New(b.want)) {
					t.Errorf("want %s %q balance %d, got %s", b.owner, b.assetID, b.want, got)
				}
			}
			for assetID, want := range tc.wantSupply {
				got, err := TotalSupply(db, assetID)
				assert.Nil(t, err)
				if !got.Equals(amount.New(want)) {
					t.Errorf("want %q supply %d, got %s", assetID, want, got)
				}
			}
		})
	}
}

func TestEngineZeroBalancesPersist(t *testing.T) {
	db := store.MemStore()
	alice := weavetest.NewCondition().Address()
	engine := NewEngine()

	_, err := engine.Apply(db, Mint{To: alice}, []*TokenAmount{{AssetID: "A", Quantity: "5"}})
	assert.Nil(t, err)
	_, err = engine.Apply(db, Burn{From: alice}, []*TokenAmount{{AssetID: "A", Quantity: "5"}})
	assert.Nil(t, err)

	bal, err := NewBalanceBucket().Get(db, alice, "A")
	assert.Nil(t, err)
	assert.Equal(t, "0", bal.Quantity)

	balances, err := BalancesOfOwner(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(balances))
}

func TestEngineMintWithoutRecipient(t *testing.T) {
	db := store.MemStore()
	engine := NewEngine()

	_, err := engine.Apply(db, Mint{}, []*TokenAmount{{AssetID: "A", Quantity: "5"}})
	assert.IsErr(t, errors.ErrState, err)

	supply, err := TotalSupply(db, "A")
	assert.Nil(t, err)
	if !supply.IsZero() {
		t.Fatalf("supply must not change, got %s", supply)
	}
}
