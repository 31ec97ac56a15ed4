package multitoken

import (
	"context"
	"testing"
	"time"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	"github.com/iov-one/tokenweave/weavetest"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

func TestAuthorize(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	operator := weavetest.NewCondition().Address()
	stranger := weavetest.NewCondition().Address()

	now := time.Unix(1500000000, 0)

	cases := map[string]struct {
		caller    weave.Address
		expires   *weave.Expiration
		assetID   string
		requested uint64
		height    int64
		want      uint64
		wantErr   *errors.Error
	}{
		"owner below the balance": {
			caller:    owner,
			assetID:   "A",
			requested: 3,
			want:      3,
		},
		"owner above the balance is clamped": {
			caller:    owner,
			assetID:   "A",
			requested: 99,
			want:      10,
		},
		"operator with a never expiring approval": {
			caller:    operator,
			assetID:   "A",
			requested: 7,
			want:      7,
		},
		"operator one block before the expiration": {
			caller:    operator,
			expires:   weave.ExpiresAtHeight(50),
			height:    49,
			assetID:   "A",
			requested: 7,
			want:      7,
		},
		"operator at the expiration height": {
			caller:    operator,
			expires:   weave.ExpiresAtHeight(50),
			height:    50,
			assetID:   "A",
			requested: 7,
			wantErr:   errors.ErrUnauthorized,
		},
		"operator one second before the expiration time": {
			caller:    operator,
			expires:   weave.ExpiresAtTime(weave.AsUnixTime(now.Add(time.Second))),
			assetID:   "A",
			requested: 1,
			want:      1,
		},
		"operator at the expiration time": {
			caller:    operator,
			expires:   weave.ExpiresAtTime(weave.AsUnixTime(now)),
			assetID:   "A",
			requested: 1,
			wantErr:   errors.ErrUnauthorized,
		},
		"stranger": {
			caller:    stranger,
			assetID:   "A",
			requested: 1,
			wantErr:   errors.ErrUnauthorized,
		},
		"stranger is rejected before the asset lookup": {
			caller:    stranger,
			assetID:   "unknown",
			requested: 1,
			wantErr:   errors.ErrUnauthorized,
		},
		"owner of a never held asset": {
			caller:    owner,
			assetID:   "unknown",
			requested: 1,
			wantErr:   errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			_, err := NewEngine().Apply(db, Mint{To: owner}, []*TokenAmount{{AssetID: "A", Quantity: "10"}})
			assert.Nil(t, err)
			_, err = NewApprovalBucket().Approve(db, owner, operator, tc.expires)
			assert.Nil(t, err)

			ctx := weave.WithHeight(context.Background(), tc.height)
			ctx = weave.WithBlockTime(ctx, now)

			got, err := NewAuthorizer().Authorize(ctx, db, tc.caller, owner, tc.assetID, amount.New(tc.requested))
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil && !got.Equals(amount.New(tc.want)) {
				t.Fatalf("want %d authorized, got %s", tc.want, got)
			}
		})
	}
}

func TestAuthorizeBatch(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	db := store.MemStore()
	_, err := NewEngine().Apply(db, Mint{To: owner}, []*TokenAmount{
		{AssetID: "A", Quantity: "10"},
		{AssetID: "B", Quantity: "2"},
	})
	assert.Nil(t, err)

	ctx := weave.WithHeight(context.Background(), 1)
	auth := NewAuthorizer()

	items, err := auth.AuthorizeBatch(ctx, db, owner, owner, []*TokenAmount{
		{AssetID: "A", Quantity: "4"},
		{AssetID: "B", Quantity: "5"},
	})
	assert.Nil(t, err)
	assert.Equal(t, []*TokenAmount{
		{AssetID: "A", Quantity: "4"},
		{AssetID: "B", Quantity: "2"},
	}, items)

	_, err = auth.AuthorizeBatch(ctx, db, owner, owner, []*TokenAmount{
		{AssetID: "A", Quantity: "4"},
		{AssetID: "C", Quantity: "5"},
	})
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.FieldError(t, err, "Items.1", errors.ErrNotFound)
}
