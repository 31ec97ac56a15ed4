package x

import (
	"context"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/weavetest"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

func TestAnySigner(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	cases := map[string]struct {
		auth    Authenticator
		want    weave.Address
		wantErr *errors.Error
	}{
		"unsigned": {
			auth:    &weavetest.Auth{},
			wantErr: errors.ErrUnauthorized,
		},
		"single signer": {
			auth: &weavetest.Auth{Signer: alice},
			want: alice.Address(),
		},
		"first of many": {
			auth: &weavetest.Auth{Signers: []weave.Condition{bob, alice}},
			want: bob.Address(),
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := AnySigner(context.Background(), tc.auth)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChainAuth(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carol := weavetest.NewCondition()

	signed := &weavetest.CtxAuth{Key: "sigs"}
	ctx := signed.SetConditions(context.Background(), bob, alice)

	auth := ChainAuth(
		&weavetest.Auth{Signer: alice},
		signed,
	)
	assert.Equal(t, []weave.Condition{alice, bob}, auth.GetConditions(ctx))
	assert.Equal(t, true, auth.HasAddress(ctx, bob.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, carol.Address()))

	signer, err := AnySigner(ctx, auth)
	assert.Nil(t, err)
	assert.Equal(t, alice.Address(), signer)

	empty := ChainAuth()
	assert.Equal(t, 0, len(empty.GetConditions(ctx)))
	assert.Equal(t, false, empty.HasAddress(ctx, alice.Address()))
}
