package sigs

import (
	"context"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	"github.com/iov-one/tokenweave/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signerRecorder remembers the signers seen by the last call.
type signerRecorder struct {
	signers []weave.Condition
}

func (r *signerRecorder) Check(ctx weave.Context, _ weave.KVStore, _ weave.Tx) (*weave.CheckResult, error) {
	r.signers = Authenticate{}.GetConditions(ctx)
	return &weave.CheckResult{}, nil
}

func (r *signerRecorder) Deliver(ctx weave.Context, _ weave.KVStore, _ weave.Tx) (*weave.DeliverResult, error) {
	r.signers = Authenticate{}.GetConditions(ctx)
	return &weave.DeliverResult{}, nil
}

func TestDecorator(t *testing.T) {
	const chainID = "tokend-test"
	ctx := weave.WithChainID(context.Background(), chainID)
	key := crypto.GenPrivKeyEd25519()
	owner := []weave.Condition{key.PublicKey().Condition()}

	calls := map[string]func(weave.Decorator, weave.KVStore, weave.Tx, weave.Handler) error{
		"check": func(d weave.Decorator, db weave.KVStore, tx weave.Tx, h weave.Handler) error {
			_, err := d.Check(ctx, db, tx, h)
			return err
		},
		"deliver": func(d weave.Decorator, db weave.KVStore, tx weave.Tx, h weave.Handler) error {
			_, err := d.Deliver(ctx, db, tx, h)
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			rec := &signerRecorder{}
			tx := NewStdTx([]byte("mint"))
			sig0, err := SignTx(key, tx, chainID, 0)
			require.NoError(t, err)
			sig1, err := SignTx(key, tx, chainID, 1)
			require.NoError(t, err)

			strict := NewDecorator()
			assert.True(t, errors.ErrUnauthorized.Is(call(strict, db, tx, rec)))

			tx.Signatures = []*StdSignature{sig0}
			require.NoError(t, call(strict, db, tx, rec))
			assert.Equal(t, owner, rec.signers)
			assert.True(t, Authenticate{}.HasAddress(signersCtx(owner), key.PublicKey().Address()))

			assert.True(t, ErrInvalidSequence.Is(call(strict, db, tx, rec)))

			lenient := strict.AllowMissingSigs()
			tx.Signatures = nil
			require.NoError(t, call(lenient, db, tx, rec))
			assert.Empty(t, rec.signers)

			tx.Signatures = []*StdSignature{sig1}
			require.NoError(t, call(lenient, db, tx, rec))
			assert.Equal(t, owner, rec.signers)
		})
	}
}

func signersCtx(signers []weave.Condition) weave.Context {
	return context.WithValue(context.Background(), signersKey{}, signers)
}

func TestDecoratorNonSignableTx(t *testing.T) {
	ctx := weave.WithChainID(context.Background(), "tokend-test")
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "multitoken/send"}}
	h := &weavetest.Handler{}

	_, err := NewDecorator().Deliver(ctx, store.MemStore(), tx, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 0, h.CallCount())

	_, err = NewDecorator().AllowMissingSigs().Deliver(ctx, store.MemStore(), tx, h)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())
	assert.False(t, Authenticate{}.HasAddress(ctx, weavetest.NewCondition().Address()))
}
