package sigs

import (
	"testing"

	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserModel(t *testing.T) {
	kv := store.MemStore()

	bucket := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()
	addr := pub.Address()

	var stored UserData
	err := bucket.One(kv, addr, &stored)
	assert.True(t, errors.ErrNotFound.Is(err))

	user, err := bucket.GetOrCreate(kv, pub)
	require.NoError(t, err)
	assert.NoError(t, user.Validate())
	assert.Equal(t, int64(0), user.Sequence)

	assert.True(t, ErrInvalidSequence.Is(user.CheckAndIncrementSequence(5)))
	assert.NoError(t, user.CheckAndIncrementSequence(0))
	assert.Error(t, user.CheckAndIncrementSequence(0))
	assert.NoError(t, user.CheckAndIncrementSequence(1))
	assert.Equal(t, int64(2), user.Sequence)

	require.NoError(t, bucket.Save(kv, user))

	loaded, err := bucket.GetOrCreate(kv, pub)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.Sequence)
	assert.Equal(t, pub.Ed25519, loaded.Pubkey.Ed25519)
}

func TestUserValidation(t *testing.T) {
	assert.True(t, errors.ErrEmpty.Is(NewUser(nil).Validate()))

	pub := crypto.GenPrivKeyEd25519().PublicKey()
	user := NewUser(pub)
	assert.NoError(t, user.Validate())

	user.Sequence = -30
	assert.True(t, ErrInvalidSequence.Is(user.Validate()))
	user.Sequence = 17
	assert.NoError(t, user.Validate())

	user.Metadata = nil
	assert.True(t, errors.ErrMetadata.Is(user.Validate()))
}

func TestSequenceOverflow(t *testing.T) {
	user := NewUser(crypto.GenPrivKeyEd25519().PublicKey())
	user.Sequence = (1 << 53) - 1
	assert.True(t, errors.ErrOverflow.Is(user.CheckAndIncrementSequence(user.Sequence)))
}
