package sigs

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/orm"
)

// BucketName is the name of the bucket holding signer accounts.
const BucketName = "sigs"

// maxSequence is the largest integer a JavaScript client can represent
// exactly.
const maxSequence = 1<<53 - 1

var _ orm.Model = (*UserData)(nil)

// NewUser returns an account of a signer that never signed, with the
// sequence zero.
func NewUser(pubkey *crypto.PublicKey) *UserData {
	return &UserData{Metadata: &weave.Metadata{Schema: 1}, Pubkey: pubkey}
}

func (u *UserData) Validate() error {
	errs := errors.AppendField(nil, "Metadata", u.Metadata.Validate())
	if len(u.Pubkey.GetEd25519()) == 0 {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrEmpty)
	}
	if u.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	}
	return errs
}

// CheckAndIncrementSequence consumes the sequence if it equals expected.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if expected != u.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", u.Sequence, expected)
	}
	if u.Sequence >= maxSequence {
		return errors.Wrapf(errors.ErrOverflow, "sequence %d", u.Sequence)
	}
	u.Sequence++
	return nil
}

// Bucket keeps signer accounts under the address of their public key.
type Bucket struct {
	orm.ModelBucket
}

func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket(BucketName, &UserData{})}
}

// GetOrCreate returns the account of the key, or a new unsaved one.
func (b Bucket) GetOrCreate(db weave.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	user, err := b.get(db, pubkey.Address())
	if errors.ErrNotFound.Is(err) {
		return NewUser(pubkey), nil
	}
	return user, err
}

func (b Bucket) Save(db weave.KVStore, user *UserData) error {
	return b.Put(db, user.Pubkey.Address(), user)
}

func (b Bucket) get(db weave.ReadOnlyKVStore, addr weave.Address) (*UserData, error) {
	var user UserData
	if err := b.One(db, addr, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// NextNonce returns the sequence the signer with the given address must
// use in its next signature. An address that never signed starts at zero.
func NextNonce(db weave.ReadOnlyKVStore, signer weave.Address) (int64, error) {
	user, err := NewBucket().get(db, signer)
	switch {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, errors.Wrap(err, "signer account")
	}
	return user.Sequence, nil
}
