package weavetest

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/crypto"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a signature condition of a freshly generated key.
func NewCondition() weave.Condition {
	return NewKey().PublicKey().Condition()
}
