package sigs

import (
	"github.com/iov-one/tokenweave/errors"
)

// SignedTx is a transaction authenticated by signatures. Every signature
// is made over the same sign bytes, combined with the chain id and the
// sequence of the signer.
type SignedTx interface {
	// GetSignBytes returns the deterministic encoding of the message.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// ErrInvalidSequence means a signature was made for another sequence than
// the one expected from its signer, usually a replay.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")

// Validate checks that the signature is complete. It does not verify it.
func (s *StdSignature) Validate() error {
	switch {
	case s.GetSequence() < 0:
		return errors.Wrapf(ErrInvalidSequence, "sequence %d", s.GetSequence())
	case len(s.Pubkey.GetEd25519()) == 0:
		return errors.Wrap(errors.ErrUnauthorized, "no public key")
	case len(s.Signature.GetEd25519()) == 0:
		return errors.Wrap(errors.ErrUnauthorized, "no signature")
	}
	return nil
}
