package crypto

import (
	"github.com/iov-one/tokenweave/errors"
	"golang.org/x/crypto/ed25519"
)

// GenPrivKeyEd25519 returns a new random key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed derives a key from a 32 byte seed. The same seed
// always gives the same key. It panics for a seed of any other length.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}

func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	key := p.GetEd25519()
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrState, "ed25519 private key of %d bytes", len(key))
	}
	return &Signature{Ed25519: ed25519.Sign(key, message)}, nil
}

// PublicKey returns an empty key when the private key is not set.
func (p *PrivateKey) PublicKey() *PublicKey {
	key := p.GetEd25519()
	if len(key) != ed25519.PrivateKeySize {
		return &PublicKey{}
	}
	return &PublicKey{Ed25519: ed25519.PrivateKey(key).Public().(ed25519.PublicKey)}
}

// Verify reports whether sig is a signature of message made with the
// matching private key. Malformed keys and signatures never verify.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	key, raw := p.GetEd25519(), sig.GetEd25519()
	if len(key) != ed25519.PublicKeySize || len(raw) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(key, message, raw)
}
