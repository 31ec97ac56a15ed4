package crypto

import (
	weave "github.com/iov-one/tokenweave"
)

// ExtensionName is the extension part of signature conditions.
const ExtensionName = "sigs"

// PubKey verifies signatures and names the condition they satisfy.
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() weave.Condition
}

// Signer produces signatures. It never exposes the private key, so it can
// be implemented by a hardware device.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

var (
	_ PubKey = (*PublicKey)(nil)
	_ Signer = (*PrivateKey)(nil)
)

// Condition is satisfied by a transaction carrying a valid signature of
// this key. An empty key has no condition.
func (p *PublicKey) Condition() weave.Condition {
	raw := p.GetEd25519()
	if len(raw) == 0 {
		return nil
	}
	return weave.NewCondition(ExtensionName, "ed25519", raw)
}

// Address of the account controlled by this key.
func (p *PublicKey) Address() weave.Address {
	if c := p.Condition(); c != nil {
		return c.Address()
	}
	return nil
}
