package crypto

import (
	"bytes"
	"testing"

	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

func TestEmptyKeys(t *testing.T) {
	var priv PrivateKey
	_, err := priv.Sign([]byte("transfer"))
	assert.IsErr(t, errors.ErrState, err)
	assert.Equal(t, 0, len(priv.PublicKey().GetEd25519()))

	var pub PublicKey
	if pub.Verify([]byte("transfer"), &Signature{Ed25519: make([]byte, 64)}) {
		t.Fatal("empty public key verified a signature")
	}
}

func TestKeyEncoding(t *testing.T) {
	priv := PrivKeyEd25519FromSeed(bytes.Repeat([]byte{7}, 32))
	msg := []byte("send 3 silver")

	raw, err := priv.Marshal()
	assert.Nil(t, err)
	var decoded PrivateKey
	assert.Nil(t, decoded.Unmarshal(raw))
	assert.Equal(t, priv.Ed25519, decoded.Ed25519)

	sig, err := decoded.Sign(msg)
	assert.Nil(t, err)
	raw, err = sig.Marshal()
	assert.Nil(t, err)
	var decodedSig Signature
	assert.Nil(t, decodedSig.Unmarshal(raw))

	if !priv.PublicKey().Verify(msg, &decodedSig) {
		t.Fatal("decoded signature does not verify")
	}
	ext, typ, data, err := priv.PublicKey().Condition().Parse()
	assert.Nil(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, priv.PublicKey().Ed25519, data)
}
