package sigs

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/errors"
)

// signPrefix versions the layout of the signed payload.
var signPrefix = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the digest a signer signs for a transaction. It
// is the SHA-512 hash of
//
//	prefix (4 bytes) | len(chainID) (1 byte) | chainID | sequence (8 bytes, big endian) | tx sign bytes
//
// A fixed size digest keeps hardware wallets able to sign any transaction.
func BuildSignBytes(txBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "sequence %d", seq)
	}
	if !weave.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}

	var buf bytes.Buffer
	buf.Write(signPrefix)
	buf.WriteByte(byte(len(chainID)))
	buf.WriteString(chainID)
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))
	buf.Write(nonce[:])
	buf.Write(txBytes)

	digest := sha512.Sum512(buf.Bytes())
	return digest[:], nil
}

// BuildSignBytesTx is BuildSignBytes for the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	txBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	return BuildSignBytes(txBytes, chainID, seq)
}

// SignTx signs tx with the given sequence. The sequence must be the next
// nonce of the signer, see NextNonce.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{Sequence: seq, Pubkey: signer.PublicKey(), Signature: sig}, nil
}

// VerifyTxSignatures verifies every signature of tx and returns the
// conditions of all signers, in signature order. A transaction without
// signatures has no signers. Any invalid signature fails the whole
// transaction.
func VerifyTxSignatures(db weave.KVStore, tx SignedTx, chainID string) ([]weave.Condition, error) {
	txBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "sign bytes")
	}
	sigs := tx.GetSignatures()
	signers := make([]weave.Condition, len(sigs))
	for i, sig := range sigs {
		if signers[i], err = VerifySignature(db, sig, txBytes, chainID); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
	}
	return signers, nil
}

// VerifySignature verifies a single signature and, when valid, consumes
// the sequence of its signer.
func VerifySignature(db weave.KVStore, sig *StdSignature, txBytes []byte, chainID string) (weave.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(txBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	users := NewBucket()
	user, err := users.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature does not match")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := users.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}
