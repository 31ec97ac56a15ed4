package sigs

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/weavetest"
)

// StdTx is a signed transaction carrying a mock message.
type StdTx struct {
	weavetest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ weave.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx: weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg", Serialized: payload}},
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
