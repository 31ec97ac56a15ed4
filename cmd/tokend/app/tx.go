package tokend

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/iov-one/tokenweave/x/sale"
	"github.com/iov-one/tokenweave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// msgs returns all message fields. Only one of them can be set.
func (tx *Tx) msgs() []weave.Msg {
	var all []weave.Msg
	add := func(set bool, m weave.Msg) {
		if set {
			all = append(all, m)
		}
	}
	add(tx.MultitokenMintMsg != nil, tx.MultitokenMintMsg)
	add(tx.MultitokenSendFromMsg != nil, tx.MultitokenSendFromMsg)
	add(tx.MultitokenBatchSendFromMsg != nil, tx.MultitokenBatchSendFromMsg)
	add(tx.MultitokenBurnMsg != nil, tx.MultitokenBurnMsg)
	add(tx.MultitokenBatchBurnMsg != nil, tx.MultitokenBatchBurnMsg)
	add(tx.MultitokenApproveAllMsg != nil, tx.MultitokenApproveAllMsg)
	add(tx.MultitokenRevokeAllMsg != nil, tx.MultitokenRevokeAllMsg)
	add(tx.NftMintMsg != nil, tx.NftMintMsg)
	add(tx.NftTransferMsg != nil, tx.NftTransferMsg)
	add(tx.NftSendMsg != nil, tx.NftSendMsg)
	add(tx.NftApproveMsg != nil, tx.NftApproveMsg)
	add(tx.NftRevokeMsg != nil, tx.NftRevokeMsg)
	add(tx.NftApproveAllMsg != nil, tx.NftApproveAllMsg)
	add(tx.NftRevokeAllMsg != nil, tx.NftRevokeAllMsg)
	add(tx.NftBurnMsg != nil, tx.NftBurnMsg)
	add(tx.SaleBuyMsg != nil, tx.SaleBuyMsg)
	return all
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	switch msgs := tx.msgs(); len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrEmpty, "transaction carries no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "transaction carries %d messages", len(msgs))
	}
}

// SetMsg assigns the message to the corresponding field of the transaction.
func (tx *Tx) SetMsg(msg weave.Msg) error {
	switch m := msg.(type) {
	case *multitoken.MintMsg:
		tx.MultitokenMintMsg = m
	case *multitoken.SendFromMsg:
		tx.MultitokenSendFromMsg = m
	case *multitoken.BatchSendFromMsg:
		tx.MultitokenBatchSendFromMsg = m
	case *multitoken.BurnMsg:
		tx.MultitokenBurnMsg = m
	case *multitoken.BatchBurnMsg:
		tx.MultitokenBatchBurnMsg = m
	case *multitoken.ApproveAllMsg:
		tx.MultitokenApproveAllMsg = m
	case *multitoken.RevokeAllMsg:
		tx.MultitokenRevokeAllMsg = m
	case *nft.MintMsg:
		tx.NftMintMsg = m
	case *nft.TransferMsg:
		tx.NftTransferMsg = m
	case *nft.SendMsg:
		tx.NftSendMsg = m
	case *nft.ApproveMsg:
		tx.NftApproveMsg = m
	case *nft.RevokeMsg:
		tx.NftRevokeMsg = m
	case *nft.ApproveAllMsg:
		tx.NftApproveAllMsg = m
	case *nft.RevokeAllMsg:
		tx.NftRevokeAllMsg = m
	case *nft.BurnMsg:
		tx.NftBurnMsg = m
	case *sale.BuyMsg:
		tx.SaleBuyMsg = m
	default:
		return errors.WithType(errors.ErrType, msg)
	}
	return nil
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}
