package tokend

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/iov-one/tokenweave/x/sale"
	"github.com/iov-one/tokenweave/x/sigs"
)

// Tx contains the message and the signatures authorizing it. Exactly one
// message field is set.
type Tx struct {
	Signatures                 []*sigs.StdSignature         `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	MultitokenMintMsg          *multitoken.MintMsg          `protobuf:"bytes,51,opt,name=multitoken_mint_msg,proto3" json:"multitoken_mint_msg,omitempty"`
	MultitokenSendFromMsg      *multitoken.SendFromMsg      `protobuf:"bytes,52,opt,name=multitoken_send_from_msg,proto3" json:"multitoken_send_from_msg,omitempty"`
	MultitokenBatchSendFromMsg *multitoken.BatchSendFromMsg `protobuf:"bytes,53,opt,name=multitoken_batch_send_from_msg,proto3" json:"multitoken_batch_send_from_msg,omitempty"`
	MultitokenBurnMsg          *multitoken.BurnMsg          `protobuf:"bytes,54,opt,name=multitoken_burn_msg,proto3" json:"multitoken_burn_msg,omitempty"`
	MultitokenBatchBurnMsg     *multitoken.BatchBurnMsg     `protobuf:"bytes,55,opt,name=multitoken_batch_burn_msg,proto3" json:"multitoken_batch_burn_msg,omitempty"`
	MultitokenApproveAllMsg    *multitoken.ApproveAllMsg    `protobuf:"bytes,56,opt,name=multitoken_approve_all_msg,proto3" json:"multitoken_approve_all_msg,omitempty"`
	MultitokenRevokeAllMsg     *multitoken.RevokeAllMsg     `protobuf:"bytes,57,opt,name=multitoken_revoke_all_msg,proto3" json:"multitoken_revoke_all_msg,omitempty"`
	NftMintMsg                 *nft.MintMsg                 `protobuf:"bytes,61,opt,name=nft_mint_msg,proto3" json:"nft_mint_msg,omitempty"`
	NftTransferMsg             *nft.TransferMsg             `protobuf:"bytes,62,opt,name=nft_transfer_msg,proto3" json:"nft_transfer_msg,omitempty"`
	NftSendMsg                 *nft.SendMsg                 `protobuf:"bytes,63,opt,name=nft_send_msg,proto3" json:"nft_send_msg,omitempty"`
	NftApproveMsg              *nft.ApproveMsg              `protobuf:"bytes,64,opt,name=nft_approve_msg,proto3" json:"nft_approve_msg,omitempty"`
	NftRevokeMsg               *nft.RevokeMsg               `protobuf:"bytes,65,opt,name=nft_revoke_msg,proto3" json:"nft_revoke_msg,omitempty"`
	NftApproveAllMsg           *nft.ApproveAllMsg           `protobuf:"bytes,66,opt,name=nft_approve_all_msg,proto3" json:"nft_approve_all_msg,omitempty"`
	NftRevokeAllMsg            *nft.RevokeAllMsg            `protobuf:"bytes,67,opt,name=nft_revoke_all_msg,proto3" json:"nft_revoke_all_msg,omitempty"`
	NftBurnMsg                 *nft.BurnMsg                 `protobuf:"bytes,68,opt,name=nft_burn_msg,proto3" json:"nft_burn_msg,omitempty"`
	SaleBuyMsg                 *sale.BuyMsg                 `protobuf:"bytes,71,opt,name=sale_buy_msg,proto3" json:"sale_buy_msg,omitempty"`
}

func (m *Tx) Reset()                     { *m = Tx{} }
func (m *Tx) String() string             { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()                {}
func (m *Tx) Marshal() ([]byte, error)   { return proto.Marshal((*txWire)(m)) }
func (m *Tx) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*txWire)(m)) }

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	txWire Tx
)

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}
