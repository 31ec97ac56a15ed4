package multitoken

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/tokenweave"
)

type TokenAmount struct {
	AssetID  string `protobuf:"bytes,1,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	Quantity string `protobuf:"bytes,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *TokenAmount) Reset()                     { *m = TokenAmount{} }
func (m *TokenAmount) String() string             { return proto.CompactTextString(m) }
func (*TokenAmount) ProtoMessage()                {}
func (m *TokenAmount) Marshal() ([]byte, error)   { return proto.Marshal((*tokenAmountWire)(m)) }
func (m *TokenAmount) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*tokenAmountWire)(m)) }

type Balance struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner,omitempty"`
	AssetID  string          `protobuf:"bytes,3,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	Quantity string          `protobuf:"bytes,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Balance) Reset()                     { *m = Balance{} }
func (m *Balance) String() string             { return proto.CompactTextString(m) }
func (*Balance) ProtoMessage()                {}
func (m *Balance) Marshal() ([]byte, error)   { return proto.Marshal((*balanceWire)(m)) }
func (m *Balance) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*balanceWire)(m)) }

type Approval struct {
	Metadata *weave.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address     `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner,omitempty"`
	Operator weave.Address     `protobuf:"bytes,3,opt,name=operator,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"operator,omitempty"`
	Expires  *weave.Expiration `protobuf:"bytes,4,opt,name=expires,proto3" json:"expires,omitempty"`
}

func (m *Approval) Reset()                     { *m = Approval{} }
func (m *Approval) String() string             { return proto.CompactTextString(m) }
func (*Approval) ProtoMessage()                {}
func (m *Approval) Marshal() ([]byte, error)   { return proto.Marshal((*approvalWire)(m)) }
func (m *Approval) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*approvalWire)(m)) }

type Token struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID   string          `protobuf:"bytes,2,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	URI       string          `protobuf:"bytes,3,opt,name=uri,proto3" json:"uri,omitempty"`
	Extension []byte          `protobuf:"bytes,4,opt,name=extension,proto3" json:"extension,omitempty"`
}

func (m *Token) Reset()                     { *m = Token{} }
func (m *Token) String() string             { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()                {}
func (m *Token) Marshal() ([]byte, error)   { return proto.Marshal((*tokenWire)(m)) }
func (m *Token) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*tokenWire)(m)) }

type Supply struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  string          `protobuf:"bytes,2,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	Quantity string          `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Supply) Reset()                     { *m = Supply{} }
func (m *Supply) String() string             { return proto.CompactTextString(m) }
func (*Supply) ProtoMessage()                {}
func (m *Supply) Marshal() ([]byte, error)   { return proto.Marshal((*supplyWire)(m)) }
func (m *Supply) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*supplyWire)(m)) }

type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Minter   weave.Address   `protobuf:"bytes,2,opt,name=minter,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"minter,omitempty"`
}

func (m *Configuration) Reset()                   { *m = Configuration{} }
func (m *Configuration) String() string           { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()              {}
func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationWire)(m)) }
func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(m))
}

type MintMsg struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	To        weave.Address   `protobuf:"bytes,2,opt,name=to,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"to,omitempty"`
	AssetID   string          `protobuf:"bytes,3,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	Quantity  string          `protobuf:"bytes,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	URI       string          `protobuf:"bytes,5,opt,name=uri,proto3" json:"uri,omitempty"`
	Extension []byte          `protobuf:"bytes,6,opt,name=extension,proto3" json:"extension,omitempty"`
}

func (m *MintMsg) Reset()                     { *m = MintMsg{} }
func (m *MintMsg) String() string             { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()                {}
func (m *MintMsg) Marshal() ([]byte, error)   { return proto.Marshal((*mintMsgWire)(m)) }
func (m *MintMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*mintMsgWire)(m)) }

type SendFromMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	From     weave.Address   `protobuf:"bytes,2,opt,name=from,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"from,omitempty"`
	To       weave.Address   `protobuf:"bytes,3,opt,name=to,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"to,omitempty"`
	AssetID  string          `protobuf:"bytes,4,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	Quantity string          `protobuf:"bytes,5,opt,name=quantity,proto3" json:"quantity,omitempty"`
	Payload  []byte          `protobuf:"bytes,6,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *SendFromMsg) Reset()                     { *m = SendFromMsg{} }
func (m *SendFromMsg) String() string             { return proto.CompactTextString(m) }
func (*SendFromMsg) ProtoMessage()                {}
func (m *SendFromMsg) Marshal() ([]byte, error)   { return proto.Marshal((*sendFromMsgWire)(m)) }
func (m *SendFromMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*sendFromMsgWire)(m)) }

type BatchSendFromMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	From     weave.Address   `protobuf:"bytes,2,opt,name=from,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"from,omitempty"`
	To       weave.Address   `protobuf:"bytes,3,opt,name=to,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"to,omitempty"`
	Items    []*TokenAmount  `protobuf:"bytes,4,rep,name=items,proto3" json:"items,omitempty"`
	Payload  []byte          `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *BatchSendFromMsg) Reset()         { *m = BatchSendFromMsg{} }
func (m *BatchSendFromMsg) String() string { return proto.CompactTextString(m) }
func (*BatchSendFromMsg) ProtoMessage()    {}
func (m *BatchSendFromMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*batchSendFromMsgWire)(m))
}
func (m *BatchSendFromMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*batchSendFromMsgWire)(m))
}

type BurnMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetID  string          `protobuf:"bytes,2,opt,name=asset_id,proto3" json:"asset_id,omitempty"`
	Quantity string          `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *BurnMsg) Reset()                     { *m = BurnMsg{} }
func (m *BurnMsg) String() string             { return proto.CompactTextString(m) }
func (*BurnMsg) ProtoMessage()                {}
func (m *BurnMsg) Marshal() ([]byte, error)   { return proto.Marshal((*burnMsgWire)(m)) }
func (m *BurnMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*burnMsgWire)(m)) }

type BatchBurnMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Items    []*TokenAmount  `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *BatchBurnMsg) Reset()                   { *m = BatchBurnMsg{} }
func (m *BatchBurnMsg) String() string           { return proto.CompactTextString(m) }
func (*BatchBurnMsg) ProtoMessage()              {}
func (m *BatchBurnMsg) Marshal() ([]byte, error) { return proto.Marshal((*batchBurnMsgWire)(m)) }
func (m *BatchBurnMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*batchBurnMsgWire)(m))
}

type ApproveAllMsg struct {
	Metadata *weave.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Operator weave.Address     `protobuf:"bytes,2,opt,name=operator,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"operator,omitempty"`
	Expires  *weave.Expiration `protobuf:"bytes,3,opt,name=expires,proto3" json:"expires,omitempty"`
}

func (m *ApproveAllMsg) Reset()                   { *m = ApproveAllMsg{} }
func (m *ApproveAllMsg) String() string           { return proto.CompactTextString(m) }
func (*ApproveAllMsg) ProtoMessage()              {}
func (m *ApproveAllMsg) Marshal() ([]byte, error) { return proto.Marshal((*approveAllMsgWire)(m)) }
func (m *ApproveAllMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*approveAllMsgWire)(m))
}

type RevokeAllMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Operator weave.Address   `protobuf:"bytes,2,opt,name=operator,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"operator,omitempty"`
}

func (m *RevokeAllMsg) Reset()                   { *m = RevokeAllMsg{} }
func (m *RevokeAllMsg) String() string           { return proto.CompactTextString(m) }
func (*RevokeAllMsg) ProtoMessage()              {}
func (m *RevokeAllMsg) Marshal() ([]byte, error) { return proto.Marshal((*revokeAllMsgWire)(m)) }
func (m *RevokeAllMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*revokeAllMsgWire)(m))
}

type ReceiveMsg struct {
	Operator weave.Address  `protobuf:"bytes,1,opt,name=operator,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"operator,omitempty"`
	From     weave.Address  `protobuf:"bytes,2,opt,name=from,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"from,omitempty"`
	Items    []*TokenAmount `protobuf:"bytes,3,rep,name=items,proto3" json:"items,omitempty"`
	Payload  []byte         `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *ReceiveMsg) Reset()                     { *m = ReceiveMsg{} }
func (m *ReceiveMsg) String() string             { return proto.CompactTextString(m) }
func (*ReceiveMsg) ProtoMessage()                {}
func (m *ReceiveMsg) Marshal() ([]byte, error)   { return proto.Marshal((*receiveMsgWire)(m)) }
func (m *ReceiveMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*receiveMsgWire)(m)) }

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	tokenAmountWire      TokenAmount
	balanceWire          Balance
	approvalWire         Approval
	tokenWire            Token
	supplyWire           Supply
	configurationWire    Configuration
	mintMsgWire          MintMsg
	sendFromMsgWire      SendFromMsg
	batchSendFromMsgWire BatchSendFromMsg
	burnMsgWire          BurnMsg
	batchBurnMsgWire     BatchBurnMsg
	approveAllMsgWire    ApproveAllMsg
	revokeAllMsgWire     RevokeAllMsg
	receiveMsgWire       ReceiveMsg
)

func (m *tokenAmountWire) Reset()         { *m = tokenAmountWire{} }
func (m *tokenAmountWire) String() string { return proto.CompactTextString(m) }
func (*tokenAmountWire) ProtoMessage()    {}

func (m *balanceWire) Reset()         { *m = balanceWire{} }
func (m *balanceWire) String() string { return proto.CompactTextString(m) }
func (*balanceWire) ProtoMessage()    {}

func (m *approvalWire) Reset()         { *m = approvalWire{} }
func (m *approvalWire) String() string { return proto.CompactTextString(m) }
func (*approvalWire) ProtoMessage()    {}

func (m *tokenWire) Reset()         { *m = tokenWire{} }
func (m *tokenWire) String() string { return proto.CompactTextString(m) }
func (*tokenWire) ProtoMessage()    {}

func (m *supplyWire) Reset()         { *m = supplyWire{} }
func (m *supplyWire) String() string { return proto.CompactTextString(m) }
func (*supplyWire) ProtoMessage()    {}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *mintMsgWire) Reset()         { *m = mintMsgWire{} }
func (m *mintMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintMsgWire) ProtoMessage()    {}

func (m *sendFromMsgWire) Reset()         { *m = sendFromMsgWire{} }
func (m *sendFromMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendFromMsgWire) ProtoMessage()    {}

func (m *batchSendFromMsgWire) Reset()         { *m = batchSendFromMsgWire{} }
func (m *batchSendFromMsgWire) String() string { return proto.CompactTextString(m) }
func (*batchSendFromMsgWire) ProtoMessage()    {}

func (m *burnMsgWire) Reset()         { *m = burnMsgWire{} }
func (m *burnMsgWire) String() string { return proto.CompactTextString(m) }
func (*burnMsgWire) ProtoMessage()    {}

func (m *batchBurnMsgWire) Reset()         { *m = batchBurnMsgWire{} }
func (m *batchBurnMsgWire) String() string { return proto.CompactTextString(m) }
func (*batchBurnMsgWire) ProtoMessage()    {}

func (m *approveAllMsgWire) Reset()         { *m = approveAllMsgWire{} }
func (m *approveAllMsgWire) String() string { return proto.CompactTextString(m) }
func (*approveAllMsgWire) ProtoMessage()    {}

func (m *revokeAllMsgWire) Reset()         { *m = revokeAllMsgWire{} }
func (m *revokeAllMsgWire) String() string { return proto.CompactTextString(m) }
func (*revokeAllMsgWire) ProtoMessage()    {}

func (m *receiveMsgWire) Reset()         { *m = receiveMsgWire{} }
func (m *receiveMsgWire) String() string { return proto.CompactTextString(m) }
func (*receiveMsgWire) ProtoMessage()    {}
