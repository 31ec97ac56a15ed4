package nft

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/tokenweave"
)

type Approval struct {
	Spender weave.Address     `protobuf:"bytes,1,opt,name=spender,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"spender,omitempty"`
	Expires *weave.Expiration `protobuf:"bytes,2,opt,name=expires,proto3" json:"expires,omitempty"`
}

func (m *Approval) Reset()                     { *m = Approval{} }
func (m *Approval) String() string             { return proto.CompactTextString(m) }
func (*Approval) ProtoMessage()                {}
func (m *Approval) Marshal() ([]byte, error)   { return proto.Marshal((*approvalWire)(m)) }
func (m *Approval) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*approvalWire)(m)) }

type Token struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID        string          `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Owner     weave.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner,omitempty"`
	URI       string          `protobuf:"bytes,4,opt,name=uri,proto3" json:"uri,omitempty"`
	Extension []byte          `protobuf:"bytes,5,opt,name=extension,proto3" json:"extension,omitempty"`
	Approvals []*Approval     `protobuf:"bytes,6,rep,name=approvals,proto3" json:"approvals,omitempty"`
}

func (m *Token) Reset()                     { *m = Token{} }
func (m *Token) String() string             { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()                {}
func (m *Token) Marshal() ([]byte, error)   { return proto.Marshal((*tokenWire)(m)) }
func (m *Token) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*tokenWire)(m)) }

type Operator struct {
	Metadata *weave.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner    weave.Address     `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner,omitempty"`
	Operator weave.Address     `protobuf:"bytes,3,opt,name=operator,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"operator,omitempty"`
	Expires  *weave.Expiration `protobuf:"bytes,4,opt,name=expires,proto3" json:"expires,omitempty"`
}

func (m *Operator) Reset()                     { *m = Operator{} }
func (m *Operator) String() string             { return proto.CompactTextString(m) }
func (*Operator) ProtoMessage()                {}
func (m *Operator) Marshal() ([]byte, error)   { return proto.Marshal((*operatorWire)(m)) }
func (m *Operator) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*operatorWire)(m)) }

type Configuration struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Minter   weave.Address   `protobuf:"bytes,2,opt,name=minter,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"minter,omitempty"`
	Name     string          `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Symbol   string          `protobuf:"bytes,4,opt,name=symbol,proto3" json:"symbol,omitempty"`
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
	ID        string          `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Owner     weave.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner,omitempty"`
	URI       string          `protobuf:"bytes,4,opt,name=uri,proto3" json:"uri,omitempty"`
	Extension []byte          `protobuf:"bytes,5,opt,name=extension,proto3" json:"extension,omitempty"`
}

func (m *MintMsg) Reset()                     { *m = MintMsg{} }
func (m *MintMsg) String() string             { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()                {}
func (m *MintMsg) Marshal() ([]byte, error)   { return proto.Marshal((*mintMsgWire)(m)) }
func (m *MintMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*mintMsgWire)(m)) }

type TransferMsg struct {
	Metadata  *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID        string          `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Recipient weave.Address   `protobuf:"bytes,3,opt,name=recipient,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"recipient,omitempty"`
}

func (m *TransferMsg) Reset()                     { *m = TransferMsg{} }
func (m *TransferMsg) String() string             { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()                {}
func (m *TransferMsg) Marshal() ([]byte, error)   { return proto.Marshal((*transferMsgWire)(m)) }
func (m *TransferMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*transferMsgWire)(m)) }

type SendMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID       string          `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Contract weave.Address   `protobuf:"bytes,3,opt,name=contract,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"contract,omitempty"`
	Payload  []byte          `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *SendMsg) Reset()                     { *m = SendMsg{} }
func (m *SendMsg) String() string             { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()                {}
func (m *SendMsg) Marshal() ([]byte, error)   { return proto.Marshal((*sendMsgWire)(m)) }
func (m *SendMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*sendMsgWire)(m)) }

type ApproveMsg struct {
	Metadata *weave.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID       string            `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Spender  weave.Address     `protobuf:"bytes,3,opt,name=spender,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"spender,omitempty"`
	Expires  *weave.Expiration `protobuf:"bytes,4,opt,name=expires,proto3" json:"expires,omitempty"`
}

func (m *ApproveMsg) Reset()                     { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string             { return proto.CompactTextString(m) }
func (*ApproveMsg) ProtoMessage()                {}
func (m *ApproveMsg) Marshal() ([]byte, error)   { return proto.Marshal((*approveMsgWire)(m)) }
func (m *ApproveMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*approveMsgWire)(m)) }

type RevokeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID       string          `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Spender  weave.Address   `protobuf:"bytes,3,opt,name=spender,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"spender,omitempty"`
}

func (m *RevokeMsg) Reset()                     { *m = RevokeMsg{} }
func (m *RevokeMsg) String() string             { return proto.CompactTextString(m) }
func (*RevokeMsg) ProtoMessage()                {}
func (m *RevokeMsg) Marshal() ([]byte, error)   { return proto.Marshal((*revokeMsgWire)(m)) }
func (m *RevokeMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*revokeMsgWire)(m)) }

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

type BurnMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID       string          `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *BurnMsg) Reset()                     { *m = BurnMsg{} }
func (m *BurnMsg) String() string             { return proto.CompactTextString(m) }
func (*BurnMsg) ProtoMessage()                {}
func (m *BurnMsg) Marshal() ([]byte, error)   { return proto.Marshal((*burnMsgWire)(m)) }
func (m *BurnMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*burnMsgWire)(m)) }

type ReceiveMsg struct {
	Sender  weave.Address `protobuf:"bytes,1,opt,name=sender,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"sender,omitempty"`
	ID      string        `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Payload []byte        `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *ReceiveMsg) Reset()                     { *m = ReceiveMsg{} }
func (m *ReceiveMsg) String() string             { return proto.CompactTextString(m) }
func (*ReceiveMsg) ProtoMessage()                {}
func (m *ReceiveMsg) Marshal() ([]byte, error)   { return proto.Marshal((*receiveMsgWire)(m)) }
func (m *ReceiveMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*receiveMsgWire)(m)) }

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	approvalWire      Approval
	tokenWire         Token
	operatorWire      Operator
	configurationWire Configuration
	mintMsgWire       MintMsg
	transferMsgWire   TransferMsg
	sendMsgWire       SendMsg
	approveMsgWire    ApproveMsg
	revokeMsgWire     RevokeMsg
	approveAllMsgWire ApproveAllMsg
	revokeAllMsgWire  RevokeAllMsg
	burnMsgWire       BurnMsg
	receiveMsgWire    ReceiveMsg
)

func (m *approvalWire) Reset()         { *m = approvalWire{} }
func (m *approvalWire) String() string { return proto.CompactTextString(m) }
func (*approvalWire) ProtoMessage()    {}

func (m *tokenWire) Reset()         { *m = tokenWire{} }
func (m *tokenWire) String() string { return proto.CompactTextString(m) }
func (*tokenWire) ProtoMessage()    {}

func (m *operatorWire) Reset()         { *m = operatorWire{} }
func (m *operatorWire) String() string { return proto.CompactTextString(m) }
func (*operatorWire) ProtoMessage()    {}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *mintMsgWire) Reset()         { *m = mintMsgWire{} }
func (m *mintMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintMsgWire) ProtoMessage()    {}

func (m *transferMsgWire) Reset()         { *m = transferMsgWire{} }
func (m *transferMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferMsgWire) ProtoMessage()    {}

func (m *sendMsgWire) Reset()         { *m = sendMsgWire{} }
func (m *sendMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendMsgWire) ProtoMessage()    {}

func (m *approveMsgWire) Reset()         { *m = approveMsgWire{} }
func (m *approveMsgWire) String() string { return proto.CompactTextString(m) }
func (*approveMsgWire) ProtoMessage()    {}

func (m *revokeMsgWire) Reset()         { *m = revokeMsgWire{} }
func (m *revokeMsgWire) String() string { return proto.CompactTextString(m) }
func (*revokeMsgWire) ProtoMessage()    {}

func (m *approveAllMsgWire) Reset()         { *m = approveAllMsgWire{} }
func (m *approveAllMsgWire) String() string { return proto.CompactTextString(m) }
func (*approveAllMsgWire) ProtoMessage()    {}

func (m *revokeAllMsgWire) Reset()         { *m = revokeAllMsgWire{} }
func (m *revokeAllMsgWire) String() string { return proto.CompactTextString(m) }
func (*revokeAllMsgWire) ProtoMessage()    {}

func (m *burnMsgWire) Reset()         { *m = burnMsgWire{} }
func (m *burnMsgWire) String() string { return proto.CompactTextString(m) }
func (*burnMsgWire) ProtoMessage()    {}

func (m *receiveMsgWire) Reset()         { *m = receiveMsgWire{} }
func (m *receiveMsgWire) String() string { return proto.CompactTextString(m) }
func (*receiveMsgWire) ProtoMessage()    {}
