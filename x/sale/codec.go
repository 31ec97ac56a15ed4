package sale

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/tokenweave"
)

type Configuration struct {
	Metadata     *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner        weave.Address   `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner,omitempty"`
	PaymentAsset string          `protobuf:"bytes,3,opt,name=payment_asset,proto3" json:"payment_asset,omitempty"`
	UnitPrice    string          `protobuf:"bytes,4,opt,name=unit_price,proto3" json:"unit_price,omitempty"`
	MaxTokens    int64           `protobuf:"varint,5,opt,name=max_tokens,proto3" json:"max_tokens,omitempty"`
	URI          string          `protobuf:"bytes,6,opt,name=uri,proto3" json:"uri,omitempty"`
	Extension    []byte          `protobuf:"bytes,7,opt,name=extension,proto3" json:"extension,omitempty"`
	NextTokenID  int64           `protobuf:"varint,8,opt,name=next_token_id,proto3" json:"next_token_id,omitempty"`
}

func (m *Configuration) Reset()                   { *m = Configuration{} }
func (m *Configuration) String() string           { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()              {}
func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationWire)(m)) }
func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(m))
}

type BuyMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Buyer    weave.Address   `protobuf:"bytes,2,opt,name=buyer,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"buyer,omitempty"`
	Quantity string          `protobuf:"bytes,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *BuyMsg) Reset()                     { *m = BuyMsg{} }
func (m *BuyMsg) String() string             { return proto.CompactTextString(m) }
func (*BuyMsg) ProtoMessage()                {}
func (m *BuyMsg) Marshal() ([]byte, error)   { return proto.Marshal((*buyMsgWire)(m)) }
func (m *BuyMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*buyMsgWire)(m)) }

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	configurationWire Configuration
	buyMsgWire        BuyMsg
)

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *buyMsgWire) Reset()         { *m = buyMsgWire{} }
func (m *buyMsgWire) String() string { return proto.CompactTextString(m) }
func (*buyMsgWire) ProtoMessage()    {}
