package sigs

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/crypto"
)

type UserData struct {
	Metadata *weave.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *UserData) Reset()                     { *m = UserData{} }
func (m *UserData) String() string             { return proto.CompactTextString(m) }
func (*UserData) ProtoMessage()                {}
func (m *UserData) Marshal() ([]byte, error)   { return proto.Marshal((*userDataWire)(m)) }
func (m *UserData) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*userDataWire)(m)) }

type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *StdSignature) Reset()                   { *m = StdSignature{} }
func (m *StdSignature) String() string           { return proto.CompactTextString(m) }
func (*StdSignature) ProtoMessage()              {}
func (m *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignatureWire)(m)) }
func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignatureWire)(m))
}

func (m *StdSignature) GetSequence() int64 {
	if m == nil {
		return 0
	}
	return m.Sequence
}

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	userDataWire     UserData
	stdSignatureWire StdSignature
)

func (m *userDataWire) Reset()         { *m = userDataWire{} }
func (m *userDataWire) String() string { return proto.CompactTextString(m) }
func (*userDataWire) ProtoMessage()    {}

func (m *stdSignatureWire) Reset()         { *m = stdSignatureWire{} }
func (m *stdSignatureWire) String() string { return proto.CompactTextString(m) }
func (*stdSignatureWire) ProtoMessage()    {}
