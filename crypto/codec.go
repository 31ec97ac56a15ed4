package crypto

import (
	"github.com/gogo/protobuf/proto"
)

type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *PublicKey) Reset()                     { *m = PublicKey{} }
func (m *PublicKey) String() string             { return proto.CompactTextString(m) }
func (*PublicKey) ProtoMessage()                {}
func (m *PublicKey) Marshal() ([]byte, error)   { return proto.Marshal((*publicKeyWire)(m)) }
func (m *PublicKey) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*publicKeyWire)(m)) }

func (m *PublicKey) GetEd25519() []byte {
	if m == nil {
		return nil
	}
	return m.Ed25519
}

type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *PrivateKey) Reset()                     { *m = PrivateKey{} }
func (m *PrivateKey) String() string             { return proto.CompactTextString(m) }
func (*PrivateKey) ProtoMessage()                {}
func (m *PrivateKey) Marshal() ([]byte, error)   { return proto.Marshal((*privateKeyWire)(m)) }
func (m *PrivateKey) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*privateKeyWire)(m)) }

func (m *PrivateKey) GetEd25519() []byte {
	if m == nil {
		return nil
	}
	return m.Ed25519
}

type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *Signature) Reset()                     { *m = Signature{} }
func (m *Signature) String() string             { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()                {}
func (m *Signature) Marshal() ([]byte, error)   { return proto.Marshal((*signatureWire)(m)) }
func (m *Signature) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*signatureWire)(m)) }

func (m *Signature) GetEd25519() []byte {
	if m == nil {
		return nil
	}
	return m.Ed25519
}

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	publicKeyWire  PublicKey
	privateKeyWire PrivateKey
	signatureWire  Signature
)

func (m *publicKeyWire) Reset()         { *m = publicKeyWire{} }
func (m *publicKeyWire) String() string { return proto.CompactTextString(m) }
func (*publicKeyWire) ProtoMessage()    {}

func (m *privateKeyWire) Reset()         { *m = privateKeyWire{} }
func (m *privateKeyWire) String() string { return proto.CompactTextString(m) }
func (*privateKeyWire) ProtoMessage()    {}

func (m *signatureWire) Reset()         { *m = signatureWire{} }
func (m *signatureWire) String() string { return proto.CompactTextString(m) }
func (*signatureWire) ProtoMessage()    {}
