package weave

import (
	"github.com/gogo/protobuf/proto"
)

type Metadata struct {
	Schema int32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()                     { *m = Metadata{} }
func (m *Metadata) String() string             { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()                {}
func (m *Metadata) Marshal() ([]byte, error)   { return proto.Marshal((*metadataWire)(m)) }
func (m *Metadata) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*metadataWire)(m)) }

type Expiration struct {
	AtHeight int64    `protobuf:"varint,1,opt,name=at_height,json=atHeight,proto3" json:"at_height,omitempty"`
	AtTime   UnixTime `protobuf:"varint,2,opt,name=at_time,json=atTime,proto3,casttype=UnixTime" json:"at_time,omitempty"`
}

func (m *Expiration) Reset()                     { *m = Expiration{} }
func (m *Expiration) String() string             { return proto.CompactTextString(m) }
func (*Expiration) ProtoMessage()                {}
func (m *Expiration) Marshal() ([]byte, error)   { return proto.Marshal((*expirationWire)(m)) }
func (m *Expiration) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*expirationWire)(m)) }

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	metadataWire   Metadata
	expirationWire Expiration
)

func (m *metadataWire) Reset()         { *m = metadataWire{} }
func (m *metadataWire) String() string { return proto.CompactTextString(m) }
func (*metadataWire) ProtoMessage()    {}

func (m *expirationWire) Reset()         { *m = expirationWire{} }
func (m *expirationWire) String() string { return proto.CompactTextString(m) }
func (*expirationWire) ProtoMessage()    {}
