package app

import (
	"github.com/gogo/protobuf/proto"
)

type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ResultSet) Reset()                     { *m = ResultSet{} }
func (m *ResultSet) String() string             { return proto.CompactTextString(m) }
func (*ResultSet) ProtoMessage()                {}
func (m *ResultSet) Marshal() ([]byte, error)   { return proto.Marshal((*resultSetWire)(m)) }
func (m *ResultSet) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*resultSetWire)(m)) }

// The wire types share the layout of the messages but have no Marshal or
// Unmarshal method, so gogo/protobuf encodes them from the struct tags.
type (
	resultSetWire ResultSet
)

func (m *resultSetWire) Reset()         { *m = resultSetWire{} }
func (m *resultSetWire) String() string { return proto.CompactTextString(m) }
func (*resultSetWire) ProtoMessage()    {}
