package weavetest

import weave "github.com/iov-one/tokenweave"

// Tx is a transaction carrying a single message.
type Tx struct {
	Msg weave.Msg
	// Err, when set, is returned by GetMsg instead of the message.
	Err error
}

var _ weave.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weave.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Marshal returns the serialized message.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, nil
	}
	return tx.Msg.Marshal()
}

// Unmarshal is not supported, a Tx is always built in code.
func (tx *Tx) Unmarshal([]byte) error {
	panic("weavetest.Tx cannot be unmarshaled")
}

// Msg is a message routed by RoutePath. Its serialized form is kept as is.
type Msg struct {
	RoutePath  string
	Serialized []byte
	// Err, when set, is returned by Validate, Marshal and Unmarshal.
	Err error
}

var _ weave.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
