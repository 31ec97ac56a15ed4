package weave

import (
	"reflect"

	"github.com/iov-one/tokenweave/errors"
)

// Msg is a request for a state change, such as a transfer or a mint. It
// carries no authentication, the signatures are part of the Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler, for example
	// "multitoken/send". It matches [0-9A-Za-z_\-/]+.
	Path() string

	// Validate checks the message alone, without looking at the state.
	Validate() error
}

type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent can be serialized and restored. Unmarshal usually requires a
// pointer receiver, use Marshaller where only encoding is needed.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is a transaction as sent by a client. An application defines its own
// Tx type, implementing the interfaces its decorators need, for example
// sigs.SignedTx.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

const missingPath = "(missing)"

// GetPath returns the path of the message of tx. It never fails, so that
// it can be used for logging.
func GetPath(tx Tx) string {
	if tx == nil {
		return missingPath
	}
	switch msg, err := tx.GetMsg(); {
	case err != nil, isNilMsg(msg):
		return missingPath
	default:
		return msg.Path()
	}
}

// LoadMsg copies the validated message of tx into dest, which must be a
// non nil pointer to the concrete message type:
//
//	var msg multitoken.SendMsg
//	if err := weave.LoadMsg(tx, &msg); err != nil {
//		return err
//	}
func LoadMsg(tx Tx, dest interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "transaction message")
	}
	if isNilMsg(msg) {
		return errors.Wrap(errors.ErrState, "transaction without a message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dv := reflect.ValueOf(dest)
	switch {
	case dv.Kind() != reflect.Ptr:
		return errors.Wrapf(errors.ErrType, "destination %T is not a pointer", dest)
	case dv.IsNil():
		return errors.Wrapf(errors.ErrType, "destination %T is nil", dest)
	}
	mv := reflect.ValueOf(msg)
	if mv.Type() != dv.Type() {
		return errors.Wrapf(errors.ErrType, "message is %T, not %T", msg, dest)
	}
	dv.Elem().Set(mv.Elem())
	return nil
}

func isNilMsg(m Msg) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
