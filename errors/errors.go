package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors. Code 1 is reserved for errors that do not belong to this
// registry, see ABCIInfo.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	// ErrModel means an entity failed validation and cannot be persisted.
	ErrModel     = Register(5, "invalid model")
	ErrDuplicate = Register(6, "duplicate")
	// ErrHuman marks code paths that a correct program never reaches.
	ErrHuman     = Register(7, "coding error")
	ErrImmutable = Register(8, "cannot be modified")
	ErrEmpty     = Register(9, "value is empty")
	// ErrState means the stored state contradicts itself, for example a
	// supply that does not match the balances.
	ErrState = Register(10, "invalid state")
	ErrType  = Register(11, "invalid type")
	// ErrInsufficientAmount is returned when a balance or an allowance
	// does not cover the requested quantity.
	ErrInsufficientAmount = Register(12, "insufficient amount")
	ErrAmount             = Register(13, "invalid amount")
	ErrInput              = Register(14, "invalid input")
	// ErrExpired is returned for approvals past their expiration.
	ErrExpired  = Register(15, "expired")
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")
	// ErrCurrency means a malformed asset identifier.
	ErrCurrency     = Register(17, "invalid asset")
	ErrDatabase     = Register(18, "database error")
	ErrMetadata     = Register(21, "invalid metadata")
	ErrIteratorDone = Register(22, "iterator done")
	// ErrPanic is the result of a recovered panic. Its details are never
	// returned to a client.
	ErrPanic = Register(111222, "panic")
)

var registry = map[uint32]*Error{
	1: nil,
}

// Register declares a root error with a unique code. Call it only while
// initializing a package, a code used twice panics.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		var name string
		if prev != nil {
			name = prev.desc
		}
		panic(fmt.Sprintf("error code %d already registered as %q", code, name))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a root error. Every error returned by a handler should wrap
// one, so that its ABCI code tells the client what went wrong.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

func (e Error) ABCICode() uint32 {
	return e.code
}

// Is returns true if err is e or wraps e. Groups created with Append match
// when any of their members does. A nil root error matches only nil
// errors, including typed nils.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	pending := []error{err}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if cur == error(e) {
			return true
		}
		switch cur := cur.(type) {
		case unpacker:
			pending = append(pending, cur.Unpack()...)
		case causer:
			pending = append(pending, cur.Cause())
		}
	}
	return false
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Wrap adds description to err. The first wrap records a stack trace.
// Wrapping nil returns nil, so
//
//	return errors.Wrap(db.Set(key, value), "save balance")
//
// is safe.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover turns a panic into an ErrPanic assigned to err. It must be
// deferred directly.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType wraps err with the type name of obj.
func WithType(err error, obj interface{}) error {
	return Wrapf(err, "%T", obj)
}

type causer interface {
	Cause() error
}

// unpacker is implemented by error groups.
type unpacker interface {
	Unpack() []error
}
