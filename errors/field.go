package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field wraps err with the name of the message or model field it is about.
// A nil err gives nil. The description is formatted with args when any are
// given.
//
// Field names follow Go naming (Owner, AssetID). Nested fields are joined
// with dots and list elements are addressed by index, as built by FieldPath:
// Items.2.Quantity.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	// A stack trace is attached once, at the innermost wrap.
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: fieldName, desc: description}
}

// AppendField adds a field error for fieldErrOrNil to errorsOrNil. Both can
// be nil.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

// FieldPath joins field names and list indexes into a dotted path.
//
//	FieldPath("Items", 2, "Quantity") == "Items.2.Quantity"
func FieldPath(parts ...interface{}) string {
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = fmt.Sprint(p)
	}
	return strings.Join(names, ".")
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field returns the name of the field the error was created for.
func (err *fieldError) Field() string {
	return err.field
}

type fielder interface {
	Field() string
}

// FieldErrors walks the error tree and returns every error created for the
// given field name. The search does not descend into a matching field
// error.
func FieldErrors(err error, fieldName string) []error {
	var res []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(res, err)
		}
		switch e := err.(type) {
		case unpacker:
			// Unpack returns all children, the causer path would only
			// repeat one of them.
			for _, child := range e.Unpack() {
				res = append(res, FieldErrors(child, fieldName)...)
			}
			return res
		case causer:
			err = e.Cause()
		default:
			return res
		}
	}
	return res
}
