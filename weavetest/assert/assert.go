/*
Package assert provides the small set of assertions used by the unit tests
of this module. Every assertion stops the test on failure.
*/
package assert

import (
	"reflect"

	"github.com/iov-one/tokenweave/errors"
)

// Tester is the part of testing.TB the assertions need.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if value is not nil. Typed nil pointers, slices, maps,
// channels and functions count as nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of errors that carry one.
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails the test if want and got are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	if wb, ok := want.([]byte); ok {
		if gb, ok := got.([]byte); ok {
			t.Fatalf("bytes not equal\nwant %q\n got %q", wb, gb)
		}
	}
	t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
}

// Panics fails the test if fn returns without panicking.
func Panics(t Tester, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatal("panic expected")
	}
}

func panics(fn func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	fn()
	return false
}

// IsErr fails the test unless got is want or is wrapping it. Two nil errors
// match.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if w, ok := want.(interface{ Is(error) bool }); ok && w.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError fails the test unless err contains exactly one error for the
// given field and that error is of the wanted kind. With want set to nil it
// checks that no error for that field exists.
func FieldError(t Tester, err error, fieldName string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, fieldName)

	if want == nil {
		if len(errs) != 0 {
			t.Fatalf("want no %q field error, got %d: %q", fieldName, len(errs), errs)
		}
		return
	}

	switch len(errs) {
	case 0:
		t.Fatalf("no %q field error found in %+v", fieldName, err)
	case 1:
		if !want.Is(errs[0]) {
			t.Fatalf("want %q field error to be %q, got %q", fieldName, want, errs[0])
		}
	default:
		t.Fatalf("want one %q field error, got %d: %q", fieldName, len(errs), errs)
	}
}
