package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/tokenweave/errors"
)

// recorder counts failures instead of stopping the test.
type recorder struct {
	failures int
}

func (*recorder) Helper() {}

func (r *recorder) Fatal(...interface{}) { r.failures++ }

func (r *recorder) Fatalf(string, ...interface{}) { r.failures++ }

func fails(fn func(t Tester)) bool {
	var r recorder
	fn(&r)
	return r.failures > 0
}

func TestNil(t *testing.T) {
	var nilPtr *errors.Error
	var nilSlice []byte

	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"untyped nil":   {value: nil},
		"nil pointer":   {value: nilPtr},
		"nil slice":     {value: nilSlice},
		"empty slice":   {value: []byte{}, wantFail: true},
		"error":         {value: errors.ErrEmpty, wantFail: true},
		"integer":       {value: 0, wantFail: true},
		"empty struct":  {value: struct{}{}, wantFail: true},
		"wrapped error": {value: errors.Wrap(errors.ErrEmpty, "x"), wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			failed := fails(func(r Tester) { Nil(r, tc.value) })
			if failed != tc.wantFail {
				t.Fatalf("want fail %v, got %v", tc.wantFail, failed)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if fails(func(r Tester) { Equal(r, []byte("gold"), []byte("gold")) }) {
		t.Fatal("equal bytes must match")
	}
	if !fails(func(r Tester) { Equal(r, []byte("gold"), []byte("silver")) }) {
		t.Fatal("different bytes must not match")
	}
	if !fails(func(r Tester) { Equal(r, int64(1), 1) }) {
		t.Fatal("different types must not match")
	}
}

func TestPanics(t *testing.T) {
	if fails(func(r Tester) { Panics(r, func() { panic("boom") }) }) {
		t.Fatal("panic not detected")
	}
	if !fails(func(r Tester) { Panics(r, func() {}) }) {
		t.Fatal("missing panic not reported")
	}
}

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"same error":      {want: errors.ErrEmpty, got: errors.ErrEmpty},
		"both nil":        {},
		"wrapped":         {want: errors.ErrEmpty, got: errors.Wrap(errors.ErrEmpty, "test")},
		"compared to nil": {want: nil, got: errors.ErrEmpty, wantFail: true},
		"nil result":      {want: errors.ErrEmpty, got: nil, wantFail: true},
		"other error":     {want: errors.ErrEmpty, got: errors.ErrNotFound, wantFail: true},
		"foreign error":   {want: errors.ErrEmpty, got: fmt.Errorf("empty"), wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			failed := fails(func(r Tester) { IsErr(r, tc.want, tc.got) })
			if failed != tc.wantFail {
				t.Fatalf("want fail %v, got %v", tc.wantFail, failed)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	multi := errors.Append(
		errors.Field("Owner", errors.ErrEmpty, "missing"),
		errors.Field("Quantity", errors.ErrAmount, "negative"),
		errors.Field("Quantity", errors.ErrOverflow, "too big"),
	)

	cases := map[string]struct {
		err      error
		field    string
		want     *errors.Error
		wantFail bool
	}{
		"single match":       {err: multi, field: "Owner", want: errors.ErrEmpty},
		"wrong kind":         {err: multi, field: "Owner", want: errors.ErrInput, wantFail: true},
		"no error expected":  {err: multi, field: "AssetID"},
		"unexpected error":   {err: multi, field: "Owner", wantFail: true},
		"missing field":      {err: multi, field: "AssetID", want: errors.ErrEmpty, wantFail: true},
		"duplicated field":   {err: multi, field: "Quantity", want: errors.ErrAmount, wantFail: true},
		"nil error":          {err: nil, field: "Owner"},
		"nil error required": {err: nil, field: "Owner", want: errors.ErrEmpty, wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			failed := fails(func(r Tester) { FieldError(r, tc.err, tc.field, tc.want) })
			if failed != tc.wantFail {
				t.Fatalf("want fail %v, got %v", tc.wantFail, failed)
			}
		})
	}
}
