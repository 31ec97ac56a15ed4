package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWrapKeepsRootCause(t *testing.T) {
	io := stdlib.New("disk failure")
	cases := map[string]struct {
		err  error
		root error
	}{
		"root error":         {err: ErrNotFound, root: ErrNotFound},
		"single wrap":        {err: Wrap(ErrInsufficientAmount, "alice/gold"), root: ErrInsufficientAmount},
		"nested wraps":       {err: Wrap(Wrapf(ErrExpired, "approval of %s", "bob"), "transfer"), root: ErrExpired},
		"foreign root error": {err: Wrap(io, "read balance"), root: io},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatalf("want %v root, got %v", tc.root, got)
			}
		})
	}
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("wrapped nil: %v", err)
	}
}

func TestErrorIs(t *testing.T) {
	var typedNil *fieldError

	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"same error":               {kind: ErrNotFound, err: ErrNotFound, want: true},
		"other error":              {kind: ErrNotFound, err: ErrDuplicate},
		"wrapped":                  {kind: ErrNotFound, err: Wrap(ErrNotFound, "token 7"), want: true},
		"wrapped by pkg/errors":    {kind: ErrAmount, err: errors.Wrap(ErrAmount, "zero"), want: true},
		"wrapped other error":      {kind: ErrNotFound, err: Wrap(ErrOverflow, "supply")},
		"stdlib error":             {kind: ErrInput, err: fmt.Errorf("bad input")},
		"nil kind with nil":        {kind: nil, err: nil, want: true},
		"nil kind with typed nil":  {kind: nil, err: typedNil, want: true},
		"nil kind with error":      {kind: nil, err: ErrInput},
		"kind with nil":            {kind: ErrInput, err: nil},
		"group member":             {kind: ErrEmpty, err: Append(ErrCurrency, ErrEmpty), want: true},
		"wrapped group member":     {kind: ErrEmpty, err: Wrap(Append(ErrCurrency, Wrap(ErrEmpty, "uri")), "mint"), want: true},
		"group without the member": {kind: ErrEmpty, err: Append(ErrCurrency, ErrAmount)},
		"nil kind with group":      {kind: nil, err: Append(ErrCurrency, ErrAmount)},
		"field error":              {kind: ErrAmount, err: Field("Items.0.Amount", ErrAmount, "negative"), want: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRegisterRejectsUsedCode(t *testing.T) {
	for _, code := range []uint32{1, ErrNotFound.ABCICode()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("code %d registered twice", code)
				}
			}()
			Register(code, "second")
		}()
	}
}

func TestRecover(t *testing.T) {
	burn := func() (err error) {
		defer Recover(&err)
		var balances map[string]int
		balances["alice"] = 0
		return nil
	}
	err := burn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	if !strings.Contains(err.Error(), "nil map") {
		t.Fatalf("panic value lost: %s", err)
	}
}

func TestWrapFormat(t *testing.T) {
	err := Wrap(ErrNotFound, "balance")
	if got := fmt.Sprintf("%s", err); got != "balance: not found" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := fmt.Sprintf("%v", err); !strings.HasPrefix(got, "balance: not found [") {
		t.Fatalf("missing source location: %q", got)
	}
	if got := WithType(ErrModel, &Error{}).Error(); got != "*errors.Error: invalid model" {
		t.Fatalf("unexpected message: %q", got)
	}
}
