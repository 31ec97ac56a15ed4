package errors

import (
	"io"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantSize int
	}{
		"nothing":          {errs: nil, wantNil: true},
		"only nils":        {errs: []error{nil, nil, (*Error)(nil)}, wantNil: true},
		"single error":     {errs: []error{ErrNotFound}, wantSize: 1},
		"two errors":       {errs: []error{ErrNotFound, ErrState}, wantSize: 2},
		"nil is skipped":   {errs: []error{ErrNotFound, nil, ErrState}, wantSize: 2},
		"multi flattening": {errs: []error{Append(ErrNotFound, ErrState), ErrEmpty}, wantSize: 3},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %v", err)
				}
				return
			}
			if tc.wantSize == 1 {
				if _, ok := err.(multiErr); ok {
					t.Fatal("single error must not be grouped")
				}
				return
			}
			m, ok := err.(multiErr)
			if !ok {
				t.Fatalf("want a multi error, got %T", err)
			}
			if len(m) != tc.wantSize {
				t.Fatalf("want %d errors, got %d", tc.wantSize, len(m))
			}
		})
	}
}

func TestMultiErrIs(t *testing.T) {
	err := Append(Wrap(ErrEmpty, "name"), Wrap(ErrExpired, "expires"))
	if !ErrEmpty.Is(err) {
		t.Fatal("first error not found")
	}
	if !ErrExpired.Is(Wrap(err, "outer")) {
		t.Fatal("second error not found through a wrap")
	}
	if ErrNotFound.Is(err) {
		t.Fatal("unexpected match")
	}
}

func TestMultiErrABCICode(t *testing.T) {
	code, _ := ABCIInfo(Append(io.EOF, ErrNotFound), false)
	if code != internalABCICode {
		t.Fatalf("want internal code, got %d", code)
	}
	code, _ = ABCIInfo(Append(ErrUnauthorized, io.EOF), false)
	if code != ErrUnauthorized.code {
		t.Fatalf("want unauthorized code, got %d", code)
	}
}
