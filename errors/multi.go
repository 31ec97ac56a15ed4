package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil values are given, nil is returned.
// If only one non nil value is given, that value is returned.
// Multi errors are flattened so that the result is never nested.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr groups together a list of errors. Use Append to create an
// instance.
type multiErr []error

var _ unpacker = multiErr(nil)

func (m multiErr) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m), strings.Join(points, "\n\t"))
}

// Unpack returns all grouped errors.
func (m multiErr) Unpack() []error {
	return m
}

// ABCICode returns the code of the first error, consistent with a fail
// fast approach.
func (m multiErr) ABCICode() uint32 {
	if len(m) == 0 {
		return SuccessABCICode
	}
	return abciCode(m[0])
}
