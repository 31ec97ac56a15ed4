package errors

import "fmt"

const (
	// SuccessABCICode is the ABCI response code of a successful call.
	SuccessABCICode = 0

	// Errors that do not carry an ABCI code are internal. They are all
	// reported under code 1 and, outside of debug mode, with a generic
	// message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response describing err.
//
// An error carrying an ABCI code, directly or through its causes, keeps its
// code and message. Any other error is internal: it gets code 1 and its
// message is hidden unless debug is set. In debug mode the log is formatted
// with %+v and so includes stack traces where available.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the cause chain that
// provides one.
func abciCode(err error) uint32 {
	for !isNilErr(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}
