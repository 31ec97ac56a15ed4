package x

import (
	"github.com/iov-one/tokenweave/errors"
)

// Validater is implemented by any object that can check its own state.
type Validater interface {
	Validate() error
}

// ValidateAll runs validation of every non nil object and returns all found
// errors combined. Use it for messages carrying several independent parts.
func ValidateAll(objs ...Validater) error {
	var errs error
	for _, o := range objs {
		if o == nil {
			continue
		}
		errs = errors.Append(errs, o.Validate())
	}
	return errs
}
