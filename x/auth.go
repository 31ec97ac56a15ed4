package x

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// Authenticator tells a handler who authorized the current transaction.
// Handlers receive it in their constructor, so that tests can replace
// signature checking with a fixed set of conditions.
type Authenticator interface {
	// GetConditions returns every condition satisfied by the
	// transaction, the main signer first.
	GetConditions(weave.Context) []weave.Condition
	HasAddress(weave.Context, weave.Address) bool
}

// ChainAuth combines authenticators. A condition granted by any of them is
// granted.
func ChainAuth(auths ...Authenticator) Authenticator {
	return multiAuth(auths)
}

type multiAuth []Authenticator

// GetConditions returns the conditions of all authenticators in order,
// without duplicates.
func (m multiAuth) GetConditions(ctx weave.Context) []weave.Condition {
	var conds []weave.Condition
	for _, a := range m {
	nextCondition:
		for _, c := range a.GetConditions(ctx) {
			for _, seen := range conds {
				if seen.Equals(c) {
					continue nextCondition
				}
			}
			conds = append(conds, c)
		}
	}
	return conds
}

func (m multiAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// AnySigner returns the address of the main signer, the one acting as
// sender or caller of a message. A transaction without any signer is
// ErrUnauthorized.
func AnySigner(ctx weave.Context, auth Authenticator) (weave.Address, error) {
	conds := auth.GetConditions(ctx)
	if len(conds) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return conds[0].Address(), nil
}
