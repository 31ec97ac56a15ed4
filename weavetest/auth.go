package weavetest

import (
	"context"
	"fmt"

	weave "github.com/iov-one/tokenweave"
)

// Auth authenticates a fixed set of conditions, the way x.Authenticator
// does for signatures.
type Auth struct {
	// Signer, when set, is returned after all Signers.
	Signer weave.Condition
	// Signers are all authenticated.
	Signers []weave.Condition
}

func (a *Auth) GetConditions(weave.Context) []weave.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append(append([]weave.Condition{}, a.Signers...), a.Signer)
}

func (a *Auth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return anyHasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates conditions stored in the context with
// SetConditions. Instances using different keys do not see each other
// conditions.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context authenticating exactly the given
// conditions.
func (a *CtxAuth) SetConditions(ctx weave.Context, conds ...weave.Condition) weave.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx weave.Context) []weave.Condition {
	switch conds := ctx.Value(ctxAuthKey(a.Key)).(type) {
	case nil:
		return nil
	case []weave.Condition:
		return conds
	default:
		panic(fmt.Sprintf("want []weave.Condition in the context, got %T", conds))
	}
}

func (a *CtxAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return anyHasAddress(a.GetConditions(ctx), addr)
}

func anyHasAddress(conds []weave.Condition, addr weave.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
