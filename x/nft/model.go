package nft

import (
	"regexp"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/orm"
)

const (
	// TokenBucketName is where all tokens are stored, under their ID.
	TokenBucketName = "nft"
	// OperatorBucketName is where operator approvals are stored.
	OperatorBucketName = "nftoperator"
)

var isTokenID = regexp.MustCompile(`^[a-zA-Z0-9_.:\-]{1,128}$`).MatchString

func validateID(id string) error {
	if id == "" {
		return errors.Wrap(errors.ErrEmpty, "id")
	}
	if !isTokenID(id) {
		return errors.Wrapf(errors.ErrInput, "id %q", id)
	}
	return nil
}

func (m *Approval) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	errs = errors.AppendField(errs, "Expires", m.Expires.Validate())
	return errs
}

var _ orm.Model = (*Token)(nil)

func (m *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	for i, a := range m.Approvals {
		if a == nil {
			errs = errors.AppendField(errs, "Approvals", errors.ErrEmpty)
			continue
		}
		if err := a.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field("Approvals", err, "approval %d", i))
		}
	}
	return errs
}

// approvalOf returns the index of the approval of given spender or -1.
func (m *Token) approvalOf(spender weave.Address) int {
	for i, a := range m.Approvals {
		if a.Spender.Equals(spender) {
			return i
		}
	}
	return -1
}

// IsSpender returns true if given address holds an approval of this token
// that is not expired for the block described by the context.
func (m *Token) IsSpender(ctx weave.Context, addr weave.Address) bool {
	i := m.approvalOf(addr)
	return i >= 0 && !m.Approvals[i].Expires.IsExpired(ctx)
}

// Approve adds an approval of the spender, replacing the previous one.
func (m *Token) Approve(spender weave.Address, expires *weave.Expiration) {
	m.Revoke(spender)
	m.Approvals = append(m.Approvals, &Approval{Spender: spender, Expires: expires})
}

// Revoke removes the approval of the spender, if any.
func (m *Token) Revoke(spender weave.Address) {
	if i := m.approvalOf(spender); i >= 0 {
		m.Approvals = append(m.Approvals[:i], m.Approvals[i+1:]...)
	}
}

// ActiveApprovals returns the approvals that are not expired for the block
// described by the context.
func (m *Token) ActiveApprovals(ctx weave.Context) []*Approval {
	var res []*Approval
	for _, a := range m.Approvals {
		if !a.Expires.IsExpired(ctx) {
			res = append(res, a)
		}
	}
	return res
}

// ChangeOwner assigns the token to a new owner and clears all approvals.
func (m *Token) ChangeOwner(owner weave.Address) {
	m.Owner = owner
	m.Approvals = nil
}

var _ orm.Model = (*Operator)(nil)

func (m *Operator) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Operator", m.Operator.Validate())
	errs = errors.AppendField(errs, "Expires", m.Expires.Validate())
	return errs
}

// TokenBucket stores tokens under their ID, indexed by the owner.
type TokenBucket struct {
	orm.ModelBucket
}

func NewTokenBucket() TokenBucket {
	return TokenBucket{
		ModelBucket: orm.NewModelBucket(TokenBucketName, &Token{},
			orm.WithIndex("owner", tokenOwnerIndex)),
	}
}

func tokenOwnerIndex(obj orm.Model) ([]byte, error) {
	t, ok := obj.(*Token)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj)
	}
	return t.Owner, nil
}

// Get returns the token of given ID or ErrNotFound.
func (b TokenBucket) Get(db weave.ReadOnlyKVStore, id string) (*Token, error) {
	var t Token
	if err := b.One(db, []byte(id), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Save stores the token under its ID.
func (b TokenBucket) Save(db weave.KVStore, t *Token) error {
	return b.Put(db, []byte(t.ID), t)
}

// Create stores a new token. ErrDuplicate is returned if the ID is taken.
func (b TokenBucket) Create(db weave.KVStore, id string, owner weave.Address, uri string, extension []byte) (*Token, error) {
	switch ok, err := b.Has(db, []byte(id)); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrapf(errors.ErrDuplicate, "token %q", id)
	}
	t := &Token{
		Metadata:  &weave.Metadata{Schema: 1},
		ID:        id,
		Owner:     owner,
		URI:       uri,
		Extension: extension,
	}
	if err := b.Save(db, t); err != nil {
		return nil, err
	}
	return t, nil
}

// OperatorBucket stores operator approvals under owner | operator.
type OperatorBucket struct {
	orm.ModelBucket
}

func NewOperatorBucket() OperatorBucket {
	return OperatorBucket{
		ModelBucket: orm.NewModelBucket(OperatorBucketName, &Operator{}),
	}
}

func operatorKey(owner, operator weave.Address) []byte {
	key := make([]byte, 0, len(owner)+len(operator))
	key = append(key, owner...)
	return append(key, operator...)
}

// Approve stores an operator approval, replacing any previous one.
func (b OperatorBucket) Approve(db weave.KVStore, owner, operator weave.Address, expires *weave.Expiration) error {
	op := &Operator{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Operator: operator,
		Expires:  expires,
	}
	return b.Put(db, operatorKey(owner, operator), op)
}

// Revoke deletes an operator approval. Revoking a missing approval is not an
// error.
func (b OperatorBucket) Revoke(db weave.KVStore, owner, operator weave.Address) error {
	err := b.Delete(db, operatorKey(owner, operator))
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}

// IsOperator returns true if the operator holds an approval of the owner
// that is not expired for the block described by the context.
func (b OperatorBucket) IsOperator(ctx weave.Context, db weave.ReadOnlyKVStore, owner, operator weave.Address) (bool, error) {
	var op Operator
	switch err := b.One(db, operatorKey(owner, operator), &op); {
	case err == nil:
		return !op.Expires.IsExpired(ctx), nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}
