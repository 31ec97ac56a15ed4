package multitoken

import (
	"regexp"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/orm"
)

const (
	// BalanceBucketName is where all (owner, asset) balances are stored.
	BalanceBucketName = "mtbalance"
	// ApprovalBucketName is where all operator approvals are stored.
	ApprovalBucketName = "mtapproval"
	// TokenBucketName is where asset records are stored.
	TokenBucketName = "mttoken"
	// SupplyBucketName is where per asset total supply is stored.
	SupplyBucketName = "mtsupply"
)

var isAssetID = regexp.MustCompile(`^[a-zA-Z0-9_.:\-/]{1,64}$`).MatchString

func validateAssetID(id string) error {
	if id == "" {
		return errors.Wrap(errors.ErrEmpty, "asset id")
	}
	if !isAssetID(id) {
		return errors.Wrapf(errors.ErrCurrency, "asset id %q", id)
	}
	return nil
}

// NewTokenAmount returns a quantity of given asset.
func NewTokenAmount(assetID string, q amount.Amount) *TokenAmount {
	return &TokenAmount{AssetID: assetID, Quantity: q.String()}
}

// Amount returns the parsed quantity.
func (m *TokenAmount) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}

func (m *TokenAmount) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	if _, err := m.Amount(); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

func validateItems(items []*TokenAmount) error {
	if len(items) == 0 {
		return errors.Wrap(errors.ErrEmpty, "items")
	}
	var errs error
	for i, it := range items {
		if it == nil {
			errs = errors.Append(errs, errors.Field(itemField(i), errors.ErrEmpty, "missing item"))
			continue
		}
		if err := it.Validate(); err != nil {
			errs = errors.Append(errs, errors.Field(itemField(i), err, "invalid item"))
		}
	}
	return errs
}

func itemField(i int) string {
	return errors.FieldPath("Items", i)
}

var _ orm.Model = (*Balance)(nil)

func (m *Balance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	if _, err := m.Amount(); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

// Amount returns the parsed balance quantity.
func (m *Balance) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}

var _ orm.Model = (*Approval)(nil)

func (m *Approval) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Operator", m.Operator.Validate())
	errs = errors.AppendField(errs, "Expires", m.Expires.Validate())
	return errs
}

var _ orm.Model = (*Token)(nil)

func (m *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	return errs
}

var _ orm.Model = (*Supply)(nil)

func (m *Supply) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	if _, err := m.Amount(); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

// Amount returns the parsed supply quantity.
func (m *Supply) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}

// pairKey builds a primary key of a fixed size address followed by a second
// component. Prefix scans over the address are possible.
func pairKey(addr weave.Address, rest []byte) []byte {
	out := make([]byte, 0, len(addr)+len(rest))
	out = append(out, addr...)
	return append(out, rest...)
}

// BalanceBucket stores owner balances under owner | asset id.
type BalanceBucket struct {
	orm.ModelBucket
}

// NewBalanceBucket returns a bucket with an index of all holders of an asset.
func NewBalanceBucket() BalanceBucket {
	return BalanceBucket{
		ModelBucket: orm.NewModelBucket(BalanceBucketName, &Balance{},
			orm.WithIndex("asset", balanceAssetIndex)),
	}
}

func balanceAssetIndex(obj orm.Model) ([]byte, error) {
	b, ok := obj.(*Balance)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj)
	}
	return []byte(b.AssetID), nil
}

// Get returns the balance record. ErrNotFound is returned if the owner never
// held given asset.
func (b BalanceBucket) Get(db weave.ReadOnlyKVStore, owner weave.Address, assetID string) (*Balance, error) {
	var bal Balance
	if err := b.One(db, pairKey(owner, []byte(assetID)), &bal); err != nil {
		return nil, err
	}
	return &bal, nil
}

// Quantity returns the held amount, zero if no record exists.
func (b BalanceBucket) Quantity(db weave.ReadOnlyKVStore, owner weave.Address, assetID string) (amount.Amount, error) {
	switch bal, err := b.Get(db, owner, assetID); {
	case err == nil:
		return bal.Amount()
	case errors.ErrNotFound.Is(err):
		return amount.Zero, nil
	default:
		return amount.Zero, err
	}
}

// Set writes the quantity held, creating the record when missing.
func (b BalanceBucket) Set(db weave.KVStore, owner weave.Address, assetID string, q amount.Amount) error {
	bal := &Balance{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		AssetID:  assetID,
		Quantity: q.String(),
	}
	return b.Put(db, pairKey(owner, []byte(assetID)), bal)
}

// ApprovalBucket stores operator approvals under owner | operator.
type ApprovalBucket struct {
	orm.ModelBucket
}

func NewApprovalBucket() ApprovalBucket {
	return ApprovalBucket{
		ModelBucket: orm.NewModelBucket(ApprovalBucketName, &Approval{}),
	}
}

// Get returns the approval given by the owner to the operator, expired or
// not. ErrNotFound is returned if none exists.
func (b ApprovalBucket) Get(db weave.ReadOnlyKVStore, owner, operator weave.Address) (*Approval, error) {
	var a Approval
	if err := b.One(db, pairKey(owner, operator), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Approve stores an approval, replacing any previous one.
func (b ApprovalBucket) Approve(db weave.KVStore, owner, operator weave.Address, expires *weave.Expiration) (*Approval, error) {
	a := &Approval{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Operator: operator,
		Expires:  expires,
	}
	if err := b.Put(db, pairKey(owner, operator), a); err != nil {
		return nil, err
	}
	return a, nil
}

// Revoke deletes an approval. Revoking a missing approval is not an error.
func (b ApprovalBucket) Revoke(db weave.KVStore, owner, operator weave.Address) error {
	err := b.Delete(db, pairKey(owner, operator))
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}

// IsApproved returns true if the operator holds an approval of the owner that
// is not expired for the block described by the context.
func (b ApprovalBucket) IsApproved(ctx weave.Context, db weave.ReadOnlyKVStore, owner, operator weave.Address) (bool, error) {
	switch a, err := b.Get(db, owner, operator); {
	case err == nil:
		return !a.Expires.IsExpired(ctx), nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// TokenBucket stores asset records under the asset id.
type TokenBucket struct {
	orm.ModelBucket
}

func NewTokenBucket() TokenBucket {
	return TokenBucket{
		ModelBucket: orm.NewModelBucket(TokenBucketName, &Token{}),
	}
}

// Get returns the asset record or ErrNotFound.
func (b TokenBucket) Get(db weave.ReadOnlyKVStore, assetID string) (*Token, error) {
	var t Token
	if err := b.One(db, []byte(assetID), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create stores the asset record unless one exists already. The first writer
// wins and later calls are ignored.
func (b TokenBucket) Create(db weave.KVStore, assetID, uri string, extension []byte) error {
	switch ok, err := b.Has(db, []byte(assetID)); {
	case err != nil:
		return err
	case ok:
		return nil
	}
	t := &Token{
		Metadata:  &weave.Metadata{Schema: 1},
		AssetID:   assetID,
		URI:       uri,
		Extension: extension,
	}
	return b.Put(db, []byte(assetID), t)
}

// SupplyBucket stores the total supply of each asset under the asset id.
type SupplyBucket struct {
	orm.ModelBucket
}

func NewSupplyBucket() SupplyBucket {
	return SupplyBucket{
		ModelBucket: orm.NewModelBucket(SupplyBucketName, &Supply{}),
	}
}

// Quantity returns the total supply of an asset, zero if never minted.
func (b SupplyBucket) Quantity(db weave.ReadOnlyKVStore, assetID string) (amount.Amount, error) {
	var s Supply
	switch err := b.One(db, []byte(assetID), &s); {
	case err == nil:
		return s.Amount()
	case errors.ErrNotFound.Is(err):
		return amount.Zero, nil
	default:
		return amount.Zero, err
	}
}

// Set writes the total supply of an asset.
func (b SupplyBucket) Set(db weave.KVStore, assetID string, q amount.Amount) error {
	s := &Supply{
		Metadata: &weave.Metadata{Schema: 1},
		AssetID:  assetID,
		Quantity: q.String(),
	}
	return b.Put(db, []byte(assetID), s)
}
