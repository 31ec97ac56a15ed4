package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/x"
)

// RegisterQuery registers the ledger buckets under /multitoken.
func RegisterQuery(qr weave.QueryRouter) {
	NewBalanceBucket().Register("multitoken/balances", qr)
	NewApprovalBucket().Register("multitoken/approvals", qr)
	NewTokenBucket().Register("multitoken/tokens", qr)
	NewSupplyBucket().Register("multitoken/supplies", qr)
}

// RegisterRoutes registers handlers for all ledger messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r.Handle(&MintMsg{}, NewMintHandler(auth))
	r.Handle(&SendFromMsg{}, NewSendFromHandler(auth))
	r.Handle(&BatchSendFromMsg{}, NewBatchSendFromHandler(auth))
	r.Handle(&BurnMsg{}, NewBurnHandler(auth))
	r.Handle(&BatchBurnMsg{}, NewBatchBurnHandler(auth))
	r.Handle(&ApproveAllMsg{}, NewApproveAllHandler(auth))
	r.Handle(&RevokeAllMsg{}, NewRevokeAllHandler(auth))
}

// caller returns the identity acting on behalf of the owner. When the owner
// signed the transaction it is the owner, otherwise the main signer.
func caller(ctx weave.Context, auth x.Authenticator, owner weave.Address) (weave.Address, error) {
	if len(owner) != 0 && auth.HasAddress(ctx, owner) {
		return owner, nil
	}
	return x.AnySigner(ctx, auth)
}

// receiveNotification returns the serialized receiver notification, or nil
// when no payload was attached.
func receiveNotification(operator, from weave.Address, items []*TokenAmount, payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	msg := ReceiveMsg{
		Operator: operator,
		From:     from,
		Items:    items,
		Payload:  payload,
	}
	raw, err := msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "receive notification")
	}
	return raw, nil
}

// MintHandler creates new tokens. Only the configured minter is allowed to
// mint.
type MintHandler struct {
	auth   x.Authenticator
	engine Engine
	tokens TokenBucket
}

var _ weave.Handler = MintHandler{}

func NewMintHandler(auth x.Authenticator) MintHandler {
	return MintHandler{
		auth:   auth,
		engine: NewEngine(),
		tokens: NewTokenBucket(),
	}
}

func (h MintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h MintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.tokens.Create(db, msg.AssetID, msg.URI, msg.Extension); err != nil {
		return nil, errors.Wrap(err, "token")
	}
	event, err := h.engine.Apply(db, Mint{To: msg.To}, []*TokenAmount{
		{AssetID: msg.AssetID, Quantity: msg.Quantity},
	})
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: event.Tags()}, nil
}

func (h MintHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Minter) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "only %s can mint", conf.Minter)
	}
	return &msg, nil
}

// SendFromHandler moves a single asset between owners.
type SendFromHandler struct {
	auth       x.Authenticator
	authorizer Authorizer
	engine     Engine
}

var _ weave.Handler = SendFromHandler{}

func NewSendFromHandler(auth x.Authenticator) SendFromHandler {
	return SendFromHandler{
		auth:       auth,
		authorizer: NewAuthorizer(),
		engine:     NewEngine(),
	}
}

func (h SendFromHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h SendFromHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, operator, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	requested, err := msg.Amount()
	if err != nil {
		return nil, errors.Field("Quantity", err, "invalid quantity")
	}
	allowed, err := h.authorizer.Authorize(ctx, db, operator, msg.From, msg.AssetID, requested)
	if err != nil {
		return nil, err
	}
	items := []*TokenAmount{NewTokenAmount(msg.AssetID, allowed)}
	event, err := h.engine.Apply(db, Transfer{From: msg.From, To: msg.To}, items)
	if err != nil {
		return nil, err
	}
	data, err := receiveNotification(operator, msg.From, items, msg.Payload)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: data, Tags: event.Tags()}, nil
}

func (h SendFromHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SendFromMsg, weave.Address, error) {
	var msg SendFromMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	operator, err := caller(ctx, h.auth, msg.From)
	if err != nil {
		return nil, nil, err
	}
	if err := h.authorizer.CanOperate(ctx, db, operator, msg.From); err != nil {
		return nil, nil, err
	}
	return &msg, operator, nil
}

// BatchSendFromHandler moves many assets between two owners at once.
type BatchSendFromHandler struct {
	auth       x.Authenticator
	authorizer Authorizer
	engine     Engine
}

var _ weave.Handler = BatchSendFromHandler{}

func NewBatchSendFromHandler(auth x.Authenticator) BatchSendFromHandler {
	return BatchSendFromHandler{
		auth:       auth,
		authorizer: NewAuthorizer(),
		engine:     NewEngine(),
	}
}

func (h BatchSendFromHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h BatchSendFromHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, operator, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	items, err := h.authorizer.AuthorizeBatch(ctx, db, operator, msg.From, msg.Items)
	if err != nil {
		return nil, err
	}
	event, err := h.engine.Apply(db, Transfer{From: msg.From, To: msg.To}, items)
	if err != nil {
		return nil, err
	}
	data, err := receiveNotification(operator, msg.From, items, msg.Payload)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: data, Tags: event.Tags()}, nil
}

func (h BatchSendFromHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BatchSendFromMsg, weave.Address, error) {
	var msg BatchSendFromMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	operator, err := caller(ctx, h.auth, msg.From)
	if err != nil {
		return nil, nil, err
	}
	if err := h.authorizer.CanOperate(ctx, db, operator, msg.From); err != nil {
		return nil, nil, err
	}
	return &msg, operator, nil
}

// BurnHandler destroys tokens held by the signer. The burned quantity is
// clamped to the balance held.
type BurnHandler struct {
	auth       x.Authenticator
	authorizer Authorizer
	engine     Engine
}

var _ weave.Handler = BurnHandler{}

func NewBurnHandler(auth x.Authenticator) BurnHandler {
	return BurnHandler{
		auth:       auth,
		authorizer: NewAuthorizer(),
		engine:     NewEngine(),
	}
}

func (h BurnHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h BurnHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	requested, err := msg.Amount()
	if err != nil {
		return nil, errors.Field("Quantity", err, "invalid quantity")
	}
	allowed, err := h.authorizer.Authorize(ctx, db, owner, owner, msg.AssetID, requested)
	if err != nil {
		return nil, err
	}
	event, err := h.engine.Apply(db, Burn{From: owner}, []*TokenAmount{NewTokenAmount(msg.AssetID, allowed)})
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: event.Tags()}, nil
}

func (h BurnHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BurnMsg, weave.Address, error) {
	var msg BurnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

// BatchBurnHandler destroys many assets held by the signer at once.
type BatchBurnHandler struct {
	auth       x.Authenticator
	authorizer Authorizer
	engine     Engine
}

var _ weave.Handler = BatchBurnHandler{}

func NewBatchBurnHandler(auth x.Authenticator) BatchBurnHandler {
	return BatchBurnHandler{
		auth:       auth,
		authorizer: NewAuthorizer(),
		engine:     NewEngine(),
	}
}

func (h BatchBurnHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h BatchBurnHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	items, err := h.authorizer.AuthorizeBatch(ctx, db, owner, owner, msg.Items)
	if err != nil {
		return nil, err
	}
	event, err := h.engine.Apply(db, Burn{From: owner}, items)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Tags: event.Tags()}, nil
}

func (h BatchBurnHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BatchBurnMsg, weave.Address, error) {
	var msg BatchBurnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}

// ApproveAllHandler grants an operator the right to move all assets of the
// signer.
type ApproveAllHandler struct {
	auth      x.Authenticator
	approvals ApprovalBucket
}

var _ weave.Handler = ApproveAllHandler{}

func NewApproveAllHandler(auth x.Authenticator) ApproveAllHandler {
	return ApproveAllHandler{auth: auth, approvals: NewApprovalBucket()}
}

func (h ApproveAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h ApproveAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.approvals.Approve(db, owner, msg.Operator, msg.Expires); err != nil {
		return nil, errors.Wrap(err, "approve")
	}
	event := Event{Kind: EventApproveAll, Owner: owner, Operator: msg.Operator}
	return &weave.DeliverResult{Tags: event.Tags()}, nil
}

func (h ApproveAllHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveAllMsg, weave.Address, error) {
	var msg ApproveAllMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if owner.Equals(msg.Operator) {
		return nil, nil, errors.Field("Operator", errors.ErrInput, "cannot approve self")
	}
	if msg.Expires.IsExpired(ctx) {
		return nil, nil, errors.Field("Expires", errors.ErrExpired, "approval expires %s", msg.Expires.Describe())
	}
	return &msg, owner, nil
}

// RevokeAllHandler removes an operator approval. Revoking a missing approval
// succeeds.
type RevokeAllHandler struct {
	auth      x.Authenticator
	approvals ApprovalBucket
}

var _ weave.Handler = RevokeAllHandler{}

func NewRevokeAllHandler(auth x.Authenticator) RevokeAllHandler {
	return RevokeAllHandler{auth: auth, approvals: NewApprovalBucket()}
}

func (h RevokeAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h RevokeAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.approvals.Revoke(db, owner, msg.Operator); err != nil {
		return nil, errors.Wrap(err, "revoke")
	}
	event := Event{Kind: EventRevokeAll, Owner: owner, Operator: msg.Operator}
	return &weave.DeliverResult{Tags: event.Tags()}, nil
}

func (h RevokeAllHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeAllMsg, weave.Address, error) {
	var msg RevokeAllMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, owner, nil
}
