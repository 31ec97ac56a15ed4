package nft

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/x"
	"github.com/tendermint/tendermint/libs/common"
)

// RegisterQuery registers the token and operator buckets under /nft.
func RegisterQuery(qr weave.QueryRouter) {
	NewTokenBucket().Register("nft/tokens", qr)
	NewOperatorBucket().Register("nft/operators", qr)
}

// RegisterRoutes registers handlers for all token messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r.Handle(&MintMsg{}, NewMintHandler(auth))
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, ctrl: newController()})
	r.Handle(&SendMsg{}, &sendHandler{auth: auth, ctrl: newController()})
	r.Handle(&ApproveMsg{}, &approveHandler{auth: auth, ctrl: newController()})
	r.Handle(&RevokeMsg{}, &revokeHandler{auth: auth, ctrl: newController()})
	r.Handle(&ApproveAllMsg{}, &approveAllHandler{auth: auth, ctrl: newController()})
	r.Handle(&RevokeAllMsg{}, &revokeAllHandler{auth: auth, ctrl: newController()})
	r.Handle(&BurnMsg{}, &burnHandler{auth: auth, ctrl: newController()})
}

func tags(action string, sender weave.Address, id string, extra ...common.KVPair) []common.KVPair {
	t := common.KVPairs{
		{Key: []byte("action"), Value: []byte(action)},
		{Key: []byte("sender"), Value: []byte(sender.String())},
	}
	if id != "" {
		t = append(t, common.KVPair{Key: []byte("token_id"), Value: []byte(id)})
	}
	t = append(t, extra...)
	t.Sort()
	return t
}

func tag(key string, addr weave.Address) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(addr.String())}
}

// controller holds the permission rules shared by all handlers.
type controller struct {
	tokens    TokenBucket
	operators OperatorBucket
}

func newController() controller {
	return controller{tokens: NewTokenBucket(), operators: NewOperatorBucket()}
}

// canSend loads the token and ensures the sender may transfer or burn it:
// the owner, an unexpired spender of the token or an unexpired operator of
// the owner.
func (c controller) canSend(ctx weave.Context, db weave.ReadOnlyKVStore, sender weave.Address, id string) (*Token, error) {
	t, err := c.tokens.Get(db, id)
	if err != nil {
		return nil, err
	}
	if t.Owner.Equals(sender) || t.IsSpender(ctx, sender) {
		return t, nil
	}
	switch ok, err := c.operators.IsOperator(ctx, db, t.Owner, sender); {
	case err != nil:
		return nil, err
	case !ok:
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s cannot send token %q", sender, id)
	}
	return t, nil
}

// canApprove loads the token and ensures the sender may change its
// approvals: the owner or an unexpired operator of the owner.
func (c controller) canApprove(ctx weave.Context, db weave.ReadOnlyKVStore, sender weave.Address, id string) (*Token, error) {
	t, err := c.tokens.Get(db, id)
	if err != nil {
		return nil, err
	}
	if t.Owner.Equals(sender) {
		return t, nil
	}
	switch ok, err := c.operators.IsOperator(ctx, db, t.Owner, sender); {
	case err != nil:
		return nil, err
	case !ok:
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s cannot approve token %q", sender, id)
	}
	return t, nil
}

// MintHandler creates new tokens. Only the configured minter can mint.
type MintHandler struct {
	auth   x.Authenticator
	tokens TokenBucket
}

var _ weave.Handler = MintHandler{}

func NewMintHandler(auth x.Authenticator) MintHandler {
	return MintHandler{auth: auth, tokens: NewTokenBucket()}
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
	if _, err := h.tokens.Create(db, msg.ID, msg.Owner, msg.URI, msg.Extension); err != nil {
		return nil, err
	}
	minter, _ := x.AnySigner(ctx, h.auth)
	return &weave.DeliverResult{Tags: tags("mint", minter, msg.ID, tag("owner", msg.Owner))}, nil
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
	if ok, err := h.tokens.Has(db, []byte(msg.ID)); err != nil {
		return nil, err
	} else if ok {
		return nil, errors.Wrapf(errors.ErrDuplicate, "token %q", msg.ID)
	}
	return &msg, nil
}

type transferHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *transferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *transferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	token.ChangeOwner(msg.Recipient)
	if err := h.ctrl.tokens.Save(db, token); err != nil {
		return nil, errors.Wrap(err, "save token")
	}
	return &weave.DeliverResult{Tags: tags("transfer", sender, msg.ID, tag("recipient", msg.Recipient))}, nil
}

func (h *transferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferMsg, *Token, weave.Address, error) {
	var msg TransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	token, err := h.ctrl.canSend(ctx, db, sender, msg.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, token, sender, nil
}

type sendHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *sendHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *sendHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	token.ChangeOwner(msg.Contract)
	if err := h.ctrl.tokens.Save(db, token); err != nil {
		return nil, errors.Wrap(err, "save token")
	}
	rcv := ReceiveMsg{Sender: sender, ID: msg.ID, Payload: msg.Payload}
	data, err := rcv.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "receive notification")
	}
	return &weave.DeliverResult{
		Data: data,
		Tags: tags("send_nft", sender, msg.ID, tag("recipient", msg.Contract)),
	}, nil
}

func (h *sendHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SendMsg, *Token, weave.Address, error) {
	var msg SendMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	token, err := h.ctrl.canSend(ctx, db, sender, msg.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, token, sender, nil
}

type approveHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *approveHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *approveHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	token.Approve(msg.Spender, msg.Expires)
	if err := h.ctrl.tokens.Save(db, token); err != nil {
		return nil, errors.Wrap(err, "save token")
	}
	return &weave.DeliverResult{Tags: tags("approve", sender, msg.ID, tag("spender", msg.Spender))}, nil
}

func (h *approveHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveMsg, *Token, weave.Address, error) {
	var msg ApproveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	token, err := h.ctrl.canApprove(ctx, db, sender, msg.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	if msg.Expires.IsExpired(ctx) {
		return nil, nil, nil, errors.Field("Expires", errors.ErrExpired, "approval expires %s", msg.Expires.Describe())
	}
	return &msg, token, sender, nil
}

type revokeHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *revokeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *revokeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	token.Revoke(msg.Spender)
	if err := h.ctrl.tokens.Save(db, token); err != nil {
		return nil, errors.Wrap(err, "save token")
	}
	return &weave.DeliverResult{Tags: tags("revoke", sender, msg.ID, tag("spender", msg.Spender))}, nil
}

func (h *revokeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeMsg, *Token, weave.Address, error) {
	var msg RevokeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	token, err := h.ctrl.canApprove(ctx, db, sender, msg.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, token, sender, nil
}

type approveAllHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *approveAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *approveAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.operators.Approve(db, owner, msg.Operator, msg.Expires); err != nil {
		return nil, errors.Wrap(err, "approve")
	}
	return &weave.DeliverResult{Tags: tags("approve_all", owner, "", tag("operator", msg.Operator))}, nil
}

func (h *approveAllHandler) validate(ctx weave.Context, tx weave.Tx) (*ApproveAllMsg, weave.Address, error) {
	var msg ApproveAllMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if msg.Expires.IsExpired(ctx) {
		return nil, nil, errors.Field("Expires", errors.ErrExpired, "approval expires %s", msg.Expires.Describe())
	}
	return &msg, owner, nil
}

type revokeAllHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *revokeAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *revokeAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.operators.Revoke(db, owner, msg.Operator); err != nil {
		return nil, errors.Wrap(err, "revoke")
	}
	return &weave.DeliverResult{Tags: tags("revoke_all", owner, "", tag("operator", msg.Operator))}, nil
}

func (h *revokeAllHandler) validate(ctx weave.Context, tx weave.Tx) (*RevokeAllMsg, weave.Address, error) {
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

type burnHandler struct {
	auth x.Authenticator
	ctrl controller
}

func (h *burnHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *burnHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.tokens.Delete(db, []byte(msg.ID)); err != nil {
		return nil, errors.Wrap(err, "delete token")
	}
	return &weave.DeliverResult{Tags: tags("burn", sender, msg.ID)}, nil
}

func (h *burnHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BurnMsg, weave.Address, error) {
	var msg BurnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	sender, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if _, err := h.ctrl.canSend(ctx, db, sender, msg.ID); err != nil {
		return nil, nil, err
	}
	return &msg, sender, nil
}
