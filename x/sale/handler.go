package sale

import (
	"strconv"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/x"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/tendermint/tendermint/libs/common"
)

// RegisterRoutes registers the buy handler.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r.Handle(&BuyMsg{}, NewBuyHandler(auth))
}

// BuyHandler sells the next token of the sale. The payment can be signed
// by the buyer or by any unexpired multitoken operator of the buyer.
type BuyHandler struct {
	auth       x.Authenticator
	authorizer multitoken.Authorizer
	engine     multitoken.Engine
	tokens     nft.TokenBucket
}

var _ weave.Handler = BuyHandler{}

func NewBuyHandler(auth x.Authenticator) BuyHandler {
	return BuyHandler{
		auth:       auth,
		authorizer: multitoken.NewAuthorizer(),
		engine:     multitoken.NewEngine(),
		tokens:     nft.NewTokenBucket(),
	}
}

func (h BuyHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h BuyHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	price, err := conf.Price()
	if err != nil {
		return nil, err
	}
	payment := []*multitoken.TokenAmount{multitoken.NewTokenAmount(conf.PaymentAsset, price)}
	event, err := h.engine.Apply(db, multitoken.Transfer{From: msg.Buyer, To: conf.Owner}, payment)
	if err != nil {
		return nil, errors.Wrap(err, "payment")
	}

	id := strconv.FormatInt(conf.NextTokenID, 10)
	if _, err := h.tokens.Create(db, id, msg.Buyer, conf.URI, conf.Extension); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	conf.NextTokenID++
	if err := SaveConf(db, conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}

	tags := common.KVPairs(event.Tags())
	tags = append(tags, common.KVPair{Key: []byte("token_id"), Value: []byte(id)})
	tags.Sort()
	return &weave.DeliverResult{Data: []byte(id), Tags: tags}, nil
}

func (h BuyHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BuyMsg, *Configuration, error) {
	var msg BuyMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if conf.SoldOut() {
		return nil, nil, errors.Wrapf(errors.ErrState, "all %d tokens sold", conf.MaxTokens)
	}
	price, err := conf.Price()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unit price")
	}
	paid, err := msg.Amount()
	if err != nil {
		return nil, nil, err
	}
	if !paid.Equals(price) {
		return nil, nil, errors.Field("Quantity", errors.ErrAmount, "unit price is %s%s", price, conf.PaymentAsset)
	}

	caller, err := x.AnySigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if h.auth.HasAddress(ctx, msg.Buyer) {
		caller = msg.Buyer
	}
	authorized, err := h.authorizer.Authorize(ctx, db, caller, msg.Buyer, conf.PaymentAsset, price)
	if err != nil {
		return nil, nil, err
	}
	if authorized.LessThan(price) {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance of %s is %s", conf.PaymentAsset, authorized)
	}
	return &msg, conf, nil
}
