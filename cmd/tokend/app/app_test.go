package tokend

import (
	"encoding/hex"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/app"
	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store/iavl"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/iov-one/tokenweave/x/sale"
	"github.com/iov-one/tokenweave/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

type account struct {
	pk  *crypto.PrivateKey
	seq int64
}

func newAccount() *account {
	return &account{pk: crypto.GenPrivKeyEd25519()}
}

func (a *account) address() weave.Address {
	return a.pk.PublicKey().Address()
}

type testApp struct {
	t       *testing.T
	app     app.BaseApp
	chainID string
	height  int64
}

func newTestApp(t *testing.T, chainID string, minter *account) *testApp {
	t.Helper()
	state, err := GenInitOptions([]string{"gold", hex.EncodeToString(minter.address())})
	require.NoError(t, err)

	myApp := NewApplication("tokend", Stack(), TxDecoder, iavl.NewMemCommitStore(), true)
	myApp.WithLogger(log.NewNopLogger())
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: state})
	return &testApp{t: t, app: myApp, chainID: chainID}
}

// signAndCommit delivers a block with a single transaction signed by the
// given account.
func (ta *testApp) signAndCommit(signer *account, msg weave.Msg) abci.ResponseDeliverTx {
	ta.t.Helper()
	var tx Tx
	require.NoError(ta.t, tx.SetMsg(msg))
	sig, err := sigs.SignTx(signer.pk, &tx, ta.chainID, signer.seq)
	require.NoError(ta.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(ta.t, err)

	ta.height++
	header := abci.Header{ChainID: ta.chainID, Height: ta.height}
	ta.app.BeginBlock(abci.RequestBeginBlock{Header: header})

	chres := ta.app.CheckTx(raw)
	dres := ta.app.DeliverTx(raw)
	ta.app.EndBlock(abci.RequestEndBlock{Height: ta.height})
	ta.app.Commit()

	if chres.Code == 0 && dres.Code == 0 {
		signer.seq++
	}
	require.Equal(ta.t, chres.Code, dres.Code, "check %q, deliver %q", chres.Log, dres.Log)
	return dres
}

func (ta *testApp) query(path string, data []byte, obj weave.Persistent) error {
	ta.t.Helper()
	res := ta.app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != 0 {
		return errors.Wrap(errors.ErrNotFound, res.Log)
	}
	return app.UnmarshalOneResult(res.Value, obj)
}

func (ta *testApp) balance(owner weave.Address, asset string) string {
	ta.t.Helper()
	var b multitoken.Balance
	key := append(append([]byte{}, owner...), asset...)
	require.NoError(ta.t, ta.query("/multitoken/balances", key, &b))
	return b.Quantity
}

func meta() *weave.Metadata {
	return &weave.Metadata{Schema: 1}
}

func TestSendAndMint(t *testing.T) {
	minter := newAccount()
	alice := newAccount()
	ta := newTestApp(t, "test-chain-tokend", minter)

	var supply multitoken.Supply
	require.NoError(t, ta.query("/multitoken/supplies", []byte("gold"), &supply))
	assert.Equal(t, "1000000000", supply.Quantity)

	dres := ta.signAndCommit(minter, &multitoken.SendFromMsg{
		Metadata: meta(),
		From:     minter.address(),
		To:       alice.address(),
		AssetID:  "gold",
		Quantity: "250",
	})
	require.EqualValues(t, 0, dres.Code, dres.Log)
	assert.NotEmpty(t, dres.Tags)
	assert.Equal(t, "250", ta.balance(alice.address(), "gold"))
	assert.Equal(t, "999999750", ta.balance(minter.address(), "gold"))

	// Only the minter can create new tokens.
	dres = ta.signAndCommit(alice, &multitoken.MintMsg{
		Metadata: meta(),
		To:       alice.address(),
		AssetID:  "silver",
		Quantity: "10",
	})
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), dres.Code)

	dres = ta.signAndCommit(minter, &multitoken.MintMsg{
		Metadata: meta(),
		To:       alice.address(),
		AssetID:  "silver",
		Quantity: "10",
	})
	require.EqualValues(t, 0, dres.Code, dres.Log)
	assert.Equal(t, "10", ta.balance(alice.address(), "silver"))

	// A transfer by a stranger does not move funds.
	dres = ta.signAndCommit(alice, &multitoken.SendFromMsg{
		Metadata: meta(),
		From:     minter.address(),
		To:       alice.address(),
		AssetID:  "gold",
		Quantity: "1",
	})
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), dres.Code)
	assert.Equal(t, "250", ta.balance(alice.address(), "gold"))
}

func TestBuyFromSale(t *testing.T) {
	minter := newAccount()
	buyer := newAccount()
	ta := newTestApp(t, "test-chain-sale", minter)

	dres := ta.signAndCommit(minter, &multitoken.SendFromMsg{
		Metadata: meta(),
		From:     minter.address(),
		To:       buyer.address(),
		AssetID:  "gold",
		Quantity: "150",
	})
	require.EqualValues(t, 0, dres.Code, dres.Log)

	dres = ta.signAndCommit(buyer, &sale.BuyMsg{
		Metadata: meta(),
		Buyer:    buyer.address(),
		Quantity: "100",
	})
	require.EqualValues(t, 0, dres.Code, dres.Log)
	assert.Equal(t, []byte("0"), dres.Data)
	assert.Equal(t, "50", ta.balance(buyer.address(), "gold"))

	var token nft.Token
	require.NoError(t, ta.query("/nft/tokens", []byte("0"), &token))
	assert.Equal(t, buyer.address(), token.Owner)

	// Not enough funds left for a second token.
	dres = ta.signAndCommit(buyer, &sale.BuyMsg{
		Metadata: meta(),
		Buyer:    buyer.address(),
		Quantity: "100",
	})
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), dres.Code)
}

func TestRejectsReplayedSignature(t *testing.T) {
	minter := newAccount()
	alice := newAccount()
	ta := newTestApp(t, "test-chain-replay", minter)

	msg := &multitoken.SendFromMsg{
		Metadata: meta(),
		From:     minter.address(),
		To:       alice.address(),
		AssetID:  "gold",
		Quantity: "1",
	}
	dres := ta.signAndCommit(minter, msg)
	require.EqualValues(t, 0, dres.Code, dres.Log)

	minter.seq--
	dres = ta.signAndCommit(minter, msg)
	assert.NotEqual(t, uint32(0), dres.Code)
	minter.seq++

	dres = ta.signAndCommit(minter, msg)
	require.EqualValues(t, 0, dres.Code, dres.Log)
	assert.Equal(t, "2", ta.balance(alice.address(), "gold"))
}
