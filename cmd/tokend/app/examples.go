package tokend

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/commands"
	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/iov-one/tokenweave/x/sale"
	"github.com/iov-one/tokenweave/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	meta := &weave.Metadata{Schema: 1}
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	src := pub.Address()
	dst := crypto.GenPrivKeyEd25519().PublicKey().Address()

	user := &sigs.UserData{
		Metadata: meta,
		Pubkey:   pub,
		Sequence: 17,
	}

	balance := &multitoken.Balance{
		Metadata: meta,
		Owner:    src,
		AssetID:  "gold",
		Quantity: "1000",
	}

	sendMsg := &multitoken.SendFromMsg{
		Metadata: meta,
		From:     src,
		To:       dst,
		AssetID:  "gold",
		Quantity: "250",
		Payload:  []byte("have a great trip"),
	}

	batchMsg := &multitoken.BatchSendFromMsg{
		Metadata: meta,
		From:     src,
		To:       dst,
		Items: []*multitoken.TokenAmount{
			{AssetID: "gold", Quantity: "10"},
			{AssetID: "silver", Quantity: "20"},
		},
	}

	nftMsg := &nft.MintMsg{
		Metadata: meta,
		ID:       "1",
		Owner:    src,
		URI:      "ipfs://QmExample",
	}

	buyMsg := &sale.BuyMsg{
		Metadata: meta,
		Buyer:    src,
		Quantity: "100",
	}

	var unsigned Tx
	if err := unsigned.SetMsg(sendMsg); err != nil {
		panic(err)
	}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "balance", Obj: balance},
		{Filename: "send_msg", Obj: sendMsg},
		{Filename: "batch_send_msg", Obj: batchMsg},
		{Filename: "nft_mint_msg", Obj: nftMsg},
		{Filename: "buy_msg", Obj: buyMsg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
