package tokend

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/crypto"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultAsset is the fungible asset created by GenInitOptions when none is
// given on the command line.
const DefaultAsset = "gold"

// GenInitOptions produces the app_state for a development chain. A single
// account is the minter of both token kinds, holds the initial supply of
// the asset and sells NFTs for it.
//
//	tokend init [asset] [hex address]
//
// If no address is given, a new key is generated and printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	asset := DefaultAsset
	if len(args) > 0 {
		asset = args[0]
	}

	var addr weave.Address
	if len(args) > 1 {
		a, err := weave.ParseAddress(args[1])
		if err != nil {
			return nil, errors.Wrap(err, "address")
		}
		addr = a
	} else {
		a, keys, err := GenerateKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(keys)
	}

	opts := fmt.Sprintf(`
	{
	  "multitoken": {
	    "minter": %[1]q,
	    "tokens": [
	      {"asset_id": %[2]q, "balances": [{"owner": %[1]q, "quantity": "1000000000"}]}
	    ]
	  },
	  "conf": {
	    "nft": {"metadata": {"schema": 1}, "minter": %[1]q, "name": "Collectibles", "symbol": "COL"},
	    "sale": {"metadata": {"schema": 1}, "owner": %[1]q, "payment_asset": %[2]q, "unit_price": "100", "max_tokens": 1000}
	  }
	}`, "hex:"+hex.EncodeToString(addr), asset)

	// Reject a bad asset or address before it lands in the genesis file.
	var state weave.Options
	if err := json.Unmarshal([]byte(opts), &state); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := Initializers().FromGenesis(state, store.MemStore()); err != nil {
		return nil, errors.Wrap(err, "invalid app_state")
	}
	return json.RawMessage(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "abci.db")
	}

	application, err := Application("tokend", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithLogger(logger)
	return application, nil
}

// InlineApp builds the application on top of an already opened store. It is
// used to replay blocks.
func InlineApp(kv weave.CommitKVStore, logger log.Logger, debug bool) (abci.Application, error) {
	application := NewApplication("tokend", Stack(), TxDecoder, kv, debug)
	application.WithLogger(logger)
	return application, nil
}

type keyOutput struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateKey returns the address of a new ed25519 key, along with a json
// representation of the key pair.
func GenerateKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()

	out := keyOutput{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "serialize keys")
	}
	return pubKey.Address(), string(keys), nil
}
