package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file. The "multitoken" section declares the minter and the initial token
// distribution:
//
//	"multitoken": {
//	  "minter": "bech32:...",
//	  "tokens": [
//	    {"asset_id": "gold", "uri": "...", "balances": [
//	      {"owner": "hex:...", "quantity": "1000"}
//	    ]}
//	  ]
//	}
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

type genesisToken struct {
	AssetID   string           `json:"asset_id"`
	URI       string           `json:"uri"`
	Extension []byte           `json:"extension"`
	Balances  []genesisBalance `json:"balances"`
}

type genesisBalance struct {
	Owner    weave.Address `json:"owner"`
	Quantity amount.Amount `json:"quantity"`
}

// FromGenesis stores the configuration and mints all declared balances
// through the transfer engine, so that the supply is consistent from the
// first block.
func (*Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var section weave.Options
	if err := opts.ReadOptions(packageName, &section); err != nil {
		return err
	}
	if section == nil {
		return nil
	}

	var minter weave.Address
	if err := section.ReadOptions("minter", &minter); err != nil {
		return err
	}
	conf := &Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Minter:   minter,
	}
	if err := SaveConf(db, conf); err != nil {
		return errors.Wrap(err, "configuration")
	}

	stream, err := section.Stream("tokens")
	switch {
	case errors.ErrEmpty.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot load tokens")
	}

	engine := NewEngine()
	tokens := NewTokenBucket()
	for {
		var t genesisToken
		switch err := stream(&t); {
		case errors.ErrEmpty.Is(err):
			return nil
		case err != nil:
			return errors.Wrap(err, "cannot load token")
		}
		if err := validateAssetID(t.AssetID); err != nil {
			return errors.Field("AssetID", err, "genesis token")
		}
		if err := tokens.Create(db, t.AssetID, t.URI, t.Extension); err != nil {
			return errors.Wrapf(err, "token %q", t.AssetID)
		}
		for i, b := range t.Balances {
			if err := b.Owner.Validate(); err != nil {
				return errors.Wrapf(err, "token %q balance %d", t.AssetID, i)
			}
			items := []*TokenAmount{NewTokenAmount(t.AssetID, b.Quantity)}
			if _, err := engine.Apply(db, Mint{To: b.Owner}, items); err != nil {
				return errors.Wrapf(err, "token %q balance %d", t.AssetID, i)
			}
		}
	}
}
