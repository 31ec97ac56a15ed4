package nft

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/gconf"
)

const packageName = "nft"

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Minter", c.Minter.Validate())
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// SaveConf writes the configuration.
func SaveConf(db weave.KVStore, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}

// Initializer loads the configuration from the "conf" section of the
// genesis file:
//
//	"conf": {
//	  "nft": {"metadata": {"schema": 1}, "minter": "hex:...", "name": "...", "symbol": "..."}
//	}
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

func (*Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, packageName, &conf); {
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return err
	}
}
