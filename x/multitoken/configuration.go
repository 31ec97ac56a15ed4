package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/gconf"
)

const packageName = "multitoken"

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Minter", c.Minter.Validate())
	return errs
}

// loadConf returns the configuration saved at genesis.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// SaveConf writes the configuration. It is meant to be used only when
// bootstrapping the chain and by tests.
func SaveConf(db weave.KVStore, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}
