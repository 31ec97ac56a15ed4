package sale

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/gconf"
)

const packageName = "sale"

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.PaymentAsset == "" {
		errs = errors.AppendField(errs, "PaymentAsset", errors.ErrEmpty)
	}
	switch price, err := amount.Parse(c.UnitPrice); {
	case err != nil:
		errs = errors.AppendField(errs, "UnitPrice", err)
	case price.IsZero():
		errs = errors.AppendField(errs, "UnitPrice", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if c.MaxTokens <= 0 {
		errs = errors.AppendField(errs, "MaxTokens", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	if c.NextTokenID < 0 {
		errs = errors.AppendField(errs, "NextTokenID", errors.Wrap(errors.ErrInput, "negative"))
	}
	return errs
}

// Price returns the parsed unit price.
func (c *Configuration) Price() (amount.Amount, error) {
	return amount.Parse(c.UnitPrice)
}

// SoldOut returns true if no more tokens can be bought.
func (c *Configuration) SoldOut() bool {
	return c.NextTokenID >= c.MaxTokens
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

// Initializer opens the sale if the "conf" section of the genesis file
// contains a "sale" entry.
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
