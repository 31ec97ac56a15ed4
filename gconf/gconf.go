package gconf

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// ReadStore is the part of a store Load needs.
type ReadStore interface {
	Get(key []byte) ([]byte, error)
}

// Store is the part of a store Save needs.
type Store interface {
	ReadStore
	Set(key, value []byte) error
}

type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration is implemented by the configuration entity of every
// extension.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// dbKey is the key of the configuration singleton of an extension.
func dbKey(pkg string) []byte {
	return append([]byte("_c:"), pkg...)
}

// Save validates conf and writes it as the configuration of pkg,
// replacing any previous one.
func Save(db Store, pkg string, conf ValidMarshaler) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := conf.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %s configuration", pkg)
	}
	return db.Set(dbKey(pkg), raw)
}

// Load reads the configuration of pkg into dst. ErrNotFound is returned
// when the extension has no configuration.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	raw, err := db.Get(dbKey(pkg))
	switch {
	case err != nil:
		return errors.Wrapf(err, "%s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal %s configuration", pkg)
	}
	return nil
}

// InitConfig decodes the genesis "conf" section entry of pkg into conf and
// saves it. ErrNotFound is returned when the genesis has no entry for pkg.
func InitConfig(db Store, opts weave.Options, pkg string, conf Configuration) error {
	var section weave.Options
	if err := opts.ReadOptions("conf", &section); err != nil {
		return err
	}
	if _, ok := section[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "genesis conf.%s", pkg)
	}
	if err := section.ReadOptions(pkg, conf); err != nil {
		return err
	}
	return Save(db, pkg, conf)
}
