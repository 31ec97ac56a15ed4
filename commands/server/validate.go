package server

import (
	"encoding/json"
	"os"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
)

// ValidateGenesis runs the initializer over the app_state of each genesis
// file, every time on a fresh in-memory store. All files are checked, the
// returned error groups the failures of all of them.
func ValidateGenesis(ini weave.Initializer, paths []string) error {
	if len(paths) == 0 {
		return errors.Wrap(errors.ErrInput, "no genesis file given")
	}
	var errs error
	for _, p := range paths {
		errs = errors.Append(errs, errors.Wrap(loadGenesisState(ini, p), p))
	}
	return errs
}

func loadGenesisState(ini weave.Initializer, path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	defer fd.Close()

	var doc struct {
		AppState weave.Options `json:"app_state"`
	}
	if err := json.NewDecoder(fd).Decode(&doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "decode: %s", err)
	}
	return ini.FromGenesis(doc.AppState, store.MemStore())
}
