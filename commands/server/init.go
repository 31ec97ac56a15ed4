package server

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/iov-one/tokenweave/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagForce = "force"
	appState  = "app_state"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

// GenesisPath returns the location of the tendermint genesis file.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd will write the app_state generated by gen into the genesis file
// found in the home directory. A minimal genesis file is created if none
// exists. An existing app_state is replaced only when -force is given.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := GenesisPath(home)
	doc, err := loadOrCreateGenesis(genFile)
	if err != nil {
		return err
	}
	if len(doc[appState]) > 0 && !force {
		return errors.Wrapf(errors.ErrDuplicate, "%s already contains app_state, use -%s to overwrite", genFile, flagForce)
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return errors.Wrap(err, "generate app_state")
	}
	doc[appState] = options

	if err := writeGenesis(genFile, doc); err != nil {
		return err
	}
	logger.Info("App state written to genesis", "path", genFile)
	return nil
}

func loadOrCreateGenesis(path string) (GenesisDoc, error) {
	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		chainID, _ := json.Marshal(fmt.Sprintf("tokend-%s", cmn.RandStr(6)))
		genesisTime, _ := json.Marshal(time.Now().UTC())
		return GenesisDoc{
			"chain_id":     chainID,
			"genesis_time": genesisTime,
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return doc, nil
}

func writeGenesis(path string, doc GenesisDoc) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize genesis")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	return ioutil.WriteFile(path, out, 0600)
}
