package server

import (
	"flag"

	"github.com/iov-one/tokenweave/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const flagDebug = "debug"

type startArgs struct {
	bind  string
	debug bool
}

func parseStartArgs(args []string) (startArgs, error) {
	var res startArgs
	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	fs.StringVar(&res.bind, "bind", "tcp://localhost:26658", "ABCI socket address")
	fs.BoolVar(&res.debug, flagDebug, false, "include stack traces in results")
	if err := fs.Parse(args); err != nil {
		return res, errors.Wrap(errors.ErrInput, err.Error())
	}
	return res, nil
}

// AppGenerator builds the application once the home directory and the
// logger are known.
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd serves the application on the ABCI socket for a tendermint node
// to connect to. It returns only when the server cannot start and
// otherwise runs until the process is terminated.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	a, err := parseStartArgs(args)
	if err != nil {
		return err
	}
	app, err := gen(home, logger, a.debug)
	if err != nil {
		return errors.Wrap(err, "build application")
	}

	srv, err := server.NewServer(a.bind, "socket", app)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", a.bind)
	}
	srv.SetLogger(logger.With("module", "abci-server"))
	logger.Info("serving ABCI", "bind", a.bind, "home", home)
	if err := srv.Start(); err != nil {
		return errors.Wrap(err, "start ABCI server")
	}

	cmn.TrapSignal(logger, func() {
		if err := srv.Stop(); err != nil {
			logger.Error("ABCI server stop", "err", err)
		}
	})
	select {}
}
