package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	weave "github.com/iov-one/tokenweave"
	tokend "github.com/iov-one/tokenweave/cmd/tokend/app"
	"github.com/iov-one/tokenweave/commands"
	"github.com/iov-one/tokenweave/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome     = "home"
	flagLogLevel = "log_level"
	varHome      *string
	varLogLevel  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".tokend")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "info", "minimum log level: debug, info, error or none")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("tokend")
	fmt.Println("          Multi asset token ledger")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check that the given genesis files load")
	fmt.Println("getblock  Extract a block from blockstore.db")
	fmt.Println("retry     Run last block again to ensure it produces same result")
	fmt.Println("testgen   Write sample serialized objects")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.tokend")
  -log_level string
        minimum log level (default "info")`)
}

func newLogger(level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "tokend")
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, opt), nil
}

func main() {
	flag.Parse()
	logger, err := newLogger(*varLogLevel)
	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(tokend.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(tokend.GenerateApp, logger, *varHome, rest)
	case "validate":
		err = server.ValidateGenesis(tokend.Initializers(), rest)
	case "getblock":
		err = server.GetBlockCmd(logger, *varHome, rest)
	case "retry":
		err = server.RetryCmd(tokend.InlineApp, logger, *varHome, rest)
	case "testgen":
		err = commands.TestGenCmd(tokend.Examples(), rest)
	case "version":
		fmt.Println(weave.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
