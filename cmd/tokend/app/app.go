/*
Package tokend links together all the various components
to construct the tokend application.
*/
package tokend

import (
	"context"
	"path/filepath"
	"strings"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/app"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store/iavl"
	"github.com/iov-one/tokenweave/x"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/iov-one/tokenweave/x/sale"
	"github.com/iov-one/tokenweave/x/sigs"
	"github.com/iov-one/tokenweave/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching all token messages.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	multitoken.RegisterRoutes(r, authFn)
	nft.RegisterRoutes(r, authFn)
	sale.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/auth", "/multitoken/*" and "/nft/*"
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		multitoken.RegisterQuery,
		nft.RegisterQuery,
	)
	return r
}

// Initializers returns all extensions that load their state from the
// genesis file.
func Initializers() weave.Initializer {
	return weave.ChainInitializers{
		&multitoken.Initializer{},
		&nft.Initializer{},
		&sale.Initializer{},
	}
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler, tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	return NewApplication(name, h, tx, kv, debug), nil
}

// NewApplication constructs the ABCI application over the given store.
func NewApplication(name string, h weave.Handler, tx weave.TxDecoder, kv weave.CommitKVStore, debug bool) app.BaseApp {
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	store = store.WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
