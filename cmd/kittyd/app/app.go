/*
Package app links together all the various components
to construct the kittyd application.
*/
package app

import (
	"path/filepath"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/app"
	"github.com/iov-one/kitties/store/iavl"
	"github.com/iov-one/kitties/x"
	"github.com/iov-one/kitties/x/auth"
	"github.com/iov-one/kitties/x/cash"
	"github.com/iov-one/kitties/x/kitty"
	"github.com/iov-one/kitties/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by all handlers. Signers
// are declared by the transaction.
func Authenticator() x.Authenticator {
	return x.ChainAuth(auth.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		auth.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Controller returns the coin controller shared by the cash handlers and the
// kitty registry.
func Controller() cash.BaseController {
	return cash.NewController(cash.NewBucket())
}

// Registry returns a kitty registry paying with the default controller.
func Registry(entropy kitty.EntropySource) *kitty.Registry {
	return kitty.NewRegistry(entropy, Controller())
}

// Router returns a router dispatching to the cash and kitty handlers.
func Router(authFn x.Authenticator, registry *kitty.Registry) *app.Router {
	r := app.NewRouter()
	cash.RegisterRoutes(r, authFn, Controller())
	kitty.RegisterRoutes(r, authFn, registry)
	return r
}

// Stack wires up a standard router with a standard decorator chain.
func Stack(registry *kitty.Registry) weave.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, registry))
}

// Initializers returns the genesis initializer of every extension.
func Initializers() weave.Initializer {
	return app.ChainInitializers(
		cash.Initializer{},
		kitty.Initializer{},
	)
}

// Application constructs an application over kv using the standard stack.
func Application(name string, kv weave.CommitKVStore, entropy kitty.EntropySource, logger log.Logger) (*app.Application, error) {
	return app.NewApplication(name, kv, Stack(Registry(entropy)), Initializers(), logger)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path keeps everything in memory.
func CommitKVStore(dbPath string) *iavl.CommitStore {
	if dbPath == "" {
		return iavl.NewCommitStore("", "")
	}
	path, name := filepath.Split(filepath.Clean(dbPath))
	return iavl.NewCommitStore(path, name)
}
