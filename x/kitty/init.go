package kitty

import (
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/gconf"
)

// Initializer loads the kitty configuration from genesis:
//
//	{"conf": {"kitty": {"max_owned": 3}}}
//
// When the genesis carries no configuration DefaultMaxOwned is used.
type Initializer struct{}

var _ weave.Initializer = Initializer{}

func (Initializer) FromGenesis(opts weave.Options, db weave.KVStore) error {
	var conf Configuration
	err := gconf.InitConfig(db, opts, "kitty", &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
