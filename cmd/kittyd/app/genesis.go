package app

import (
	"encoding/json"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/app"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/x/cash"
	"github.com/iov-one/kitties/x/kitty"
)

// GenesisAccount is an account funded at genesis.
type GenesisAccount struct {
	Address weave.Address
	Amount  coin.Coin
}

// Genesis builds the genesis document for chainID, funding all accounts and
// limiting the number of kitties a single owner can hold to maxOwned.
func Genesis(chainID string, maxOwned uint32, accounts []GenesisAccount) (app.Genesis, error) {
	if !weave.IsValidChainID(chainID) {
		return app.Genesis{}, errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	conf := kitty.Configuration{MaxOwned: maxOwned}
	if err := conf.Validate(); err != nil {
		return app.Genesis{}, errors.Wrap(err, "kitty configuration")
	}

	byAddr := make(map[string]int)
	var wallets []cash.GenesisAccount
	for _, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return app.Genesis{}, errors.Wrap(err, "account")
		}
		key := a.Address.String()
		i, ok := byAddr[key]
		if !ok {
			i = len(wallets)
			byAddr[key] = i
			wallets = append(wallets, cash.GenesisAccount{Address: a.Address})
		}
		coins, err := wallets[i].Coins.Add(a.Amount)
		if err != nil {
			return app.Genesis{}, errors.Wrapf(err, "account %s", key)
		}
		wallets[i].Coins = coins
	}

	rawCash, err := json.Marshal(wallets)
	if err != nil {
		return app.Genesis{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	rawConf, err := json.Marshal(map[string]interface{}{
		"kitty": conf,
	})
	if err != nil {
		return app.Genesis{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	return app.Genesis{
		ChainID: chainID,
		AppState: weave.Options{
			"cash": rawCash,
			"conf": rawConf,
		},
	}, nil
}
