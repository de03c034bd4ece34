package app

import (
	"testing"
	"time"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/app"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/x/auth"
	"github.com/iov-one/kitties/x/cash"
	"github.com/iov-one/kitties/x/kitty"
	"github.com/iov-one/kitties/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func name(t *testing.T, n string) weave.Condition {
	t.Helper()
	c, err := auth.NameCondition(n)
	require.NoError(t, err)
	return c
}

func TestGenesis(t *testing.T) {
	alice := name(t, "alice").Address()

	gen, err := Genesis("test-chain", 5, []GenesisAccount{
		{Address: alice, Amount: coin.NewCoin(10, 0, "MONY")},
		{Address: alice, Amount: coin.NewCoin(5, 0, "MONY")},
		{Address: alice, Amount: coin.NewCoin(1, 0, "ETH")},
	})
	require.NoError(t, err)
	assert.Equal(t, "test-chain", gen.ChainID)
	assert.JSONEq(t, `{"kitty": {"max_owned": 5}}`, string(gen.AppState["conf"]))

	var accounts []cash.GenesisAccount
	require.NoError(t, gen.AppState.ReadOptions("cash", &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, alice, accounts[0].Address)
	want, err := coin.CombineCoins(coin.NewCoin(15, 0, "MONY"), coin.NewCoin(1, 0, "ETH"))
	require.NoError(t, err)
	assert.True(t, want.Equals(accounts[0].Coins))

	_, err = Genesis("no", 5, nil)
	assert.True(t, errors.ErrInput.Is(err))
	_, err = Genesis("test-chain", 0, nil)
	assert.True(t, errors.ErrInput.Is(err))
	_, err = Genesis("test-chain", 1, []GenesisAccount{{Amount: coin.NewCoin(1, 0, "MONY")}})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestStack(t *testing.T) {
	alice, bob := name(t, "alice"), name(t, "bob")

	gen, err := Genesis("test-chain", 1, []GenesisAccount{
		{Address: bob.Address(), Amount: coin.NewCoin(20, 0, "MONY")},
	})
	require.NoError(t, err)

	a, err := Application("test", CommitKVStore(""), kitty.SeededEntropy{Seed: []byte("stack")}, nil)
	require.NoError(t, err)
	require.NoError(t, a.InitChain(gen))
	now := time.Now()

	res, err := a.DeliverBlock(now, app.NewTx(&kitty.CreateKittyMsg{}, alice))
	require.NoError(t, err)
	id := res.Results[0].Data
	require.Len(t, id, kitty.DNASize)
	assert.Contains(t, tags(res.Results[0]), utils.ActionKey+"=kitty/create")
	assert.Contains(t, tags(res.Results[0]), kitty.TagAction+"=create")

	// the configured capacity of one applies
	_, err = a.DeliverBlock(now, app.NewTx(&kitty.CreateKittyMsg{}, alice))
	assert.True(t, kitty.ErrOwnerCapacity.Is(err))

	// unsigned transactions are rejected by the decorator chain
	_, err = a.DeliverBlock(now, &app.Tx{Msg: &kitty.CreateKittyMsg{}})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = a.DeliverBlock(now,
		app.NewTx(&kitty.SetPriceMsg{KittyID: id, Price: coin.NewCoinp(15, 0, "MONY")}, alice),
		app.NewTx(&kitty.BuyKittyMsg{KittyID: id}, bob),
	)
	require.NoError(t, err)

	registry := Registry(kitty.SeededEntropy{})
	k, err := registry.Kitty(a.ReadStore(), id)
	require.NoError(t, err)
	assert.Equal(t, bob.Address(), k.Owner)
	assert.NoError(t, registry.CheckInvariants(a.ReadStore()))

	balance, err := Controller().Balance(a.ReadStore(), alice.Address())
	require.NoError(t, err)
	assert.True(t, coin.Coins{coin.NewCoinp(15, 0, "MONY")}.Equals(balance))

	_, err = a.DeliverBlock(now, app.NewTx(&cash.SendMsg{
		Src:    bob.Address(),
		Dest:   alice.Address(),
		Amount: coin.NewCoinp(5, 0, "MONY"),
	}, bob))
	require.NoError(t, err)
	balance, err = Controller().Balance(a.ReadStore(), alice.Address())
	require.NoError(t, err)
	assert.True(t, coin.Coins{coin.NewCoinp(20, 0, "MONY")}.Equals(balance))
}

func tags(res *weave.DeliverResult) []string {
	out := make([]string, len(res.Tags))
	for i, t := range res.Tags {
		out[i] = string(t.Key) + "=" + string(t.Value)
	}
	return out
}
