package cash

import (
	"encoding/json"
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitState(t *testing.T) {
	addr := weave.Address("12345678901234567890")
	coins := mustCombineCoins(coin.NewCoin(100, 5, "ATM"), coin.NewCoin(50, 0, "ETH"))
	accts := []GenesisAccount{{Address: addr, Coins: coins}}

	bz, err := json.Marshal(accts)
	require.NoError(t, err)

	// human readable coins and out of order
	bz2 := []byte(`[{"address":"0102030405060708090021222324252627282930",
                "coins":["7 XYZ", {"whole":50, "fractional":1234567, "ticker":"FOO"}]}]`)
	coins2 := mustCombineCoins(coin.NewCoin(50, 1234567, "FOO"), coin.NewCoin(7, 0, "XYZ"))
	addr2 := weave.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x30}

	cases := map[string]struct {
		opts    weave.Options
		isError bool
		acct    weave.Address
		want    coin.Coins
	}{
		"no data":      {opts: weave.Options{}},
		"other module": {opts: weave.Options{"foo": []byte(`"bar"`)}},
		"bad format": {
			opts:    weave.Options{"cash": []byte(`[{"coins": 123}]`)},
			isError: true,
		},
		"bad address": {
			opts:    weave.Options{"cash": []byte(`[{"address": "1234", "coins": []}]`)},
			isError: true,
		},
		"account": {
			opts: weave.Options{"cash": bz},
			acct: addr,
			want: coins,
		},
		"unordered account": {
			opts: weave.Options{"cash": bz2},
			acct: addr2,
			want: coins2,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			err := Initializer{}.FromGenesis(tc.opts, kv)
			if tc.isError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tc.acct != nil {
				bal, err := NewController(NewBucket()).Balance(kv, tc.acct)
				require.NoError(t, err)
				assert.True(t, bal.Equals(tc.want), "got %v", bal)
			}
		})
	}
}

// mustCombineCoins has one return value for tests...
func mustCombineCoins(cs ...coin.Coin) coin.Coins {
	s, err := coin.CombineCoins(cs...)
	if err != nil {
		panic(err)
	}
	return s
}
