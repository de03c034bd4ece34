package app

import (
	"fmt"
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dummyKey = "dummy"

type dummyInit struct{}

func (dummyInit) FromGenesis(opts weave.Options, kv weave.KVStore) error {
	var value string
	if err := opts.ReadOptions(dummyKey, &value); err != nil {
		return err
	}
	return kv.Set([]byte(dummyKey), []byte(value))
}

type countInit struct {
	called int
}

func (c *countInit) FromGenesis(opts weave.Options, kv weave.KVStore) error {
	c.called++
	return nil
}

func TestLoadGenesis(t *testing.T) {
	cases := []struct {
		file         string
		parseError   bool
		initErr      bool
		expectChain  string
		expectCalled int
		expectValue  []byte
	}{
		// no such file
		0: {"bad_file.json", true, true, "", 0, nil},
		// proper parse
		1: {"testdata/genesis.json", false, false, "test-chain-67", 1, []byte("secret")},
		// parse genesis, bad init
		2: {"testdata/bad_genesis.json", false, true, "super-chain-22", 0, nil},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			gen, err := LoadGenesis(tc.file)
			if tc.parseError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectChain, gen.ChainID)

			c := new(countInit)
			init := ChainInitializers(dummyInit{}, c)
			db := store.MemStore()
			err = init.FromGenesis(gen.AppState, db)
			if tc.initErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectCalled, c.called)
			val, err := db.Get([]byte(dummyKey))
			require.NoError(t, err)
			assert.Equal(t, tc.expectValue, val)
		})
	}
}
