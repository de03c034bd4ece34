package cash

import (
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/store"
	"github.com/iov-one/kitties/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	addr := weavetest.NewAddress()
	addr2 := weavetest.NewAddress()

	controller := NewController(NewBucket())

	plus := coin.NewCoin(500, 1000, "FOO")
	minus := coin.NewCoin(-400, -600, "FOO")
	total := coin.NewCoin(100, 400, "FOO")
	other := coin.NewCoin(1, 0, "DING")

	// issue positive
	require.NoError(t, controller.IssueCoins(kv, addr, plus))
	bal, err := controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&plus}))
	empty, err := controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	// issue negative
	require.NoError(t, controller.IssueCoins(kv, addr, minus))
	bal, err = controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&total}))

	// issue to other wallet
	require.NoError(t, controller.IssueCoins(kv, addr2, other))
	bal, err = controller.Balance(kv, addr)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&total}))
	bal, err = controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&other}))

	// set to zero removes the wallet
	require.NoError(t, controller.IssueCoins(kv, addr2, other.Negative()))
	bal, err = controller.Balance(kv, addr2)
	require.NoError(t, err)
	assert.True(t, bal.IsEmpty())
	assert.True(t, errors.ErrNotFound.Is(NewBucket().Has(kv, addr2)))

	// cannot reduce below zero
	err = controller.IssueCoins(kv, addr2, other.Negative())
	assert.True(t, errors.ErrAmount.Is(err), "got %v", err)
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	sender := weavetest.NewAddress()
	rcpt := weavetest.NewAddress()
	nobody := weavetest.NewAddress()

	controller := NewController(NewBucket())

	cc := "MONY"
	bank := coin.NewCoin(50000, 0, cc)
	require.NoError(t, controller.IssueCoins(kv, sender, bank))

	cases := map[string]struct {
		src, dest weave.Address
		amount    coin.Coin
		wantErr   *errors.Error
	}{
		"empty sender": {
			src: nobody, dest: rcpt, amount: coin.NewCoin(100, 0, cc),
			wantErr: errors.ErrEmpty,
		},
		"wrong currency": {
			src: sender, dest: rcpt, amount: coin.NewCoin(100, 0, "BAD"),
			wantErr: errors.ErrAmount,
		},
		"too much": {
			src: sender, dest: rcpt, amount: coin.NewCoin(50001, 0, cc),
			wantErr: errors.ErrAmount,
		},
		"zero amount": {
			src: sender, dest: rcpt, amount: coin.NewCoin(0, 0, cc),
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			src: sender, dest: rcpt, amount: coin.NewCoin(-10, 0, cc),
			wantErr: errors.ErrAmount,
		},
		"invalid destination": {
			src: sender, dest: weave.Address("short"), amount: coin.NewCoin(1, 0, cc),
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := controller.MoveCoins(kv, tc.src, tc.dest, tc.amount)
			require.Error(t, err)
			assert.True(t, tc.wantErr.Is(err), "got %v", err)

			// nothing moved
			bal, err := controller.Balance(kv, sender)
			require.NoError(t, err)
			assert.True(t, bal.Equals(coin.Coins{&bank}))
		})
	}

	part := coin.NewCoin(1234, 5678, cc)
	require.NoError(t, controller.MoveCoins(kv, sender, rcpt, part))

	left, err := bank.Subtract(part)
	require.NoError(t, err)
	bal, err := controller.Balance(kv, sender)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&left}))
	bal, err = controller.Balance(kv, rcpt)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&part}))

	// sending to yourself changes nothing
	require.NoError(t, controller.MoveCoins(kv, rcpt, rcpt, part))
	bal, err = controller.Balance(kv, rcpt)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&part}))

	// moving everything removes the sender wallet
	require.NoError(t, controller.MoveCoins(kv, rcpt, sender, part))
	bal, err = controller.Balance(kv, rcpt)
	require.NoError(t, err)
	assert.True(t, bal.IsEmpty())
	bal, err = controller.Balance(kv, sender)
	require.NoError(t, err)
	assert.True(t, bal.Equals(coin.Coins{&bank}))
}
