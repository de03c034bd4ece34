package auth

import (
	"context"
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/store"
	"github.com/iov-one/kitties/weavetest"
	"github.com/iov-one/kitties/weavetest/assert"
)

type signedTx struct {
	weavetest.Tx
	signers []weave.Condition
}

func (tx *signedTx) GetSigners() []weave.Condition {
	return tx.signers
}

// signersHandler records the conditions visible to the handler.
type signersHandler struct {
	got []weave.Condition
}

func (h *signersHandler) Check(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	h.got = Authenticate{}.GetConditions(ctx)
	return &weave.CheckResult{}, nil
}

func (h *signersHandler) Deliver(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	h.got = Authenticate{}.GetConditions(ctx)
	return &weave.DeliverResult{}, nil
}

func TestDecorator(t *testing.T) {
	alice, err := NameCondition("alice")
	assert.Nil(t, err)
	bob, err := NameCondition("bob")
	assert.Nil(t, err)

	cases := map[string]struct {
		dec         Decorator
		tx          weave.Tx
		wantErr     *errors.Error
		wantSigners []weave.Condition
	}{
		"single signer": {
			dec:         NewDecorator(),
			tx:          &signedTx{signers: []weave.Condition{alice}},
			wantSigners: []weave.Condition{alice},
		},
		"many signers": {
			dec:         NewDecorator(),
			tx:          &signedTx{signers: []weave.Condition{alice, bob}},
			wantSigners: []weave.Condition{alice, bob},
		},
		"no signers": {
			dec:     NewDecorator(),
			tx:      &signedTx{},
			wantErr: errors.ErrUnauthorized,
		},
		"not a signed transaction": {
			dec:     NewDecorator(),
			tx:      &weavetest.Tx{},
			wantErr: errors.ErrUnauthorized,
		},
		"unsigned allowed": {
			dec: NewDecorator().AllowMissingSigs(),
			tx:  &weavetest.Tx{},
		},
		"malformed signer": {
			dec:     NewDecorator(),
			tx:      &signedTx{signers: []weave.Condition{weave.Condition("bad")}},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			h := &signersHandler{}
			handler := weavetest.Decorate(h, tc.dec)
			db := store.MemStore()

			_, err := handler.Check(context.TODO(), weave.BlockInfo{}, db, tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			_, err = handler.Deliver(context.TODO(), weave.BlockInfo{}, db, tc.tx)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantSigners, h.got)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	alice, err := NameAddress("alice")
	assert.Nil(t, err)
	aliceCond, _ := NameCondition("alice")

	ctx := withSigners(context.Background(), []weave.Condition{aliceCond})
	var auth Authenticate
	if !auth.HasAddress(ctx, alice) {
		t.Fatal("alice must be authenticated")
	}
	if auth.HasAddress(ctx, weavetest.NewAddress()) {
		t.Fatal("unknown address must not be authenticated")
	}
	if auth.HasAddress(context.Background(), alice) {
		t.Fatal("empty context must not authenticate")
	}
}

func TestNameCondition(t *testing.T) {
	cases := map[string]bool{
		"alice":    true,
		"bob-2":    true,
		"a":        false,
		"Alice":    false,
		"":         false,
		"with/sep": false,
	}
	for name, valid := range cases {
		_, err := NameCondition(name)
		if valid {
			assert.Nil(t, err)
		} else {
			assert.IsErr(t, errors.ErrInput, err)
		}
	}

	a, _ := NameAddress("alice")
	b, _ := NameAddress("alice")
	assert.Equal(t, a, b)
	assert.Nil(t, a.Validate())
}
