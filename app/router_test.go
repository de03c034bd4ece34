package app

import (
	"context"
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	good := &weavetest.Msg{RoutePath: "test/good"}
	bad := &weavetest.Msg{RoutePath: "test/bad"}
	missing := &weavetest.Msg{RoutePath: "test/missing"}

	counter := &weavetest.Handler{}
	r.Handle(good, counter)
	r.Handle(bad, &weavetest.Handler{
		CheckErr:   errors.ErrState,
		DeliverErr: errors.ErrState,
	})

	assert.Panics(t, func() { r.Handle(good, counter) })
	assert.Panics(t, func() { r.Handle(&weavetest.Msg{RoutePath: "l:7"}, counter) })

	info, err := weave.NewBlockInfo(headerAt(1), "test-chain", nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = r.Check(ctx, info, nil, &weavetest.Tx{Msg: good})
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, info, nil, &weavetest.Tx{Msg: good})
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	_, err = r.Deliver(ctx, info, nil, &weavetest.Tx{Msg: bad})
	assert.True(t, errors.ErrState.Is(err))

	_, err = r.Deliver(ctx, info, nil, &weavetest.Tx{Msg: missing})
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, info, nil, &weavetest.Tx{Msg: missing})
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = r.Deliver(ctx, info, nil, &weavetest.Tx{})
	assert.True(t, errors.ErrMsg.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
