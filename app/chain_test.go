package app

import (
	"context"
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/weavetest"
	"github.com/iov-one/kitties/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	c3 := &weavetest.Decorator{}
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		nil,
		utils.NewRecovery(),
		c2,
		c3,
	).WithHandler(h)

	info, err := weave.NewBlockInfo(headerAt(4), "test-chain", nil)
	require.NoError(t, err)
	bg := context.Background()

	_, err = stack.Check(bg, info, nil, &weavetest.Tx{})
	assert.NoError(t, err)
	_, err = stack.Deliver(bg, info, nil, &weavetest.Tx{})
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a panic in the handler is recovered before reaching c1
	panicking := ChainDecorators(c1, utils.NewRecovery(), c2).
		WithHandler(weavetest.PanicHandler{Value: "boom"})
	_, err = panicking.Deliver(bg, info, nil, &weavetest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())

	// a failing decorator stops the chain
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(bg, info, nil, &weavetest.Tx{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}
