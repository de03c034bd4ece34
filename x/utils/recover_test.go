package utils

import (
	"context"
	"testing"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/store"
	"github.com/iov-one/kitties/weavetest"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := weavetest.PanicHandler{Value: "kaboom"}
	r := NewRecovery()

	ctx := context.Background()
	info := weave.BlockInfo{}
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { _, _ = h.Check(ctx, info, s, nil) })
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, info, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, info, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, info, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
}
