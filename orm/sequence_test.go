package orm

import (
	"testing"

	"github.com/iov-one/kitties/store"
	"github.com/iov-one/kitties/weavetest/assert"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("kitty", "minted")

	latest, err := s.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), latest)

	n, err := s.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)

	bz, err := s.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(2), bz)

	latest, err = s.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), latest)

	// Other sequences are independent.
	o := NewSequence("kitty", "other")
	latest, err = o.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), latest)
}
