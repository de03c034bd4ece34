package kitty

import (
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/orm"
)

// KittyBucket stores kitties under their DNA.
type KittyBucket struct {
	orm.ModelBucket
}

// NewKittyBucket returns a bucket for managing kitties.
func NewKittyBucket() KittyBucket {
	return KittyBucket{
		ModelBucket: orm.NewModelBucket("kitty", &Kitty{}),
	}
}

// Get returns the kitty with given ID. ErrNotFound is returned if the kitty
// does not exist.
func (b KittyBucket) Get(db weave.ReadOnlyKVStore, id []byte) (*Kitty, error) {
	var k Kitty
	if err := b.One(db, id, &k); err != nil {
		return nil, errors.Wrapf(err, "kitty %X", id)
	}
	return &k, nil
}

// Save inserts the kitty or replaces a stored one with the same ID.
func (b KittyBucket) Save(db weave.KVStore, k *Kitty) error {
	return b.Put(db, k.ID, k)
}

// Exists returns true if a kitty with given ID is stored.
func (b KittyBucket) Exists(db weave.ReadOnlyKVStore, id []byte) (bool, error) {
	switch err := b.Has(db, id); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Each calls fn for every stored kitty, ordered by ID.
func (b KittyBucket) Each(db weave.ReadOnlyKVStore, fn func(*Kitty) error) error {
	return b.Iterate(db, func(key []byte, m orm.Model) error {
		k, ok := m.(*Kitty)
		if !ok {
			return errors.Wrapf(errors.ErrType, "unexpected %T under %X", m, key)
		}
		return fn(k)
	})
}
