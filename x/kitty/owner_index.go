package kitty

import (
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/gconf"
	"github.com/iov-one/kitties/orm"
)

// Capacity returns the maximum number of kitties a single owner can hold.
type Capacity func(weave.ReadOnlyKVStore) (uint32, error)

// FixedCapacity always allows n kitties per owner.
func FixedCapacity(n uint32) Capacity {
	return func(weave.ReadOnlyKVStore) (uint32, error) {
		return n, nil
	}
}

// ConfiguredCapacity reads the limit from the configuration stored in the
// database. DefaultMaxOwned is used when no configuration was saved.
func ConfiguredCapacity(db weave.ReadOnlyKVStore) (uint32, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return 0, err
	}
	return conf.MaxOwned, nil
}

// LoadConfiguration returns the configuration stored in the database or the
// default one.
func LoadConfiguration(db weave.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, "kitty", &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{MaxOwned: DefaultMaxOwned}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}

// OwnerIndex maps an owner address to the IDs of the kitties it owns.
type OwnerIndex struct {
	bucket   orm.ModelBucket
	capacity Capacity
}

// NewOwnerIndex returns an index that allows at most capacity kitties per
// owner.
func NewOwnerIndex(capacity Capacity) OwnerIndex {
	return OwnerIndex{
		bucket:   orm.NewModelBucket("kittyown", &OwnedKitties{}),
		capacity: capacity,
	}
}

// List returns the IDs of all kitties owned by given address. Order is not
// meaningful. An unknown owner has no kitties.
func (ix OwnerIndex) List(db weave.ReadOnlyKVStore, owner weave.Address) ([][]byte, error) {
	entry, err := ix.load(db, owner)
	if err != nil {
		return nil, err
	}
	return entry.IDs, nil
}

// Count returns the number of kitties owned by given address.
func (ix OwnerIndex) Count(db weave.ReadOnlyKVStore, owner weave.Address) (int, error) {
	ids, err := ix.List(db, owner)
	return len(ids), err
}

// Add appends the ID to the owner entry. Nothing is written if the owner
// already holds the maximum number of kitties.
func (ix OwnerIndex) Add(db weave.KVStore, owner weave.Address, id []byte) error {
	entry, err := ix.load(db, owner)
	if err != nil {
		return err
	}
	if entry.position(id) >= 0 {
		return errors.Wrapf(errors.ErrDuplicate, "kitty %X already owned by %s", id, owner)
	}
	limit, err := ix.capacity(db)
	if err != nil {
		return errors.Wrap(err, "capacity")
	}
	if len(entry.IDs) >= int(limit) {
		return errors.Wrapf(ErrOwnerCapacity, "%s owns %d kitties", owner, len(entry.IDs))
	}
	entry.IDs = append(entry.IDs, id)
	return ix.bucket.Put(db, owner, entry)
}

// Remove drops the ID from the owner entry. The last ID takes the place of the
// removed one. ErrNotFound is returned if the owner does not list the ID.
func (ix OwnerIndex) Remove(db weave.KVStore, owner weave.Address, id []byte) error {
	entry, err := ix.load(db, owner)
	if err != nil {
		return err
	}
	pos := entry.position(id)
	if pos < 0 {
		return errors.Wrapf(errors.ErrNotFound, "kitty %X not owned by %s", id, owner)
	}
	last := len(entry.IDs) - 1
	entry.IDs[pos] = entry.IDs[last]
	entry.IDs = entry.IDs[:last]

	if len(entry.IDs) == 0 {
		return ix.bucket.Delete(db, owner)
	}
	return ix.bucket.Put(db, owner, entry)
}

// Each calls fn for every owner with at least one kitty.
func (ix OwnerIndex) Each(db weave.ReadOnlyKVStore, fn func(owner weave.Address, ids [][]byte) error) error {
	return ix.bucket.Iterate(db, func(key []byte, m orm.Model) error {
		entry, ok := m.(*OwnedKitties)
		if !ok {
			return errors.Wrapf(errors.ErrType, "unexpected %T under %X", m, key)
		}
		return fn(weave.Address(key), entry.IDs)
	})
}

func (ix OwnerIndex) load(db weave.ReadOnlyKVStore, owner weave.Address) (*OwnedKitties, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	var entry OwnedKitties
	switch err := ix.bucket.One(db, owner, &entry); {
	case err == nil:
		return &entry, nil
	case errors.ErrNotFound.Is(err):
		return &OwnedKitties{}, nil
	default:
		return nil, err
	}
}
