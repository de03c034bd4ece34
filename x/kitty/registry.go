package kitty

import (
	"bytes"
	"context"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/orm"
)

// Ledger moves the coins paid for a kitty. It is implemented by
// cash.BaseController.
type Ledger interface {
	Balance(db weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error)
	MoveCoins(db weave.KVStore, src, dest weave.Address, amount coin.Coin) error
}

// dnaSubject is the entropy subject used when minting.
var dnaSubject = []byte("dna")

// Registry executes all kitty operations. It is the only component that
// writes to the kitty bucket and the owner index.
//
// Every mutating method runs in its own cache wrap of the given store, which
// is written only if the whole operation succeeds. A failed operation leaves
// the store untouched. Registry does no locking, calls must be serialized by
// the caller.
type Registry struct {
	kitties  KittyBucket
	owners   OwnerIndex
	counter  orm.Sequence
	entropy  EntropySource
	ledger   Ledger
	observer Observer
}

// NewRegistry returns a registry using the configured owner capacity and
// logging all changes.
func NewRegistry(entropy EntropySource, ledger Ledger) *Registry {
	kitties := NewKittyBucket()
	return &Registry{
		kitties:  kitties,
		owners:   NewOwnerIndex(ConfiguredCapacity),
		counter:  kitties.Sequence("count"),
		entropy:  entropy,
		ledger:   ledger,
		observer: LogObserver{},
	}
}

// WithCapacity returns a copy of the registry using given owner capacity.
func (r *Registry) WithCapacity(c Capacity) *Registry {
	cp := *r
	cp.owners = NewOwnerIndex(c)
	return &cp
}

// WithObserver returns a copy of the registry that additionally notifies o.
func (r *Registry) WithObserver(o Observer) *Registry {
	cp := *r
	cp.observer = Observers{r.observer, o}
	return &cp
}

// Mint creates a new kitty owned by the caller.
func (r *Registry) Mint(ctx context.Context, info weave.BlockInfo, db weave.KVStore, caller weave.Address) (*Kitty, error) {
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	seq, height := mintContext(ctx, info)
	dna, gender := GenerateIdentity(r.entropy.Random(info, dnaSubject), seq, height)
	k := &Kitty{
		ID:        dna,
		Owner:     caller,
		Gender:    gender,
		CreatedAt: blockTime(info),
	}

	err := r.atomic(info, db, func(db weave.KVStore) error {
		switch exists, err := r.kitties.Exists(db, k.ID); {
		case err != nil:
			return err
		case exists:
			return errors.Wrapf(ErrDuplicateIdentity, "kitty %X", k.ID)
		}
		if err := r.kitties.Save(db, k); err != nil {
			return errors.Wrap(err, "save kitty")
		}
		if err := r.owners.Add(db, caller, k.ID); err != nil {
			return err
		}
		if _, err := r.counter.NextInt(db); err != nil {
			return errors.Wrap(err, "counter")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.observer.KittyCreated(info, k)
	return k, nil
}

// SetPrice lists the kitty for sale. A nil price removes the kitty from sale.
func (r *Registry) SetPrice(ctx context.Context, info weave.BlockInfo, db weave.KVStore, caller weave.Address, id []byte, price *coin.Coin) (*Kitty, error) {
	var k *Kitty
	err := r.atomic(info, db, func(db weave.KVStore) error {
		var err error
		if k, err = r.owned(db, caller, id); err != nil {
			return err
		}
		if price != nil {
			if err := validatePrice(*price); err != nil {
				return err
			}
		}
		k.Price = price.Clone()
		if err := r.kitties.Save(db, k); err != nil {
			return errors.Wrap(err, "save kitty")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.observer.PriceSet(info, k)
	return k, nil
}

// Transfer gives the kitty to another owner. The kitty is no longer for sale
// afterwards.
func (r *Registry) Transfer(ctx context.Context, info weave.BlockInfo, db weave.KVStore, caller, to weave.Address, id []byte) (*Kitty, error) {
	if err := to.Validate(); err != nil {
		return nil, errors.Wrap(err, "recipient")
	}
	var k *Kitty
	err := r.atomic(info, db, func(db weave.KVStore) error {
		var err error
		if k, err = r.owned(db, caller, id); err != nil {
			return err
		}
		if caller.Equals(to) {
			return errors.Wrapf(ErrSelfTransfer, "kitty %X", id)
		}
		return r.move(db, k, to)
	})
	if err != nil {
		return nil, err
	}
	r.observer.KittyTransferred(info, caller, k)
	return k, nil
}

// Buy pays the listed price to the owner and transfers the kitty to the
// caller. Payment and transfer either both happen or none does.
func (r *Registry) Buy(ctx context.Context, info weave.BlockInfo, db weave.KVStore, caller weave.Address, id []byte) (*Kitty, error) {
	if err := caller.Validate(); err != nil {
		return nil, errors.Wrap(err, "caller")
	}
	var (
		k      *Kitty
		seller weave.Address
	)
	err := r.atomic(info, db, func(db weave.KVStore) error {
		var err error
		if k, err = r.kitties.Get(db, id); err != nil {
			return err
		}
		if !k.ForSale() {
			return errors.Wrapf(ErrNotForSale, "kitty %X", id)
		}
		price := *k.Price
		balance, err := r.ledger.Balance(db, caller)
		if err != nil {
			return errors.Wrap(err, "balance")
		}
		if !balance.Contains(price) {
			return errors.Wrapf(ErrInsufficientFunds, "price %s, funds %v", price, balance)
		}
		if k.Owner.Equals(caller) {
			return errors.Wrapf(ErrSelfTransfer, "kitty %X", id)
		}
		seller = k.Owner
		if err := r.ledger.MoveCoins(db, caller, seller, price); err != nil {
			return errors.Wrap(err, "payment")
		}
		return r.move(db, k, caller)
	})
	if err != nil {
		return nil, err
	}
	r.observer.KittyTransferred(info, seller, k)
	return k, nil
}

// Kitty returns the kitty with given ID.
func (r *Registry) Kitty(db weave.ReadOnlyKVStore, id []byte) (*Kitty, error) {
	return r.kitties.Get(db, id)
}

// OwnedBy returns all kitties of the owner. Order is not meaningful.
func (r *Registry) OwnedBy(db weave.ReadOnlyKVStore, owner weave.Address) ([]*Kitty, error) {
	ids, err := r.owners.List(db, owner)
	if err != nil {
		return nil, err
	}
	kitties := make([]*Kitty, 0, len(ids))
	for _, id := range ids {
		k, err := r.kitties.Get(db, id)
		if err != nil {
			if errors.ErrNotFound.Is(err) {
				return nil, errors.Wrapf(ErrInconsistentState, "indexed kitty %X does not exist", id)
			}
			return nil, err
		}
		kitties = append(kitties, k)
	}
	return kitties, nil
}

// Count returns the number of kitties ever minted.
func (r *Registry) Count(db weave.ReadOnlyKVStore) (int64, error) {
	return r.counter.Latest(db)
}

// CheckInvariants verifies that every kitty is listed by exactly one owner
// entry, that this owner is the one recorded on the kitty, that no entry lists
// a kitty that does not exist and that the mint counter matches the number of
// kitties. ErrInconsistentState is returned on the first violation found.
func (r *Registry) CheckInvariants(db weave.ReadOnlyKVStore) error {
	owners := make(map[string]weave.Address)
	err := r.kitties.Each(db, func(k *Kitty) error {
		if err := k.Validate(); err != nil {
			return errors.Wrapf(ErrInconsistentState, "kitty %X: %s", k.ID, err)
		}
		owners[string(k.ID)] = k.Owner
		return nil
	})
	if err != nil {
		return err
	}

	indexed := make(map[string]bool, len(owners))
	err = r.owners.Each(db, func(owner weave.Address, ids [][]byte) error {
		for _, id := range ids {
			recorded, ok := owners[string(id)]
			if !ok {
				return errors.Wrapf(ErrInconsistentState, "%s lists missing kitty %X", owner, id)
			}
			if !bytes.Equal(recorded, owner) {
				return errors.Wrapf(ErrInconsistentState, "%s lists kitty %X owned by %s", owner, id, recorded)
			}
			if indexed[string(id)] {
				return errors.Wrapf(ErrInconsistentState, "kitty %X listed twice", id)
			}
			indexed[string(id)] = true
		}
		return nil
	})
	if err != nil {
		return err
	}
	for id, owner := range owners {
		if !indexed[id] {
			return errors.Wrapf(ErrInconsistentState, "kitty %X of %s is not indexed", []byte(id), owner)
		}
	}

	count, err := r.Count(db)
	if err != nil {
		return err
	}
	if count != int64(len(owners)) {
		return errors.Wrapf(ErrInconsistentState, "counter %d, kitties %d", count, len(owners))
	}
	return nil
}

// owned loads the kitty and ensures it belongs to the caller.
func (r *Registry) owned(db weave.KVStore, caller weave.Address, id []byte) (*Kitty, error) {
	k, err := r.kitties.Get(db, id)
	if err != nil {
		return nil, err
	}
	if !k.Owner.Equals(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "kitty %X is not owned by %s", id, caller)
	}
	return k, nil
}

// move changes the owner of the kitty in both stores and removes it from
// sale.
func (r *Registry) move(db weave.KVStore, k *Kitty, to weave.Address) error {
	if err := r.owners.Remove(db, k.Owner, k.ID); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(ErrInconsistentState, "kitty %X missing from %s index entry", k.ID, k.Owner)
		}
		return err
	}
	k.Owner = to
	k.Price = nil
	if err := r.kitties.Save(db, k); err != nil {
		return errors.Wrap(err, "save kitty")
	}
	return r.owners.Add(db, to, k.ID)
}

// atomic runs fn on a cache wrap of db. The wrap is written only if fn
// succeeds.
func (r *Registry) atomic(info weave.BlockInfo, db weave.KVStore, fn func(weave.KVStore) error) error {
	cdb, ok := db.(weave.CacheableKVStore)
	if !ok {
		return errors.Wrapf(errors.ErrHuman, "%T does not support cache wrap", db)
	}
	cache := cdb.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		if ErrInconsistentState.Is(err) {
			info.Logger().Error("kitty registry corrupted", "invariant", "owner index", "err", err)
		}
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func blockTime(info weave.BlockInfo) weave.UnixTime {
	// Blocks without time are used by tests.
	if info.BlockTime().IsZero() {
		return 0
	}
	return info.UnixTime()
}
