package cash

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds all coins owned by a single address. Coins are always kept in
// the normalized form.
type Wallet struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Reset()         { *w = Wallet{} }
func (w *Wallet) String() string { return proto.CompactTextString(w) }
func (*Wallet) ProtoMessage()    {}

// Balance returns the wallet content as a coin set.
func (w *Wallet) Balance() coin.Coins {
	return coin.Coins(w.Coins)
}

// Validate requires that all coins are in alphabetical order and that none
// of them is empty or negative.
func (w *Wallet) Validate() error {
	coins := coin.Coins(w.Coins)
	if err := coins.Validate(); err != nil {
		return err
	}
	if !coins.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative wallet balance")
	}
	return nil
}

// Copy makes a new wallet with the same coins.
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{Coins: coin.Coins(w.Coins).Clone()}
}

// Bucket is a type-safe wrapper around orm.ModelBucket. Wallets are stored
// under the owner address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Wallet{}),
	}
}

// GetOrEmpty returns the wallet stored under given address or an empty
// wallet if the address owns nothing.
func (b Bucket) GetOrEmpty(db weave.ReadOnlyKVStore, addr weave.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}

// Save writes the wallet under given address. Empty wallets are removed from
// the store.
func (b Bucket) Save(db weave.KVStore, addr weave.Address, w *Wallet) error {
	if len(w.Coins) == 0 {
		err := b.Delete(db, addr)
		if errors.ErrNotFound.Is(err) {
			return nil
		}
		return err
	}
	return b.Put(db, addr, w)
}
