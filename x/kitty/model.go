package kitty

import (
	"bytes"
	"fmt"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/orm"
)

// DNASize is the length of a kitty fingerprint.
const DNASize = 16

// Gender is derived from the kitty DNA.
type Gender int32

const (
	GenderInvalid Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return fmt.Sprintf("Gender(%d)", int32(g))
	}
}

// Kitty is a single token kept by the registry. The ID is the DNA of the
// kitty and never changes.
type Kitty struct {
	ID    []byte        `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Owner weave.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/kitties.Address" json:"owner,omitempty"`
	// Price is set when the kitty is for sale.
	Price     *coin.Coin     `protobuf:"bytes,3,opt,name=price,proto3" json:"price,omitempty"`
	Gender    Gender         `protobuf:"varint,4,opt,name=gender,proto3,casttype=Gender" json:"gender,omitempty"`
	CreatedAt weave.UnixTime `protobuf:"varint,5,opt,name=created_at,proto3,casttype=github.com/iov-one/kitties.UnixTime" json:"created_at"`
}

var _ orm.Model = (*Kitty)(nil)

func (k *Kitty) Reset()         { *k = Kitty{} }
func (k *Kitty) String() string { return proto.CompactTextString(k) }
func (*Kitty) ProtoMessage()    {}

// ForSale returns true if the kitty can be bought.
func (k *Kitty) ForSale() bool {
	return k.Price != nil
}

func (k *Kitty) Validate() error {
	var errs error
	if len(k.ID) != DNASize {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrInput, "id must be %d bytes", DNASize))
	}
	errs = errors.Append(errs, errors.Wrap(k.Owner.Validate(), "owner"))
	if k.Price != nil {
		errs = errors.Append(errs, errors.Wrap(validatePrice(*k.Price), "price"))
	}
	if k.Gender != GenderMale && k.Gender != GenderFemale {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrInput, "invalid gender %d", k.Gender))
	}
	errs = errors.Append(errs, errors.Wrap(k.CreatedAt.Validate(), "created at"))
	return errs
}

func (k *Kitty) Copy() orm.CloneableData {
	return &Kitty{
		ID:        append([]byte(nil), k.ID...),
		Owner:     append(weave.Address(nil), k.Owner...),
		Price:     k.Price.Clone(),
		Gender:    k.Gender,
		CreatedAt: k.CreatedAt,
	}
}

func validatePrice(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(errors.ErrAmount, err.Error())
	}
	if !c.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "price must be positive, got %s", c)
	}
	return nil
}

// OwnedKitties lists the IDs of all kitties owned by a single address. The
// order of IDs has no meaning.
type OwnedKitties struct {
	IDs [][]byte `protobuf:"bytes,1,rep,name=ids,proto3" json:"ids,omitempty"`
}

var _ orm.Model = (*OwnedKitties)(nil)

func (o *OwnedKitties) Reset()         { *o = OwnedKitties{} }
func (o *OwnedKitties) String() string { return proto.CompactTextString(o) }
func (*OwnedKitties) ProtoMessage()    {}

func (o *OwnedKitties) Validate() error {
	for i, id := range o.IDs {
		if len(id) != DNASize {
			return errors.Wrapf(errors.ErrInput, "id %d must be %d bytes", i, DNASize)
		}
		if o.position(id) != i {
			return errors.Wrapf(errors.ErrDuplicate, "id %X listed twice", id)
		}
	}
	return nil
}

func (o *OwnedKitties) Copy() orm.CloneableData {
	ids := make([][]byte, len(o.IDs))
	for i, id := range o.IDs {
		ids[i] = append([]byte(nil), id...)
	}
	return &OwnedKitties{IDs: ids}
}

// position returns the index of the first occurrence of given ID or -1.
func (o *OwnedKitties) position(id []byte) int {
	for i, v := range o.IDs {
		if bytes.Equal(v, id) {
			return i
		}
	}
	return -1
}

// DefaultMaxOwned is used when no configuration was stored.
const DefaultMaxOwned = 3

// Configuration is stored in the database using gconf under the "kitty"
// package name.
type Configuration struct {
	// MaxOwned is the number of kitties a single address can own.
	MaxOwned uint32 `protobuf:"varint,1,opt,name=max_owned,proto3" json:"max_owned"`
}

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
	if c.MaxOwned == 0 {
		return errors.Wrap(errors.ErrInput, "max owned must be greater than zero")
	}
	return nil
}
