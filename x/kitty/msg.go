package kitty

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
)

// CreateKittyMsg mints a new kitty owned by the signer.
type CreateKittyMsg struct{}

var _ weave.Msg = (*CreateKittyMsg)(nil)

func (m *CreateKittyMsg) Reset()         { *m = CreateKittyMsg{} }
func (m *CreateKittyMsg) String() string { return proto.CompactTextString(m) }
func (*CreateKittyMsg) ProtoMessage()    {}

func (CreateKittyMsg) Path() string {
	return "kitty/create"
}

func (m *CreateKittyMsg) Validate() error {
	return nil
}

// SetPriceMsg lists the kitty for sale. An empty price removes the kitty from
// sale.
type SetPriceMsg struct {
	KittyID []byte     `protobuf:"bytes,1,opt,name=kitty_id,proto3" json:"kitty_id,omitempty"`
	Price   *coin.Coin `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
}

var _ weave.Msg = (*SetPriceMsg)(nil)

func (m *SetPriceMsg) Reset()         { *m = SetPriceMsg{} }
func (m *SetPriceMsg) String() string { return proto.CompactTextString(m) }
func (*SetPriceMsg) ProtoMessage()    {}

func (SetPriceMsg) Path() string {
	return "kitty/set_price"
}

func (m *SetPriceMsg) Validate() error {
	errs := validateID(m.KittyID)
	if m.Price != nil {
		errs = errors.Append(errs, errors.Wrap(validatePrice(*m.Price), "price"))
	}
	return errs
}

// TransferKittyMsg gives the kitty to the recipient.
type TransferKittyMsg struct {
	KittyID   []byte        `protobuf:"bytes,1,opt,name=kitty_id,proto3" json:"kitty_id,omitempty"`
	Recipient weave.Address `protobuf:"bytes,2,opt,name=recipient,proto3,casttype=github.com/iov-one/kitties.Address" json:"recipient,omitempty"`
}

var _ weave.Msg = (*TransferKittyMsg)(nil)

func (m *TransferKittyMsg) Reset()         { *m = TransferKittyMsg{} }
func (m *TransferKittyMsg) String() string { return proto.CompactTextString(m) }
func (*TransferKittyMsg) ProtoMessage()    {}

func (TransferKittyMsg) Path() string {
	return "kitty/transfer"
}

func (m *TransferKittyMsg) Validate() error {
	return errors.Append(
		validateID(m.KittyID),
		errors.Wrap(m.Recipient.Validate(), "recipient"),
	)
}

// BuyKittyMsg buys the kitty for its listed price.
type BuyKittyMsg struct {
	KittyID []byte `protobuf:"bytes,1,opt,name=kitty_id,proto3" json:"kitty_id,omitempty"`
}

var _ weave.Msg = (*BuyKittyMsg)(nil)

func (m *BuyKittyMsg) Reset()         { *m = BuyKittyMsg{} }
func (m *BuyKittyMsg) String() string { return proto.CompactTextString(m) }
func (*BuyKittyMsg) ProtoMessage()    {}

func (BuyKittyMsg) Path() string {
	return "kitty/buy"
}

func (m *BuyKittyMsg) Validate() error {
	return validateID(m.KittyID)
}

func validateID(id []byte) error {
	if len(id) != DNASize {
		return errors.Wrapf(errors.ErrInput, "kitty id must be %d bytes, got %d", DNASize, len(id))
	}
	return nil
}
