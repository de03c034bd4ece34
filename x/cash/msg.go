package cash

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
)

const maxMemoSize int = 128

// SendMsg is a request to move these coins from the given
// source to the given destination address.
type SendMsg struct {
	Src    weave.Address `protobuf:"bytes,1,opt,name=src,proto3,casttype=github.com/iov-one/kitties.Address" json:"src,omitempty"`
	Dest   weave.Address `protobuf:"bytes,2,opt,name=dest,proto3,casttype=github.com/iov-one/kitties.Address" json:"dest,omitempty"`
	Amount *coin.Coin    `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	// max length 128 character
	Memo string `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

// Ensure we implement the Msg interface
var _ weave.Msg = (*SendMsg)(nil)

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var err error
	if coin.IsEmpty(m.Amount) || !m.Amount.IsPositive() {
		err = errors.Wrapf(errors.ErrAmount, "non-positive SendMsg: %v", m.Amount)
	} else {
		err = errors.Append(err, errors.Wrap(m.Amount.Validate(), "amount"))
	}
	err = errors.Append(err, errors.Wrap(m.Src.Validate(), "src"))
	err = errors.Append(err, errors.Wrap(m.Dest.Validate(), "dest"))
	if len(m.Memo) > maxMemoSize {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "memo too long"))
	}
	return err
}
