package cash

import (
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/coin"
	"github.com/iov-one/kitties/errors"
)

// Controller is the functionality needed by cash.Handler and cash.Decorator.
// BaseController should work plenty fine, but you can add other logic if so
// desired
type Controller interface {
	Balance(weave.ReadOnlyKVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// BaseController is a simple implementation of controller backed by the
// wallet bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of all coins owned by the address. An address
// that never received anything owns nothing.
func (c BaseController) Balance(db weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}
	w, err := c.bucket.GetOrEmpty(db, addr)
	if err != nil {
		return nil, err
	}
	return w.Balance(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", amount)
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.bucket.GetOrEmpty(db, src)
	if err != nil {
		return errors.Wrap(err, "sender")
	}
	if sender.Balance().IsEmpty() {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Balance().Contains(amount) {
		return errors.Wrapf(errors.ErrAmount, "funds %s, want %s", sender.Balance(), amount)
	}

	// Sending to yourself is a valid noop.
	if src.Equals(dest) {
		return nil
	}

	remaining, err := sender.Balance().Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "subtract")
	}
	if err := c.bucket.Save(db, src, &Wallet{Coins: remaining}); err != nil {
		return errors.Wrap(err, "save sender")
	}

	recipient, err := c.bucket.GetOrEmpty(db, dest)
	if err != nil {
		return errors.Wrap(err, "recipient")
	}
	received, err := recipient.Balance().Add(amount)
	if err != nil {
		return errors.Wrap(err, "add")
	}
	if err := c.bucket.Save(db, dest, &Wallet{Coins: received}); err != nil {
		return errors.Wrap(err, "save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db weave.KVStore, dest weave.Address, amount coin.Coin) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.bucket.GetOrEmpty(db, dest)
	if err != nil {
		return err
	}
	issued, err := w.Balance().Add(amount)
	if err != nil {
		return err
	}
	return c.bucket.Save(db, dest, &Wallet{Coins: issued})
}
