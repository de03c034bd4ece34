package kitty

import (
	"github.com/iov-one/kitties/errors"
)

// Errors specific to the kitty registry. Not owning a kitty is reported using
// errors.ErrUnauthorized and a missing kitty using errors.ErrNotFound.
var (
	ErrSelfTransfer      = errors.Register(300, "self transfer")
	ErrNotForSale        = errors.Register(301, "not for sale")
	ErrInsufficientFunds = errors.Register(302, "insufficient funds")
	ErrOwnerCapacity     = errors.Register(303, "owner capacity exceeded")
	ErrInconsistentState = errors.Register(304, "inconsistent state")
	ErrDuplicateIdentity = errors.Register(305, "duplicate identity")
)
