/*
Package auth provides basic authentication middleware. The Decorator
reads the signers declared by the transaction and exposes them to the
handlers through Authenticate.
*/
package auth

import (
	"context"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
)

// Decorator reads the signers from the transaction before calling down the
// stack.
type Decorator struct {
	allowMissing bool
}

var _ weave.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator, which requires
// at least one signer on every transaction.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissing = true
	return d
}

// Check verifies signers before calling down the stack.
func (d Decorator) Check(ctx context.Context, info weave.BlockInfo, store weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	ctx, err := d.authenticate(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, info, store, tx)
}

// Deliver verifies signers before calling down the stack.
func (d Decorator) Deliver(ctx context.Context, info weave.BlockInfo, store weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, info, store, tx)
}

func (d Decorator) authenticate(ctx context.Context, tx weave.Tx) (context.Context, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		if d.allowMissing {
			return ctx, nil
		}
		return nil, errors.Wrapf(errors.ErrUnauthorized, "unsigned transaction %T", tx)
	}

	signers := stx.GetSigners()
	if len(signers) == 0 && !d.allowMissing {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	for i, s := range signers {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(err, "signer %d", i)
		}
	}
	return withSigners(ctx, signers), nil
}
