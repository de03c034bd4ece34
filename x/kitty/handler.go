package kitty

import (
	"context"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/x"
)

// RegisterRoutes registers handlers for all kitty messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, registry *Registry) {
	r.Handle(&CreateKittyMsg{}, NewCreateKittyHandler(auth, registry))
	r.Handle(&SetPriceMsg{}, NewSetPriceHandler(auth, registry))
	r.Handle(&TransferKittyMsg{}, NewTransferKittyHandler(auth, registry))
	r.Handle(&BuyKittyMsg{}, NewBuyKittyHandler(auth, registry))
}

// CreateKittyHandler mints kitties for the main signer.
type CreateKittyHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ weave.Handler = CreateKittyHandler{}

func NewCreateKittyHandler(auth x.Authenticator, registry *Registry) CreateKittyHandler {
	return CreateKittyHandler{auth: auth, registry: registry}
}

func (h CreateKittyHandler) Check(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg CreateKittyMsg
	if _, err := load(ctx, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h CreateKittyHandler) Deliver(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg CreateKittyMsg
	caller, err := load(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	tags := &TagObserver{}
	k, err := h.registry.WithObserver(tags).Mint(ctx, info, db, caller)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: k.ID, Tags: tags.Tags}, nil
}

// SetPriceHandler changes the price of a kitty.
type SetPriceHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ weave.Handler = SetPriceHandler{}

func NewSetPriceHandler(auth x.Authenticator, registry *Registry) SetPriceHandler {
	return SetPriceHandler{auth: auth, registry: registry}
}

func (h SetPriceHandler) Check(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg SetPriceMsg
	if _, err := load(ctx, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h SetPriceHandler) Deliver(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg SetPriceMsg
	caller, err := load(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	tags := &TagObserver{}
	k, err := h.registry.WithObserver(tags).SetPrice(ctx, info, db, caller, msg.KittyID, msg.Price)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: k.ID, Tags: tags.Tags}, nil
}

// TransferKittyHandler gives a kitty away.
type TransferKittyHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ weave.Handler = TransferKittyHandler{}

func NewTransferKittyHandler(auth x.Authenticator, registry *Registry) TransferKittyHandler {
	return TransferKittyHandler{auth: auth, registry: registry}
}

func (h TransferKittyHandler) Check(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg TransferKittyMsg
	if _, err := load(ctx, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h TransferKittyHandler) Deliver(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg TransferKittyMsg
	caller, err := load(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	tags := &TagObserver{}
	k, err := h.registry.WithObserver(tags).Transfer(ctx, info, db, caller, msg.Recipient, msg.KittyID)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: k.ID, Tags: tags.Tags}, nil
}

// BuyKittyHandler buys a kitty for the main signer.
type BuyKittyHandler struct {
	auth     x.Authenticator
	registry *Registry
}

var _ weave.Handler = BuyKittyHandler{}

func NewBuyKittyHandler(auth x.Authenticator, registry *Registry) BuyKittyHandler {
	return BuyKittyHandler{auth: auth, registry: registry}
}

func (h BuyKittyHandler) Check(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg BuyKittyMsg
	if _, err := load(ctx, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h BuyKittyHandler) Deliver(ctx context.Context, info weave.BlockInfo, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg BuyKittyMsg
	caller, err := load(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	tags := &TagObserver{}
	k, err := h.registry.WithObserver(tags).Buy(ctx, info, db, caller, msg.KittyID)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: k.ID, Tags: tags.Tags}, nil
}

// load unpacks the message into dst and returns the address of the main
// signer.
func load(ctx context.Context, auth x.Authenticator, tx weave.Tx, dst weave.Msg) (weave.Address, error) {
	if err := weave.LoadMsg(tx, dst); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return signer.Address(), nil
}
