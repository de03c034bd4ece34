package main

import (
	"encoding/hex"
	"strconv"
	"time"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/app"
	kapp "github.com/iov-one/kitties/cmd/kittyd/app"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/store/iavl"
	"github.com/iov-one/kitties/x/auth"
	"github.com/iov-one/kitties/x/kitty"
)

// node is an application opened over the database in the home directory.
type node struct {
	kv       *iavl.CommitStore
	app      *app.Application
	registry *kitty.Registry
}

func (c *cli) open() (*node, error) {
	var entropy kitty.EntropySource = kitty.HeaderEntropy{}
	if c.cfg.Seed != "" {
		entropy = kitty.SeededEntropy{Seed: []byte(c.cfg.Seed)}
	}
	kv := kapp.CommitKVStore(c.dbPath())
	a, err := kapp.Application("kittyd", kv, entropy, c.logger)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return &node{
		kv:       kv,
		app:      a,
		registry: kapp.Registry(entropy),
	}, nil
}

func (n *node) Close() {
	n.kv.Close()
}

// deliver executes msg signed by the caller as a new block.
func (n *node) deliver(caller weave.Condition, msg weave.Msg) (*weave.DeliverResult, error) {
	res, err := n.app.DeliverBlock(time.Now(), app.NewTx(msg, caller))
	if err != nil {
		return nil, err
	}
	return res.Results[0], nil
}

// withNode opens the node, runs fn and closes the node.
func (c *cli) withNode(fn func(*node) error) error {
	n, err := c.open()
	if err != nil {
		return err
	}
	defer n.Close()
	return fn(n)
}

// caller returns the condition of the principal named by --as.
func (c *cli) caller(flags interface{ GetString(string) (string, error) }) (weave.Condition, error) {
	name, err := flags.GetString(flagAs)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller name required, use --as")
	}
	return auth.NameCondition(name)
}

// parseAddress accepts a caller name or any address format understood by
// weave.Address: hex, "bech32:<addr>" or "cond:<condition>".
func parseAddress(s string) (weave.Address, error) {
	if addr, err := auth.NameAddress(s); err == nil {
		return addr, nil
	}
	var addr weave.Address
	if err := addr.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid address %q", s)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

func parseKittyID(s string) ([]byte, error) {
	id, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "kitty id: %s", err)
	}
	if len(id) != kitty.DNASize {
		return nil, errors.Wrapf(errors.ErrInput, "kitty id must be %d bytes", kitty.DNASize)
	}
	return id, nil
}
