package auth

import (
	"regexp"

	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
)

// SignedTx represents a transaction that declares who authorized it. The
// host is responsible for making sure the declared signers are genuine
// before the transaction is processed.
type SignedTx interface {
	weave.Tx

	// GetSigners returns the conditions of everyone who authorized this
	// transaction.
	GetSigners() []weave.Condition
}

var isName = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-.]{1,31}$`).MatchString

// NameCondition returns the condition of a principal identified by a local
// name, as used by the command line tool.
func NameCondition(name string) (weave.Condition, error) {
	if !isName(name) {
		return nil, errors.Wrapf(errors.ErrInput, "invalid name %q", name)
	}
	return weave.NewCondition("cli", "name", []byte(name)), nil
}

// NameAddress returns the address of a principal identified by a local name.
func NameAddress(name string) (weave.Address, error) {
	c, err := NameCondition(name)
	if err != nil {
		return nil, err
	}
	return c.Address(), nil
}
