package app

import (
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/x/auth"
)

// Tx is a transaction that was already authenticated by the host. It carries
// a single message and the conditions of everyone who signed it.
type Tx struct {
	Signers []weave.Condition
	Msg     weave.Msg
}

var _ auth.SignedTx = (*Tx)(nil)

// NewTx returns a transaction for msg signed by all given conditions.
func NewTx(msg weave.Msg, signers ...weave.Condition) *Tx {
	return &Tx{Signers: signers, Msg: msg}
}

func (tx *Tx) GetMsg() (weave.Msg, error) {
	return tx.Msg, nil
}

func (tx *Tx) GetSigners() []weave.Condition {
	return tx.Signers
}
