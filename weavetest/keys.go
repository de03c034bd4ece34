package weavetest

import (
	"encoding/binary"
	"sync/atomic"

	weave "github.com/iov-one/kitties"
)

var condSeq uint64

// NewCondition returns a condition that is unique within the test binary.
func NewCondition() weave.Condition {
	n := atomic.AddUint64(&condSeq, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, n)
	return weave.NewCondition("test", "seq", data)
}

// NewAddress returns an address that is unique within the test binary.
func NewAddress() weave.Address {
	return NewCondition().Address()
}
