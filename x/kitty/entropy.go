package kitty

import (
	"context"
	"encoding/binary"

	weave "github.com/iov-one/kitties"
	"golang.org/x/crypto/blake2b"
)

// EntropySource provides random bytes for the subject within the block
// described by info. The result must not be predictable by anyone submitting
// a transaction to that block.
type EntropySource interface {
	Random(info weave.BlockInfo, subject []byte) []byte
}

// HeaderEntropy derives randomness from the block header. The previous block
// hash and the application hash are unknown until the previous block is
// committed.
type HeaderEntropy struct{}

var _ EntropySource = HeaderEntropy{}

func (HeaderEntropy) Random(info weave.BlockInfo, subject []byte) []byte {
	header := info.Header()
	h, _ := blake2b.New256(nil)
	h.Write(header.LastBlockId.Hash)
	h.Write(header.AppHash)
	h.Write([]byte(info.ChainID()))
	h.Write(binary.BigEndian.AppendUint64(nil, uint64(info.Height())))
	h.Write(subject)
	return h.Sum(nil)
}

// SeededEntropy always returns the same value for the same subject.
type SeededEntropy struct {
	Seed []byte
}

var _ EntropySource = SeededEntropy{}

func (s SeededEntropy) Random(_ weave.BlockInfo, subject []byte) []byte {
	h, _ := blake2b.New256(nil)
	h.Write(s.Seed)
	h.Write(subject)
	return h.Sum(nil)
}

// mintContext returns the position of the transaction within the block and
// the block height, used when generating a new identity.
func mintContext(ctx context.Context, info weave.BlockInfo) (uint32, int64) {
	seq, _ := weave.GetTxIndex(ctx)
	return seq, info.Height()
}
