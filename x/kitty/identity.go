package kitty

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// GenerateIdentity derives the DNA of a new kitty from the entropy seed, the
// position of the transaction within the block and the block height.
//
// The fingerprint is a 16 byte blake2b hash of
//
//	seed || uint32le(seq) || uint64le(height)
//
// and the gender is taken from the first byte of the fingerprint: even is
// male, odd is female.
func GenerateIdentity(seed []byte, seq uint32, height int64) ([]byte, Gender) {
	payload := make([]byte, 0, len(seed)+4+8)
	payload = append(payload, seed...)
	payload = binary.LittleEndian.AppendUint32(payload, seq)
	payload = binary.LittleEndian.AppendUint64(payload, uint64(height))

	h, err := blake2b.New(DNASize, nil)
	if err != nil {
		// Only an invalid size or key can fail.
		panic(err)
	}
	h.Write(payload)
	dna := h.Sum(nil)
	return dna, genderOf(dna)
}

func genderOf(dna []byte) Gender {
	if dna[0]%2 == 0 {
		return GenderMale
	}
	return GenderFemale
}
