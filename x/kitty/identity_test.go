package kitty

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/kitties/weavetest/assert"
)

func TestGenerateIdentity(t *testing.T) {
	cases := map[string]struct {
		seed       []byte
		seq        uint32
		height     int64
		wantDNA    string
		wantGender Gender
	}{
		"empty seed": {
			seed:       nil,
			seq:        0,
			height:     0,
			wantDNA:    "5CF0479A381380026A05C1E7BC18BFBB",
			wantGender: GenderMale,
		},
		"even first byte": {
			seed:       []byte("seed"),
			seq:        7,
			height:     42,
			wantDNA:    "82460D3507C1A615508986F1FA36B69D",
			wantGender: GenderMale,
		},
		"odd first byte": {
			seed:       []byte("seed"),
			seq:        1,
			height:     42,
			wantDNA:    "B3D94CE92A9A8F7675478C437A5756AB",
			wantGender: GenderFemale,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dna, gender := GenerateIdentity(tc.seed, tc.seq, tc.height)
			assert.Equal(t, DNASize, len(dna))
			assert.Equal(t, tc.wantDNA, strings.ToUpper(hex.EncodeToString(dna)))
			assert.Equal(t, tc.wantGender, gender)
		})
	}
}

func TestGenerateIdentityIsDeterministic(t *testing.T) {
	a, ga := GenerateIdentity([]byte("seed"), 3, 10)
	b, gb := GenerateIdentity([]byte("seed"), 3, 10)
	assert.Equal(t, a, b)
	assert.Equal(t, ga, gb)

	// Every part of the context changes the result.
	variants := [][]byte{
		first(GenerateIdentity([]byte("other"), 3, 10)),
		first(GenerateIdentity([]byte("seed"), 4, 10)),
		first(GenerateIdentity([]byte("seed"), 3, 11)),
	}
	for i, v := range variants {
		if bytes.Equal(a, v) {
			t.Fatalf("variant %d produced the same DNA", i)
		}
	}
}

func TestGenderFollowsDNA(t *testing.T) {
	for i := 0; i < 64; i++ {
		dna, gender := GenerateIdentity([]byte{byte(i)}, uint32(i), int64(i))
		want := GenderFemale
		if dna[0]%2 == 0 {
			want = GenderMale
		}
		assert.Equal(t, want, gender)
	}
}

func first(dna []byte, _ Gender) []byte {
	return dna
}
