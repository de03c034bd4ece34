package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/kitties"
	"github.com/iov-one/kitties/errors"
	"github.com/iov-one/kitties/store"
	"github.com/iov-one/kitties/weavetest/assert"
)

type testConfig struct {
	Limit uint32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Owner string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (c *testConfig) Reset()         { *c = testConfig{} }
func (c *testConfig) String() string { return proto.CompactTextString(c) }
func (*testConfig) ProtoMessage()    {}

func (c *testConfig) Validate() error {
	if c.Limit == 0 {
		return errors.Wrap(errors.ErrEmpty, "limit")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got testConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "test", &got))

	assert.IsErr(t, errors.ErrEmpty, Save(db, "test", &testConfig{Owner: "nobody"}))
	assert.IsErr(t, errors.ErrNotFound, Load(db, "test", &got))

	want := testConfig{Limit: 3, Owner: "alice"}
	assert.Nil(t, Save(db, "test", &want))
	assert.Nil(t, Load(db, "test", &got))
	assert.Equal(t, want, got)

	// Configurations are kept per package.
	var other testConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "other", &other))
	raw, err := db.Get([]byte("_c:test"))
	assert.Nil(t, err)
	if len(raw) == 0 {
		t.Fatal("configuration not stored under the package key")
	}
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		want    testConfig
		wantErr *errors.Error
	}{
		"valid": {
			genesis: `{"conf": {"test": {"limit": 5, "owner": "bob"}}}`,
			want:    testConfig{Limit: 5, Owner: "bob"},
		},
		"missing package": {
			genesis: `{"conf": {"another": {"limit": 5}}}`,
			wantErr: errors.ErrNotFound,
		},
		"missing conf section": {
			genesis: `{}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"test": {"limit": 0}}}`,
			wantErr: errors.ErrEmpty,
		},
		"malformed configuration": {
			genesis: `{"conf": {"test": {"limit": "five"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := InitConfig(db, opts, "test", &testConfig{})
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			var got testConfig
			assert.Nil(t, Load(db, "test", &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
