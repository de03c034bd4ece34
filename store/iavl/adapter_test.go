package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/kitties/store"
	"github.com/iov-one/kitties/weavetest/assert"
)

// makeBase returns the base layer
//
// If you want to test a different kvstore implementation
// you can copy most of these tests and change makeBase.
// Once that passes, customize and extend as you wish
func makeBase() (store.CacheableKVStore, func()) {
	commit, close := makeCommitStore()
	return commit.Adapter(), close
}

func makeCommitStore() (*CommitStore, func()) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		panic(err)
	}
	commit := NewCommitStore(tmpDir, "base")
	close := func() {
		commit.Close()
		os.RemoveAll(tmpDir)
	}
	return commit, close
}

var suite = store.NewTestSuite(makeBase)

func TestCacheGetSet(t *testing.T) { suite.GetSet(t) }
func TestCacheConflicts(t *testing.T) { suite.CacheConflicts(t) }
func TestFuzzCacheIterator(t *testing.T) { suite.FuzzIterator(t) }
func TestConflictCacheIterator(t *testing.T) { suite.IteratorWithConflicts(t) }

// TestCommitOverwrite checks that we commit properly
// and can add/overwrite/query in the next adapter
func TestCommitOverwrite(t *testing.T) {
	ks := [][]byte{[]byte("kitty:1"), []byte("kitty:2"), []byte("kitty:3")}
	vs := [][]byte{[]byte("tom"), []byte("felix"), []byte("garfield"), []byte("tom2")}

	commit, close := makeCommitStore()
	defer close()

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)
	if len(id.Hash) != 0 {
		t.Fatal("hash is not empty")
	}

	parent := commit.CacheWrap()
	assert.Nil(t, parent.Set(ks[0], vs[0]))
	assert.Nil(t, parent.Set(ks[1], vs[1]))
	assert.Nil(t, parent.Write())
	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("hash is empty")
	}

	child := commit.CacheWrap()
	assert.Nil(t, child.Set(ks[0], vs[3]))
	assert.Nil(t, child.Set(ks[2], vs[2]))
	assert.Nil(t, child.Delete(ks[1]))

	// and a side-cache wrap to see they are in parallel
	side := commit.CacheWrap()
	suite.AssertGetHas(t, side, ks[0], vs[0], true)
	suite.AssertGetHas(t, side, ks[1], vs[1], true)
	suite.AssertGetHas(t, side, ks[2], nil, false)

	suite.AssertGetHas(t, child, ks[0], vs[3], true)
	suite.AssertGetHas(t, child, ks[1], nil, false)
	suite.AssertGetHas(t, child, ks[2], vs[2], true)

	assert.Nil(t, child.Write())

	// committed state does not move before Commit
	got, err := commit.Get(ks[0])
	assert.Nil(t, err)
	assert.Equal(t, vs[0], got)

	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), id.Version)
	got, err = commit.Get(ks[0])
	assert.Nil(t, err)
	assert.Equal(t, vs[3], got)
}

// TestReloadCommitted makes sure a committed version survives closing
// the database and loading it again.
func TestReloadCommitted(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-reload-")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)

	commit := NewCommitStore(tmpDir, "state")
	assert.Nil(t, commit.LoadLatestVersion())
	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("owner"), []byte("alice")))
	assert.Nil(t, cache.Write())
	want, err := commit.Commit()
	assert.Nil(t, err)
	commit.Close()

	reopened := NewCommitStore(tmpDir, "state")
	defer reopened.Close()
	assert.Nil(t, reopened.LoadLatestVersion())
	got, err := reopened.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, want, got)
	val, err := reopened.Get([]byte("owner"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("alice"), val)
}
