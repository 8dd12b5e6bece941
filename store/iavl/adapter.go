// Package iavl wraps a versioned merkle tree as the commit store of the
// application. Every Commit persists a new version to disk.
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/store"
)

// defaultCacheSize is the number of tree nodes kept in memory.
const defaultCacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store backed by the given database.
func NewCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(db, defaultCacheSize),
	}
}

// MemCommitStore creates a new store without disk backing, useful for
// tests.
func MemCommitStore() *CommitStore {
	return NewCommitStore(dbm.NewMemDB())
}

// Get returns the value at the last committed state. Returns nil iff the
// key doesn't exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	_, value := s.tree.Get(key)
	return value, nil
}

// CacheWrap gives us a savepoint to perform actions on. The writes land
// in the working tree on Write and only become durable on Commit.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	reader := treeReader{tree: s.tree}
	batch := store.NewNonAtomicBatch(treeWriter{tree: s.tree})
	return store.NewBTreeCacheWrap(reader, batch, nil)
}

// Commit persists the working tree as the next version and returns its
// info.
func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a
// crash during the last commit, it is guaranteed to return a stable
// state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// treeWriter applies writes to the working tree.
type treeWriter struct {
	tree *iavl.MutableTree
}

var _ store.SetDeleter = treeWriter{}

func (w treeWriter) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	w.tree.Set(key, value)
	return nil
}

func (w treeWriter) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	w.tree.Remove(key)
	return nil
}

// treeReader exposes the working tree as a read only kv store.
type treeReader struct {
	tree *iavl.MutableTree
}

var _ store.ReadOnlyKVStore = treeReader{}

func (r treeReader) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	_, value := r.tree.Get(key)
	return value, nil
}

func (r treeReader) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	return r.tree.Has(key), nil
}

func (r treeReader) Iterator(start, end []byte) (store.Iterator, error) {
	return r.rangeIterator(start, end, true), nil
}

func (r treeReader) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return r.rangeIterator(start, end, false), nil
}

func (r treeReader) rangeIterator(start, end []byte, ascending bool) store.Iterator {
	var models []store.Model
	r.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		models = append(models, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(models)
}
