package lockswap

import (
	"github.com/iov-one/lockswap/store"
)

// The store package defines the interfaces for interacting with the
// key-value storage. They are aliased here so that extension code only
// needs to import the root package.

type (
	SetDeleter       = store.SetDeleter
	ReadOnlyKVStore  = store.ReadOnlyKVStore
	KVStore          = store.KVStore
	Batch            = store.Batch
	Iterator         = store.Iterator
	CacheableKVStore = store.CacheableKVStore
	KVCacheWrap      = store.KVCacheWrap
	CommitKVStore    = store.CommitKVStore
	CommitID         = store.CommitID
)
