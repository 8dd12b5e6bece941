package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	ok, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, base.Set(k, v))
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	require.NoError(t, base.Delete(k))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBTreeCacheWriteAndDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))

	// Writes in a discarded cache never reach the parent.
	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	cache.Discard()

	got, err := base.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	ok, err := base.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, ok)

	// Writes in a written cache do.
	cache = base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Write())

	got, err = base.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
	ok, err = base.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBTreeCacheNestedWraps(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("k"), []byte("base")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("k"), []byte("outer")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("k"), []byte("inner")))

	// The inner value is visible only after both writes.
	require.NoError(t, inner.Write())
	got, err := base.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("base"), got)

	require.NoError(t, outer.Write())
	got, err = base.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("inner"), got)
}

func TestNilKeyRejected(t *testing.T) {
	base := MemStore()
	if err := base.Set(nil, []byte("v")); err == nil {
		t.Fatal("nil key must be rejected")
	}
	if _, err := base.Get(nil); err == nil {
		t.Fatal("nil key must be rejected")
	}
}

func readAll(t *testing.T, it Iterator) []Model {
	t.Helper()
	defer it.Close()
	var out []Model
	for ; it.Valid(); require.NoError(t, it.Next()) {
		out = append(out, Model{Key: it.Key(), Value: it.Value()})
	}
	return out
}

func TestIteratorMergesCacheAndParent(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("c"), []byte("3")))
	require.NoError(t, base.Set([]byte("e"), []byte("5")))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))  // new key between
	require.NoError(t, cache.Set([]byte("c"), []byte("33"))) // overwrite
	require.NoError(t, cache.Delete([]byte("e")))            // shadow parent

	it, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	got := readAll(t, it)
	want := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("33")},
	}
	assert.Equal(t, want, got)
}

func TestIteratorRange(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}

	it, err := db.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	got := readAll(t, it)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("b"), got[0].Key)
	assert.Equal(t, []byte("c"), got[1].Key)
}

func TestReverseIterator(t *testing.T) {
	db := MemStore()
	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}

	it, err := db.ReverseIterator(nil, nil)
	require.NoError(t, err)
	got := readAll(t, it)
	require.Len(t, got, 3)
	assert.Equal(t, []byte("c"), got[0].Key)
	assert.Equal(t, []byte("a"), got[2].Key)

	cache := db.CacheWrap()
	require.NoError(t, cache.Delete([]byte("c")))
	require.NoError(t, cache.Set([]byte("d"), []byte("d")))

	it, err = cache.ReverseIterator([]byte("b"), nil)
	require.NoError(t, err)
	got = readAll(t, it)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("d"), got[0].Key)
	assert.Equal(t, []byte("b"), got[1].Key)
}
