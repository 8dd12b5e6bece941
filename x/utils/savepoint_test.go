package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/store"
	"github.com/iov-one/lockswap/swaptest"
)

func TestSavepointDiscardsOnError(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()

	h := &swaptest.WriteHandler{
		Key:   []byte("dirty"),
		Value: []byte("write"),
		Err:   errors.ErrState.New("boom"),
	}
	dec := NewSavepoint().OnCheck().OnDeliver()

	_, err := dec.Deliver(ctx, db, &swaptest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))

	ok, err := db.Has([]byte("dirty"))
	require.NoError(t, err)
	assert.False(t, ok, "failed delivery must not leave state behind")

	_, err = dec.Check(ctx, db, &swaptest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))
	ok, err = db.Has([]byte("dirty"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSavepointWritesOnSuccess(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()

	h := &swaptest.WriteHandler{
		Key:   []byte("clean"),
		Value: []byte("write"),
	}
	dec := NewSavepoint().OnDeliver()

	_, err := dec.Deliver(ctx, db, &swaptest.Tx{}, h)
	require.NoError(t, err)

	got, err := db.Get([]byte("clean"))
	require.NoError(t, err)
	assert.Equal(t, []byte("write"), got)
}

func TestSavepointDisabledPassesStoreThrough(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()

	h := &swaptest.WriteHandler{
		Key:   []byte("direct"),
		Value: []byte("write"),
		Err:   errors.ErrState.New("boom"),
	}
	// Without OnDeliver the writes of a failed delivery stay.
	dec := NewSavepoint()

	_, err := dec.Deliver(ctx, db, &swaptest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))
	ok, err := db.Has([]byte("direct"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecovery(t *testing.T) {
	db := store.MemStore()
	ctx := context.Background()

	h := &swaptest.PanicHandler{Msg: "worst case"}
	_, err := NewRecovery().Deliver(ctx, db, &swaptest.Tx{}, h)
	assert.True(t, errors.ErrPanic.Is(err))

	var _ lockswap.Decorator = NewRecovery()
}
