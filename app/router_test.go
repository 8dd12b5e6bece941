package app

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

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	good := &swaptest.Handler{}
	other := &swaptest.Handler{}
	r.Handle("good/path", good)
	r.Handle("other/path", other)

	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "good/path"}})
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "good/path"}})
	require.NoError(t, err)
	assert.Equal(t, 2, good.CallCount())
	assert.Equal(t, 0, other.CallCount())
}

func TestRouterNoSuchPath(t *testing.T) {
	r := NewRouter()
	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "any/path"}})
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
	_, err = r.Deliver(ctx, db, &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "any/path"}})
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestRouterBrokenTx(t *testing.T) {
	r := NewRouter()
	ctx := context.Background()
	db := store.MemStore()

	broken := errors.Wrap(errors.ErrInput, "dropped on the floor")
	_, err := r.Deliver(ctx, db, &swaptest.Tx{Err: broken})
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	_, err = r.Deliver(ctx, db, &swaptest.Tx{})
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)
}

func TestRouterRegistrationPanics(t *testing.T) {
	r := NewRouter()
	r.Handle("dup/path", &swaptest.Handler{})
	assert.Panics(t, func() {
		r.Handle("dup/path", &swaptest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle("Not A Path", &swaptest.Handler{})
	})
}

func TestChainDecoratorsOrder(t *testing.T) {
	var order []string
	chain := ChainDecorators(
		recordingDecorator{name: "outer", order: &order},
		recordingDecorator{name: "inner", order: &order},
	)
	h := &swaptest.Handler{}
	stack := chain.WithHandler(h)

	_, err := stack.Deliver(context.Background(), store.MemStore(), &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "any/path"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, h.DeliverCall)
}

// recordingDecorator appends its name on every call, to observe the
// resolution order of a decorator chain.
type recordingDecorator struct {
	name  string
	order *[]string
}

func (d recordingDecorator) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx, next lockswap.Checker) (*lockswap.CheckResult, error) {
	*d.order = append(*d.order, d.name)
	return next.Check(ctx, db, tx)
}

func (d recordingDecorator) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx, next lockswap.Deliverer) (*lockswap.DeliverResult, error) {
	*d.order = append(*d.order, d.name)
	return next.Deliver(ctx, db, tx)
}
