package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/store"
	"github.com/iov-one/lockswap/swaptest"
)

func TestHoldingAddrDeterministic(t *testing.T) {
	owner := swaptest.NewCondition().Address()

	a, err := HoldingAddr(owner, "AAA")
	require.NoError(t, err)
	b, err := HoldingAddr(owner, "AAA")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.NoError(t, a.Validate())

	other, err := HoldingAddr(owner, "BBB")
	require.NoError(t, err)
	assert.False(t, a.Equals(other))

	_, err = HoldingAddr(owner, "bad ticker")
	assert.True(t, errors.ErrCurrency.Is(err))
}

func TestMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	src := swaptest.NewCondition().Address()
	dest := swaptest.NewCondition().Address()

	require.NoError(t, ctrl.IssueCoins(db, src, coin.NewCoin(10, 0, "AAA")))

	// Moving to an owner without a holding creates it.
	require.NoError(t, ctrl.MoveCoins(db, src, dest, coin.NewCoin(4, 0, "AAA")))

	got, err := ctrl.Balance(db, src, "AAA")
	require.NoError(t, err)
	assert.True(t, got.Equals(coin.NewCoin(6, 0, "AAA")))
	got, err = ctrl.Balance(db, dest, "AAA")
	require.NoError(t, err)
	assert.True(t, got.Equals(coin.NewCoin(4, 0, "AAA")))
}

func TestMoveCoinsInsufficient(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	src := swaptest.NewCondition().Address()
	dest := swaptest.NewCondition().Address()

	// No holding at all.
	err := ctrl.MoveCoins(db, src, dest, coin.NewCoin(1, 0, "AAA"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	// Holding with too little.
	require.NoError(t, ctrl.IssueCoins(db, src, coin.NewCoin(2, 0, "AAA")))
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(3, 0, "AAA"))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	// The failed move changed no balance.
	got, err := ctrl.Balance(db, src, "AAA")
	require.NoError(t, err)
	assert.True(t, got.Equals(coin.NewCoin(2, 0, "AAA")))
}

func TestMoveCoinsRejectsNonPositive(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	src := swaptest.NewCondition().Address()
	dest := swaptest.NewCondition().Address()

	err := ctrl.MoveCoins(db, src, dest, coin.NewCoin(0, 0, "AAA"))
	assert.True(t, errors.ErrAmount.Is(err))
	err = ctrl.MoveCoins(db, src, dest, coin.NewCoin(-1, 0, "AAA"))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestCloseHolding(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	owner := swaptest.NewCondition().Address()
	dest := swaptest.NewCondition().Address()

	err := ctrl.CloseHolding(db, owner, "AAA")
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, ctrl.IssueCoins(db, owner, coin.NewCoin(1, 0, "AAA")))
	err = ctrl.CloseHolding(db, owner, "AAA")
	assert.True(t, errors.ErrState.Is(err), "a funded holding cannot be closed")

	require.NoError(t, ctrl.MoveCoins(db, owner, dest, coin.NewCoin(1, 0, "AAA")))
	require.NoError(t, ctrl.CloseHolding(db, owner, "AAA"))

	// Once closed, the holding is gone.
	err = ctrl.CloseHolding(db, owner, "AAA")
	assert.True(t, errors.ErrNotFound.Is(err))
}

type denyPolicy struct {
	blocked lockswap.Address
}

func (p denyPolicy) Allow(db lockswap.ReadOnlyKVStore, src, dest lockswap.Address, amount coin.Coin) error {
	if src.Equals(p.blocked) {
		return errors.Wrapf(ErrPolicyDenied, "%s is blocked", src)
	}
	return nil
}

func TestMoveCoinsPolicy(t *testing.T) {
	db := store.MemStore()

	blocked := swaptest.NewCondition().Address()
	free := swaptest.NewCondition().Address()
	dest := swaptest.NewCondition().Address()

	ctrl := NewController().WithPolicy(denyPolicy{blocked: blocked})
	require.NoError(t, ctrl.IssueCoins(db, blocked, coin.NewCoin(5, 0, "AAA")))
	require.NoError(t, ctrl.IssueCoins(db, free, coin.NewCoin(5, 0, "AAA")))

	err := ctrl.MoveCoins(db, blocked, dest, coin.NewCoin(1, 0, "AAA"))
	assert.True(t, ErrPolicyDenied.Is(err))

	// The denial changed no balance.
	got, err := ctrl.Balance(db, blocked, "AAA")
	require.NoError(t, err)
	assert.True(t, got.Equals(coin.NewCoin(5, 0, "AAA")))

	require.NoError(t, ctrl.MoveCoins(db, free, dest, coin.NewCoin(1, 0, "AAA")))
}
