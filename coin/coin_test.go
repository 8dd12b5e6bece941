package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/lockswap/errors"
)

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid positive":    {coin: NewCoin(42, 0, "ABC")},
		"valid fractional":  {coin: NewCoin(0, 650000000, "ABC")},
		"valid negative":    {coin: NewCoin(-17, -5, "ABC")},
		"invalid ticker":    {coin: NewCoin(1, 0, "abc"), wantErr: errors.ErrCurrency},
		"ticker too long":   {coin: NewCoin(1, 0, "ABCDE"), wantErr: errors.ErrCurrency},
		"whole overflow":    {coin: NewCoin(MaxInt+1, 0, "ABC"), wantErr: errors.ErrOverflow},
		"frac overflow":     {coin: NewCoin(1, FracUnit, "ABC"), wantErr: errors.ErrOverflow},
		"mismatched sign":   {coin: NewCoin(1, -1, "ABC"), wantErr: errors.ErrState},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestCoinAdd(t *testing.T) {
	sum, err := NewCoin(1, 900000000, "ABC").Add(NewCoin(0, 200000000, "ABC"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(2, 100000000, "ABC"), sum)

	_, err = NewCoin(1, 0, "ABC").Add(NewCoin(1, 0, "XYZ"))
	assert.True(t, errors.ErrCurrency.Is(err))

	// A zero coin without a ticker adapts to the other side.
	sum, err = NewCoin(0, 0, "").Add(NewCoin(3, 0, "ABC"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(3, 0, "ABC"), sum)
}

func TestCoinSubtract(t *testing.T) {
	diff, err := NewCoin(2, 0, "ABC").Subtract(NewCoin(0, 1, "ABC"))
	require.NoError(t, err)
	assert.Equal(t, NewCoin(1, MaxFrac, "ABC"), diff)

	diff, err = NewCoin(1, 0, "ABC").Subtract(NewCoin(2, 0, "ABC"))
	require.NoError(t, err)
	assert.True(t, diff.Equals(NewCoin(-1, 0, "ABC")))
	assert.False(t, diff.IsNonNegative())
}

func TestCoinCompare(t *testing.T) {
	assert.True(t, NewCoin(2, 0, "ABC").IsGTE(NewCoin(1, MaxFrac, "ABC")))
	assert.True(t, NewCoin(1, 5, "ABC").IsGTE(NewCoin(1, 5, "ABC")))
	assert.False(t, NewCoin(1, 4, "ABC").IsGTE(NewCoin(1, 5, "ABC")))
	assert.Panics(t, func() {
		NewCoin(1, 0, "ABC").Compare(NewCoin(1, 0, "XYZ"))
	})
}

func TestCoinPredicates(t *testing.T) {
	assert.True(t, NewCoin(0, 0, "ABC").IsZero())
	assert.True(t, NewCoin(0, 1, "ABC").IsPositive())
	assert.False(t, NewCoin(0, -1, "ABC").IsPositive())
	assert.False(t, NewCoin(-1, 0, "ABC").IsNonNegative())
}

func TestCoinClone(t *testing.T) {
	c := NewCoinp(1, 2, "ABC")
	clone := c.Clone()
	assert.Equal(t, c, clone)

	// The clone is independent of the original.
	clone.Whole = 9
	assert.Equal(t, int64(1), c.Whole)

	var nilCoin *Coin
	assert.Nil(t, nilCoin.Clone())
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "10 ABC", NewCoin(10, 0, "ABC").String())
	assert.Equal(t, "1.000000005 ABC", NewCoin(1, 5, "ABC").String())
	assert.Equal(t, "-0.000000005 ABC", NewCoin(0, -5, "ABC").String())
}
