// Package coin provides a fixed point representation of asset amounts,
// each bound to the ticker of the asset type it counts.
package coin

import (
	"fmt"
	"regexp"

	"github.com/iov-one/lockswap/errors"
)

const (
	// MaxInt is the largest whole value we accept.
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lowest whole value we accept.
	MinInt = -MaxInt

	// FracUnit is the smallest numbers we divide by.
	FracUnit int64 = 1000000000
	// MaxFrac is the highest possible fractional value.
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest possible fractional value.
	MinFrac = -MaxFrac
)

// IsCC determines if a string is a valid currency code (ticker).
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Coin is a fixed point amount of one asset type. The smallest unit is
// 10^-9 of the whole unit. Whole and Fractional carry the same sign.
type Coin struct {
	// Whole coins, -10^15 < whole < 10^15.
	Whole int64 `json:"whole"`
	// Fractional is in the unit of 10^-9 of a whole coin.
	Fractional int64 `json:"fractional"`
	// Ticker names the asset type this coin counts.
	Ticker string `json:"ticker"`
}

// NewCoin creates a new coin object.
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{
		Whole:      whole,
		Fractional: fractional,
		Ticker:     ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// ID returns the ticker of this coin, the identifier of the asset type.
func (c Coin) ID() string {
	return c.Ticker
}

// Clone provides an independent copy of a coin pointer.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker:     c.Ticker,
		Whole:      c.Whole,
		Fractional: c.Fractional,
	}
}

// Add combines two coins of the same asset type.
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins is "zero", the asset type does not matter.
	if c.IsZero() && c.Ticker == "" {
		c.Ticker = o.Ticker
	}
	if o.IsZero() && o.Ticker == "" {
		o.Ticker = c.Ticker
	}

	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
	}

	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Subtract removes the amount of the other coin from this one. It can
// result in a negative amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Negative returns the opposite coin.
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -1 * c.Whole,
		Fractional: -1 * c.Fractional,
	}
}

// Compare will check values of two coins of the same asset type. It
// returns -1, 0 or 1 when c is smaller, equal or greater than o. It
// panics on a different asset type, as the caller must check SameType
// first.
func (c Coin) Compare(o Coin) int {
	if !c.SameType(o) {
		panic(fmt.Sprintf("comparing %s to %s", c.Ticker, o.Ticker))
	}
	if c.Whole > o.Whole {
		return 1
	}
	if c.Whole < o.Whole {
		return -1
	}
	if c.Fractional > o.Fractional {
		return 1
	}
	if c.Fractional < o.Fractional {
		return -1
	}
	return 0
}

// Equals returns true if all fields are identical.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsZero returns true if the amount is 0.
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true if the amount is greater than 0.
func (c Coin) IsPositive() bool {
	return c.Whole > 0 ||
		(c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true if the amount is 0 or higher.
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true if the amount is at least as high as the other.
// It panics on a different asset type.
func (c Coin) IsGTE(o Coin) bool {
	return c.Compare(o) >= 0
}

// SameType returns true if both coins count the same asset type.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Validate ensures the coin is in the valid range and the ticker is a
// valid currency code.
func (c Coin) Validate() error {
	var err error
	if !IsCC(c.Ticker) {
		err = errors.AppendField(err, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker))
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		err = errors.AppendField(err, "Whole", errors.ErrOverflow)
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		err = errors.AppendField(err, "Fractional", errors.ErrOverflow)
	}
	if (c.Whole > 0 && c.Fractional < 0) || (c.Whole < 0 && c.Fractional > 0) {
		err = errors.Append(err, errors.Wrap(errors.ErrState, "mismatched sign"))
	}
	return err
}

// normalize adjusts the fractional part into the valid range, carrying
// into the whole part, and ensures both carry the same sign.
func (c Coin) normalize() (Coin, error) {
	// Keep fraction in the valid range.
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// Make sure the signs correspond.
	if c.Whole > 0 && c.Fractional < 0 {
		c.Whole--
		c.Fractional += FracUnit
	} else if c.Whole < 0 && c.Fractional > 0 {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.Wrap(errors.ErrOverflow, "whole")
	}
	return c, nil
}

// String provides a human readable representation of the coin.
func (c Coin) String() string {
	if c.Fractional == 0 {
		return fmt.Sprintf("%d %s", c.Whole, c.Ticker)
	}
	frac := c.Fractional
	sign := ""
	if frac < 0 {
		frac = -frac
		if c.Whole == 0 {
			sign = "-"
		}
	}
	return fmt.Sprintf("%s%d.%09d %s", sign, c.Whole, frac, c.Ticker)
}
