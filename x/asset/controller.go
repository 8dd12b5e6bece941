package asset

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
)

// ErrPolicyDenied is returned when the configured transfer policy
// rejects a move. The whole transition fails, exactly like a transfer
// without funds.
var ErrPolicyDenied = errors.Register(1020, "transfer denied by policy")

// Policy can veto a transfer before any balance is touched.
// Implementations should return an error wrapping ErrPolicyDenied to
// reject.
type Policy interface {
	Allow(db lockswap.ReadOnlyKVStore, src, dest lockswap.Address, amount coin.Coin) error
}

// Controller is the functionality needed by other extensions to move
// assets around. This is implemented by BaseController and the
// interface allows mocking it out for tests.
type Controller interface {
	// MoveCoins removes the amount from the holding of src and adds it
	// to the holding of dest, creating the destination holding when it
	// does not exist yet.
	MoveCoins(db lockswap.KVStore, src, dest lockswap.Address, amount coin.Coin) error

	// IssueCoins creates the amount out of thin air on the holding of
	// dest. Only genesis and tests have a business calling this.
	IssueCoins(db lockswap.KVStore, dest lockswap.Address, amount coin.Coin) error

	// Balance returns the amount of the given asset type held by the
	// owner. An owner without a holding has a zero balance.
	Balance(db lockswap.ReadOnlyKVStore, owner lockswap.Address, ticker string) (coin.Coin, error)

	// CloseHolding removes an emptied holding account from the store.
	// It fails with ErrNotFound when there is no such holding and with
	// ErrState when a balance remains.
	CloseHolding(db lockswap.KVStore, owner lockswap.Address, ticker string) error
}

// BaseController implements Controller over the holdings bucket.
type BaseController struct {
	bucket orm.ModelBucket
	policy Policy
}

var _ Controller = BaseController{}

// NewController returns a controller without a transfer policy, every
// move is allowed.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// WithPolicy returns a copy of this controller that consults the given
// policy on every MoveCoins.
func (c BaseController) WithPolicy(p Policy) BaseController {
	c.policy = p
	return c
}

// MoveCoins moves the given amount from src to dest.
func (c BaseController) MoveCoins(db lockswap.KVStore, src, dest lockswap.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", amount)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}

	if c.policy != nil {
		if err := c.policy.Allow(db, src, dest, amount); err != nil {
			return errors.Wrap(err, "policy")
		}
	}

	srcAddr, err := HoldingAddr(src, amount.Ticker)
	if err != nil {
		return errors.Wrap(err, "src holding")
	}
	var from Holding
	switch err := c.bucket.One(db, srcAddr, &from); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds no %s", src, amount.Ticker)
	default:
		return err
	}

	rem, err := from.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	if !rem.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%v is less than %v", from.Balance, amount)
	}
	from.Balance = rem
	if err := c.bucket.Put(db, srcAddr, &from); err != nil {
		return err
	}

	return c.credit(db, dest, amount)
}

// IssueCoins attempts to add the given amount of coins to the
// destination holding.
func (c BaseController) IssueCoins(db lockswap.KVStore, dest lockswap.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive issue: %v", amount)
	}
	return c.credit(db, dest, amount)
}

// credit adds the amount to the holding of dest, creating the holding
// when missing.
func (c BaseController) credit(db lockswap.KVStore, dest lockswap.Address, amount coin.Coin) error {
	destAddr, err := HoldingAddr(dest, amount.Ticker)
	if err != nil {
		return errors.Wrap(err, "dest holding")
	}
	to := Holding{
		Owner:   dest,
		Balance: coin.NewCoin(0, 0, amount.Ticker),
	}
	switch err := c.bucket.One(db, destAddr, &to); {
	case err == nil, errors.ErrNotFound.Is(err):
		// Create on first use.
	default:
		return err
	}
	total, err := to.Balance.Add(amount)
	if err != nil {
		return err
	}
	to.Balance = total
	return c.bucket.Put(db, destAddr, &to)
}

// Balance returns the amount of the given asset type the owner holds.
func (c BaseController) Balance(db lockswap.ReadOnlyKVStore, owner lockswap.Address, ticker string) (coin.Coin, error) {
	addr, err := HoldingAddr(owner, ticker)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "holding")
	}
	var h Holding
	switch err := c.bucket.One(db, addr, &h); {
	case err == nil:
		return h.Balance, nil
	case errors.ErrNotFound.Is(err):
		return coin.NewCoin(0, 0, ticker), nil
	default:
		return coin.Coin{}, err
	}
}

// CloseHolding removes the holding account of the owner for the given
// asset type. Only an empty holding can be closed.
func (c BaseController) CloseHolding(db lockswap.KVStore, owner lockswap.Address, ticker string) error {
	addr, err := HoldingAddr(owner, ticker)
	if err != nil {
		return errors.Wrap(err, "holding")
	}
	var h Holding
	if err := c.bucket.One(db, addr, &h); err != nil {
		return err
	}
	if !h.Balance.IsZero() {
		return errors.Wrapf(errors.ErrState, "%v left in the holding", h.Balance)
	}
	return c.bucket.Delete(db, addr)
}
