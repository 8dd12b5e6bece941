package asset

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
)

// Holding is the balance of one owner in one asset type.
type Holding struct {
	// Owner is the address this holding belongs to. It does not have
	// to be a signing party, derived addresses can own holdings too.
	Owner lockswap.Address `json:"owner"`
	// Balance is the amount held. Its ticker names the asset type.
	Balance coin.Coin `json:"balance"`
}

var _ orm.Model = (*Holding)(nil)

func (h *Holding) Marshal() ([]byte, error) {
	return codec.Marshal(h)
}

func (h *Holding) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, h)
}

// Validate ensures the holding can be stored. A holding can hold a zero
// balance but never a negative one.
func (h *Holding) Validate() error {
	var err error
	err = errors.AppendField(err, "Owner", h.Owner.Validate())
	err = errors.AppendField(err, "Balance", h.Balance.Validate())
	if !h.Balance.IsNonNegative() {
		err = errors.AppendField(err, "Balance", errors.Wrap(errors.ErrAmount, "negative balance"))
	}
	return err
}

func (h *Holding) Copy() orm.Model {
	return &Holding{
		Owner:   append([]byte(nil), h.Owner...),
		Balance: *h.Balance.Clone(),
	}
}

// NewBucket returns a bucket for keeping holdings, keyed by their
// derived addresses.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("hold", &Holding{})
}

// HoldingAddr returns the address of the holding account of the given
// owner for the given asset type. The address is fully determined by
// the two inputs, so both sides of a transfer can locate it without any
// registry.
func HoldingAddr(owner lockswap.Address, ticker string) (lockswap.Address, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	if !coin.IsCC(ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", ticker)
	}
	data := make([]byte, 0, len(owner)+len(ticker))
	data = append(data, owner...)
	data = append(data, ticker...)
	cond, _, err := lockswap.Derive("asset", "hold", data)
	if err != nil {
		return nil, err
	}
	return cond.Address(), nil
}
