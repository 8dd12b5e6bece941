package escrow

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/gconf"
)

const pkgName = "escrow"

// Configuration is the escrow extension configuration.
type Configuration struct {
	// LockDuration is the shared lock window. Neither settle nor
	// cancel is possible before CreatedAt + LockDuration.
	LockDuration lockswap.UnixDuration `json:"lock_duration"`
	// Deposit is the storage deposit charged on every create and
	// returned to the maker when the record is removed. A zero amount
	// disables the deposit.
	Deposit coin.Coin `json:"deposit"`
}

var _ gconf.ValidMarshaler = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

func (c *Configuration) Validate() error {
	var err error
	err = errors.AppendField(err, "LockDuration", c.LockDuration.Validate())
	if c.LockDuration <= 0 {
		err = errors.AppendField(err, "LockDuration", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	err = errors.AppendField(err, "Deposit", c.Deposit.Validate())
	if !c.Deposit.IsNonNegative() {
		err = errors.AppendField(err, "Deposit", errors.Wrap(errors.ErrAmount, "negative deposit"))
	}
	return err
}

func loadConf(db lockswap.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
