package whitelist

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
	"github.com/iov-one/lockswap/x/asset"
)

// Policy implements the asset transfer policy. A transfer is allowed
// only when the paying owner is whitelisted. Receiving is never
// restricted.
type Policy struct {
	entries orm.ModelBucket
}

var _ asset.Policy = Policy{}

// NewPolicy returns a transfer policy backed by the whitelist bucket.
func NewPolicy() Policy {
	return Policy{entries: NewBucket()}
}

// Allow returns nil if src is whitelisted.
func (p Policy) Allow(db lockswap.ReadOnlyKVStore, src, dest lockswap.Address, amount coin.Coin) error {
	switch err := p.entries.Has(db, src); {
	case err == nil:
		return nil
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(asset.ErrPolicyDenied, "%s is not whitelisted", src)
	default:
		return err
	}
}
