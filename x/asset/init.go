package asset

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
)

// Initializer fulfils the Initializer interface to load initial
// balances from the genesis file.
type Initializer struct{}

var _ lockswap.Initializer = (*Initializer)(nil)

// FromGenesis initializes the holdings declared in the genesis:
//
//   "asset": [
//     {"owner": "<address>", "balance": {"whole": 10, "ticker": "AST"}}
//   ]
func (Initializer) FromGenesis(opts lockswap.Options, db lockswap.KVStore) error {
	var holdings []struct {
		Owner   lockswap.Address `json:"owner"`
		Balance coin.Coin        `json:"balance"`
	}
	if err := opts.ReadOptions("asset", &holdings); err != nil {
		return errors.Wrap(err, "cannot load asset genesis")
	}

	ctrl := NewController()
	for i, h := range holdings {
		if err := ctrl.IssueCoins(db, h.Owner, h.Balance); err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
	}
	return nil
}
