package escrow

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/gconf"
)

// Initializer fulfils the Initializer interface to load the
// configuration from the genesis file.
type Initializer struct{}

var _ lockswap.Initializer = (*Initializer)(nil)

// FromGenesis initializes the escrow configuration:
//
//   "conf": {
//     "escrow": {"lock_duration": "120h", "deposit": {"whole": 1, "ticker": "FEE"}}
//   }
func (Initializer) FromGenesis(opts lockswap.Options, db lockswap.KVStore) error {
	if err := gconf.InitConfig(db, opts, pkgName, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
