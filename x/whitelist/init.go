package whitelist

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/gconf"
)

// Initializer fulfils the Initializer interface to load the
// configuration and any initial entries from the genesis file.
type Initializer struct{}

var _ lockswap.Initializer = (*Initializer)(nil)

// FromGenesis initializes the whitelist. The admin is required, initial
// entries are optional:
//
//   "conf": {
//     "whitelist": {"admin": "<address>"}
//   },
//   "whitelist": ["<address>", ...]
func (Initializer) FromGenesis(opts lockswap.Options, db lockswap.KVStore) error {
	if err := gconf.InitConfig(db, opts, pkgName, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var addrs []lockswap.Address
	if err := opts.ReadOptions("whitelist", &addrs); err != nil {
		return errors.Wrap(err, "cannot load whitelist genesis")
	}
	bucket := NewBucket()
	for i, a := range addrs {
		entry := Entry{Address: a}
		if err := bucket.Put(db, a, &entry); err != nil {
			return errors.Wrapf(err, "entry #%d", i)
		}
	}
	return nil
}
