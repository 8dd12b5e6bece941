package whitelist

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/gconf"
)

const pkgName = "whitelist"

// Configuration is the whitelist extension configuration.
type Configuration struct {
	// Admin is the only address allowed to add and remove entries.
	Admin lockswap.Address `json:"admin"`
}

var _ gconf.ValidMarshaler = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

func (c *Configuration) Validate() error {
	return errors.Field("Admin", c.Admin.Validate(), "invalid admin address")
}

func loadConf(db lockswap.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
