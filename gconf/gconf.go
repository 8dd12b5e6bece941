// Package gconf provides a toolset for managing an extension
// configuration. Every extension maintains at most one configuration
// model, stored under a single well known key.
package gconf

import (
	"encoding/json"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// ValidMarshaler is implemented by configuration models. A
// configuration is validated before being persisted.
type ValidMarshaler interface {
	lockswap.Marshaller
	Validate() error
}

// Unmarshaler is the read counterpart of ValidMarshaler.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

func dbKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save persists the configuration of the given package in the database.
func Save(db lockswap.KVStore, pkg string, src ValidMarshaler) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "%q configuration", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %q configuration", pkg)
	}
	return db.Set(dbKey(pkg), raw)
}

// Load loads the configuration of the given package into dst. It fails
// with ErrNotFound if the package was never configured.
func Load(db lockswap.ReadOnlyKVStore, pkg string, dst Unmarshaler) error {
	raw, err := db.Get(dbKey(pkg))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "no %q configuration", pkg)
	}
	return dst.Unmarshal(raw)
}

// InitConfig loads the configuration of the given package from the
// genesis options and persists it. The configuration is expected in the
// genesis under the "conf" key:
//
//   "conf": {
//     "<package name>": { ... }
//   }
//
// A package that registers a configuration requires it in the genesis.
func InitConfig(db lockswap.KVStore, opts lockswap.Options, pkg string, conf ValidMarshaler) error {
	var confs map[string]json.RawMessage
	if err := opts.ReadOptions("conf", &confs); err != nil {
		return errors.Wrap(err, "cannot load conf options")
	}
	raw, ok := confs[pkg]
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "no genesis configuration for %q", pkg)
	}
	if err := json.Unmarshal(raw, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "%q configuration: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "cannot save %q configuration", pkg)
	}
	return nil
}
