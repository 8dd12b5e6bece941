package lockswap

import (
	"encoding/json"

	"github.com/iov-one/lockswap/errors"
)

// Options are the app options that are passed to all extensions on
// initialization. The options for each extension live under the key with
// the extension name.
type Options map[string]json.RawMessage

// ReadOptions reads the value stored under a given key and loads the
// json into the given object. Returns an error if the value cannot be
// parsed. A missing key is not an error.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "option %q: %s", key, err)
	}
	return nil
}

// Initializer implementations are used to initialize extensions from
// genesis file contents.
type Initializer interface {
	FromGenesis(opts Options, kv KVStore) error
}
