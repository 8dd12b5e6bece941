/*
Package orm breaks the state space into prefixed sections called
Buckets. Each bucket contains only one type of model and is keyed by
addresses derived outside of the storage layer, so there are no
sequences and no secondary indexes. Uniqueness of a key is enforced by
the bucket itself.
*/
package orm

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// Model is implemented by any entity that can be stored in a bucket.
type Model interface {
	lockswap.Persistent

	// Validate returns an error if the model cannot be saved in the
	// current form.
	Validate() error

	// Copy returns an independent deep copy of this model.
	Copy() Model
}

// Object wraps a model with its storage key.
type Object interface {
	// Validate returns error if the object is not in a valid state to
	// save.
	Validate() error

	Key() []byte
	SetKey([]byte)
	Value() Model

	// Clone returns an independent copy of this object.
	Clone() Object
}

// SimpleObj wraps a key and a model together, the default Object
// implementation.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

// NewSimpleObj constructs an object from a key and a model.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{
		key:   key,
		value: value,
	}
}

// Value gets the value stored in the object.
func (o SimpleObj) Value() Model {
	return o.value
}

// Key returns the key to store the object under.
func (o SimpleObj) Key() []byte {
	return o.key
}

// SetKey may be used to update a simple obj key.
func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

// Validate makes sure both the key and the model are valid.
func (o SimpleObj) Validate() error {
	if len(o.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if o.value == nil {
		return errors.Wrap(errors.ErrEmpty, "missing value")
	}
	return o.value.Validate()
}

// Clone makes an independent copy of this object.
func (o SimpleObj) Clone() Object {
	res := &SimpleObj{
		value: o.value.Copy(),
	}
	if len(o.key) > 0 {
		res.key = append([]byte(nil), o.key...)
	}
	return res
}
