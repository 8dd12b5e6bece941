package orm

import (
	"reflect"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// ModelBucket is a high level interface to store and access models.
// Keys are always computed by the caller (derived addresses), never
// allocated by the bucket.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is
	// done by the primary key. The resulting model is loaded into the
	// dest argument, which must be a pointer of the bucket's model
	// type.
	One(db lockswap.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database under the given key,
	// overwriting any previous value.
	Put(db lockswap.KVStore, key []byte, m Model) error

	// Create saves given model under the given key only if the key is
	// not yet in use. It returns ErrDuplicate otherwise. This is the
	// write path for records whose key carries their identity.
	Create(db lockswap.KVStore, key []byte, m Model) error

	// Delete removes the stored entity. ErrNotFound is returned if the
	// key is not in use.
	Delete(db lockswap.KVStore, key []byte) error

	// Has returns nil if an entity is stored under the given key, and
	// ErrNotFound otherwise.
	Has(db lockswap.ReadOnlyKVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance. The model is used as
// the prototype: all instances stored are of its type.
func NewModelBucket(name string, m Model) ModelBucket {
	return &modelBucket{
		b:     NewBucket(name, NewSimpleObj(nil, m)),
		model: reflect.TypeOf(m),
	}
}

type modelBucket struct {
	b     Bucket
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (m *modelBucket) One(db lockswap.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := m.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "bucket %q key %X", m.b.Name(), key)
	}
	res := obj.Value()

	if want, got := reflect.TypeOf(res), reflect.TypeOf(dest); want != got {
		return errors.Wrapf(errors.ErrType, "want %s, got %s", want, got)
	}
	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non-nil pointer")
	}
	ptr.Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (m *modelBucket) Put(db lockswap.KVStore, key []byte, model Model) error {
	if got := reflect.TypeOf(model); got != m.model {
		return errors.Wrapf(errors.ErrType, "cannot store %s in bucket of %s", got, m.model)
	}
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key is required")
	}
	return m.b.Save(db, NewSimpleObj(key, model))
}

func (m *modelBucket) Create(db lockswap.KVStore, key []byte, model Model) error {
	switch err := m.b.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "bucket %q key %X", m.b.Name(), key)
	case errors.ErrNotFound.Is(err):
		// Key is free.
	default:
		return err
	}
	return m.Put(db, key, model)
}

func (m *modelBucket) Delete(db lockswap.KVStore, key []byte) error {
	if err := m.b.Has(db, key); err != nil {
		return err
	}
	return m.b.Delete(db, key)
}

func (m *modelBucket) Has(db lockswap.ReadOnlyKVStore, key []byte) error {
	return m.b.Has(db, key)
}
