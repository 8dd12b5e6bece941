// Package utils contains the generic decorators every processing
// pipeline of this module is assembled from.
package utils

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// Savepoint will isolate all data inside of the call, and commit/discard
// the cache wrap based on the success of the call. Transition handlers
// below it can never leave partial state behind, no matter where they
// fail.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ lockswap.Decorator = Savepoint{}

// NewSavepoint creates a savepoint decorator that is disabled. You must
// call OnCheck or OnDeliver (or both) to enable it for the given
// context.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will rollback checks on error.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will rollback deliveries on error.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check isolates the check in a cache wrap if enabled.
func (s Savepoint) Check(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx, next lockswap.Checker) (*lockswap.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(lockswap.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "savepoint requires a cacheable kvstore")
	}
	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	if err := cache.Write(); err != nil {
		return nil, err
	}
	return res, nil
}

// Deliver isolates the delivery in a cache wrap if enabled.
func (s Savepoint) Deliver(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx, next lockswap.Deliverer) (*lockswap.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(lockswap.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "savepoint requires a cacheable kvstore")
	}
	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	if err := cache.Write(); err != nil {
		return nil, err
	}
	return res, nil
}
