package utils

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we
// can log them as errors instead of crashing the process.
type Recovery struct{}

var _ lockswap.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (r Recovery) Check(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx, next lockswap.Checker) (_ *lockswap.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx, next lockswap.Deliverer) (_ *lockswap.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
