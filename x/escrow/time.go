package escrow

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// guardLock returns ErrLocked while the lock window of the record has
// not elapsed. The window opens exactly at CreatedAt + lock, inclusive.
// Settle and cancel share the one window.
func guardLock(ctx lockswap.Context, e *Escrow, lock lockswap.UnixDuration) error {
	unlockAt := e.CreatedAt.Add(lock.Duration())
	if !lockswap.IsExpired(ctx, unlockAt) {
		return errors.Wrapf(ErrLocked, "until %s", unlockAt)
	}
	return nil
}
