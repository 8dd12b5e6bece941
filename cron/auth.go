package cron

import (
	"context"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/x"
)

type contextKey int

const contextKeyAuth contextKey = iota

func withAuth(ctx lockswap.Context, conds []lockswap.Condition) lockswap.Context {
	return context.WithValue(ctx, contextKeyAuth, conds)
}

// Authenticator reveals the conditions a task was scheduled with. Use
// it in the handler stack the ticker executes tasks through.
type Authenticator struct{}

var _ x.Authenticator = Authenticator{}

func (Authenticator) GetConditions(ctx lockswap.Context) []lockswap.Condition {
	conds, _ := ctx.Value(contextKeyAuth).([]lockswap.Condition)
	return conds
}

func (a Authenticator) HasAddress(ctx lockswap.Context, addr lockswap.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
