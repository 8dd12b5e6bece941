package app

import (
	"github.com/iov-one/lockswap"
)

// Decorators holds a chain of decorators, not yet resolved by a
// Handler.
type Decorators struct {
	chain []lockswap.Decorator
}

// ChainDecorators takes a chain of decorators. The first one will wrap
// all the others.
func ChainDecorators(chain ...lockswap.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the current chain.
func (d Decorators) Chain(next ...lockswap.Decorator) Decorators {
	return Decorators{chain: append(d.chain, next...)}
}

// WithHandler resolves the stack and returns a single Handler that
// passes each call through every decorator in order before hitting h.
func (d Decorators) WithHandler(h lockswap.Handler) lockswap.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decoratedHandler{d: d.chain[i], h: h}
	}
	return h
}

type decoratedHandler struct {
	d lockswap.Decorator
	h lockswap.Handler
}

var _ lockswap.Handler = decoratedHandler{}

func (d decoratedHandler) Check(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	return d.d.Check(ctx, store, tx, d.h)
}

func (d decoratedHandler) Deliver(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	return d.d.Deliver(ctx, store, tx, d.h)
}
