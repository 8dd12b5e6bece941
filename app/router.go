// Package app assembles handlers and decorators into a processing
// pipeline for transactions.
package app

import (
	"regexp"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// isPath ensures path is in the proper form.
var isPath = regexp.MustCompile(`^[a-z_\d]+(/[a-z_\d]+)*$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]lockswap.Handler
}

var _ lockswap.Registry = (*Router)(nil)
var _ lockswap.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]lockswap.Handler),
	}
}

// Handle adds a new Handler for the given path. Panics on duplicate
// registration or an invalid path, as this marks a setup error.
func (r *Router) Handle(path string, h lockswap.Handler) {
	if !isPath(path) {
		panic("invalid path: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this message path. If no
// path is found, it returns a noSuchPathHandler so the error surfaces
// uniformly through Check and Deliver.
func (r *Router) handler(tx lockswap.Tx) lockswap.Handler {
	msg, err := tx.GetMsg()
	if err != nil {
		return brokenTxHandler{err: err}
	}
	if msg == nil {
		return brokenTxHandler{err: errors.Wrap(errors.ErrEmpty, "transaction without a message")}
	}
	path := msg.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Check dispatches the transaction to the handler registered for the
// path of its message.
func (r *Router) Check(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	return r.handler(tx).Check(ctx, store, tx)
}

// Deliver dispatches the transaction to the handler registered for the
// path of its message.
func (r *Router) Deliver(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound for its path.
type noSuchPathHandler struct {
	path string
}

var _ lockswap.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

// brokenTxHandler always returns the message extraction error.
type brokenTxHandler struct {
	err error
}

var _ lockswap.Handler = brokenTxHandler{}

func (h brokenTxHandler) Check(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.CheckResult, error) {
	return nil, errors.Wrap(h.err, "cannot route transaction")
}

func (h brokenTxHandler) Deliver(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.DeliverResult, error) {
	return nil, errors.Wrap(h.err, "cannot route transaction")
}
