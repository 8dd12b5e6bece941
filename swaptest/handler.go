package swaptest

import (
	"github.com/iov-one/lockswap"
)

// Handler is a mock implementation of the lockswap.Handler interface. It
// counts the calls and returns the configured results.
type Handler struct {
	CheckCall   int
	DeliverCall int

	CheckResult   lockswap.CheckResult
	CheckErr      error
	DeliverResult lockswap.DeliverResult
	DeliverErr    error
}

var _ lockswap.Handler = (*Handler)(nil)

func (h *Handler) Check(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.CheckResult, error) {
	h.CheckCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.DeliverResult, error) {
	h.DeliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CallCount returns the total number of calls of both Check and
// Deliver.
func (h *Handler) CallCount() int {
	return h.CheckCall + h.DeliverCall
}

// WriteHandler writes the given key/value pair on every call and then
// returns the configured error.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ lockswap.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &lockswap.DeliverResult{}, h.Err
}

// PanicHandler panics on every call.
type PanicHandler struct {
	Msg string
}

var _ lockswap.Handler = (*PanicHandler)(nil)

func (h *PanicHandler) Check(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.CheckResult, error) {
	panic(h.Msg)
}

func (h *PanicHandler) Deliver(lockswap.Context, lockswap.KVStore, lockswap.Tx) (*lockswap.DeliverResult, error) {
	panic(h.Msg)
}
