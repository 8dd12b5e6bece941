package asset

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/x"
)

const sendTxCost int64 = 100

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r lockswap.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(pathSend, SendHandler{auth: auth, ctrl: ctrl})
}

// SendHandler will handle sending coins.
type SendHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ lockswap.Handler = SendHandler{}

// Check verifies the message and charges the standard fee.
func (h SendHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver moves the tokens from sender to receiver if all conditions
// are met.
func (h SendHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	msg, sender, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, sender, msg.Dest, msg.Amount); err != nil {
		return nil, err
	}
	return &lockswap.DeliverResult{}, nil
}

// validate extracts the message and ensures the sender authorized it.
func (h SendHandler) validate(ctx lockswap.Context, tx lockswap.Tx) (*SendMsg, lockswap.Address, error) {
	var msg SendMsg
	if err := lockswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	sender := msg.Src
	if len(sender) == 0 {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		sender = signer.Address()
	}
	if !h.auth.HasAddress(ctx, sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "sender did not sign")
	}
	return &msg, sender, nil
}
