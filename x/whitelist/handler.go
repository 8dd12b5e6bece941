package whitelist

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
	"github.com/iov-one/lockswap/x"
)

const (
	addEntryCost    int64 = 100
	removeEntryCost int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r lockswap.Registry, auth x.Authenticator) {
	bucket := NewBucket()
	r.Handle(pathAdd, AddEntryHandler{auth: auth, bucket: bucket})
	r.Handle(pathRemove, RemoveEntryHandler{auth: auth, bucket: bucket})
}

// AddEntryHandler whitelists an address. Admin only.
type AddEntryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ lockswap.Handler = AddEntryHandler{}

func (h AddEntryHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{GasAllocated: addEntryCost}, nil
}

func (h AddEntryHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := lockswap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	entry := Entry{
		Address:   msg.Address,
		CreatedAt: lockswap.AsUnixTime(now),
	}
	if err := h.bucket.Create(db, msg.Address, &entry); err != nil {
		return nil, errors.Wrap(err, "cannot whitelist")
	}
	return &lockswap.DeliverResult{Data: msg.Address}, nil
}

func (h AddEntryHandler) validate(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*AddEntryMsg, error) {
	var msg AddEntryMsg
	if err := lockswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := authorizeAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RemoveEntryHandler removes a whitelisted address. Admin only.
type RemoveEntryHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ lockswap.Handler = RemoveEntryHandler{}

func (h RemoveEntryHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{GasAllocated: removeEntryCost}, nil
}

func (h RemoveEntryHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(db, msg.Address); err != nil {
		return nil, errors.Wrap(err, "cannot remove entry")
	}
	return &lockswap.DeliverResult{Data: msg.Address}, nil
}

func (h RemoveEntryHandler) validate(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*RemoveEntryMsg, error) {
	var msg RemoveEntryMsg
	if err := lockswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := authorizeAdmin(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// authorizeAdmin ensures the configured admin signed the transaction.
func authorizeAdmin(ctx lockswap.Context, db lockswap.ReadOnlyKVStore, auth x.Authenticator) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Admin) {
		return errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	return nil
}
