package escrow

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
	"github.com/iov-one/lockswap/x"
	"github.com/iov-one/lockswap/x/asset"
)

const (
	createEscrowCost int64 = 300
	settleEscrowCost int64 = 300
	cancelEscrowCost int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r lockswap.Registry, auth x.Authenticator, ctrl asset.Controller) {
	bucket := NewBucket()
	vault := NewVaultController(ctrl)
	r.Handle(pathCreate, CreateEscrowHandler{auth: auth, bucket: bucket, vault: vault})
	r.Handle(pathSettle, SettleEscrowHandler{auth: auth, bucket: bucket, vault: vault, ctrl: ctrl})
	r.Handle(pathCancel, CancelEscrowHandler{auth: auth, bucket: bucket, vault: vault})
}

// CreateEscrowHandler opens a new escrow and funds its vault.
type CreateEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	vault  VaultController
}

var _ lockswap.Handler = CreateEscrowHandler{}

func (h CreateEscrowHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{GasAllocated: createEscrowCost}, nil
}

func (h CreateEscrowHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	msg, maker, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	now, err := lockswap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	cond, proof, err := RecordCondition(maker, msg.Seed)
	if err != nil {
		return nil, err
	}
	escrow := &Escrow{
		Seed:           msg.Seed,
		Maker:          maker,
		TickerA:        msg.Deposit.Ticker,
		Receive:        msg.Receive,
		CreatedAt:      lockswap.AsUnixTime(now),
		Proof:          proof,
		Address:        cond.Address(),
		StorageDeposit: conf.Deposit,
	}
	// The record is written before any funds move, so a (maker, seed)
	// collision fails before the maker is charged.
	if err := h.bucket.Create(db, escrow.Address, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot create escrow")
	}
	if err := h.vault.Open(db, escrow, msg.Deposit); err != nil {
		return nil, err
	}
	return &lockswap.DeliverResult{Data: escrow.Address}, nil
}

func (h CreateEscrowHandler) validate(ctx lockswap.Context, tx lockswap.Tx) (*CreateEscrowMsg, lockswap.Address, error) {
	var msg CreateEscrowMsg
	if err := lockswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	maker := msg.Maker
	if len(maker) == 0 {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
		}
		maker = signer.Address()
	}
	if !h.auth.HasAddress(ctx, maker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "maker did not sign")
	}
	return &msg, maker, nil
}

// SettleEscrowHandler completes the exchange for any taker that pays
// the demanded amount.
type SettleEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	vault  VaultController
	ctrl   asset.Controller
}

var _ lockswap.Handler = SettleEscrowHandler{}

func (h SettleEscrowHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{GasAllocated: settleEscrowCost}, nil
}

func (h SettleEscrowHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	escrow, taker, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The taker pays asset B straight to the maker. The maker's
	// holding is created on first use.
	if err := h.ctrl.MoveCoins(db, taker, escrow.Maker, escrow.Receive); err != nil {
		return nil, errors.Wrap(err, "pay maker")
	}
	if err := h.vault.Release(db, escrow, taker); err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(db, escrow.Address); err != nil {
		return nil, err
	}
	return &lockswap.DeliverResult{Data: escrow.Address}, nil
}

func (h SettleEscrowHandler) validate(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*Escrow, lockswap.Address, error) {
	var msg SettleEscrowMsg
	if err := lockswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.Escrow)
	if err != nil {
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if err := guardLock(ctx, escrow, conf.LockDuration); err != nil {
		return nil, nil, err
	}
	return escrow, signer.Address(), nil
}

// CancelEscrowHandler returns the vault content to the maker.
type CancelEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	vault  VaultController
}

var _ lockswap.Handler = CancelEscrowHandler{}

func (h CancelEscrowHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &lockswap.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

func (h CancelEscrowHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.vault.Release(db, escrow, escrow.Maker); err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(db, escrow.Address); err != nil {
		return nil, err
	}
	return &lockswap.DeliverResult{Data: escrow.Address}, nil
}

func (h CancelEscrowHandler) validate(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*Escrow, error) {
	var msg CancelEscrowMsg
	if err := lockswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.Escrow)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Maker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the maker can cancel")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := guardLock(ctx, escrow, conf.LockDuration); err != nil {
		return nil, err
	}
	return escrow, nil
}

func loadEscrow(db lockswap.ReadOnlyKVStore, bucket orm.ModelBucket, addr lockswap.Address) (*Escrow, error) {
	var escrow Escrow
	if err := bucket.One(db, addr, &escrow); err != nil {
		return nil, errors.Wrapf(err, "escrow %s", addr)
	}
	return &escrow, nil
}
