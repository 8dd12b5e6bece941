package escrow

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/x/asset"
)

// VaultController performs all asset movement of this package. The
// vault of a record is the asset-A holding account owned by the record
// address, so no signing key can ever touch it. Every operation that
// moves funds out of the vault re-derives the record address from the
// stored proof first. A record whose proof does not reproduce its own
// address carries no authority.
type VaultController struct {
	ctrl asset.Controller
}

// NewVaultController returns a controller moving assets through the
// given asset controller, policy included.
func NewVaultController(ctrl asset.Controller) VaultController {
	return VaultController{ctrl: ctrl}
}

// Open funds the vault of the record from the maker's holdings: the
// deposit of asset A and the storage deposit recorded on e. It fails
// with ErrInsufficientAmount when the maker cannot cover both.
func (c VaultController) Open(db lockswap.KVStore, e *Escrow, deposit coin.Coin) error {
	if deposit.Ticker != e.TickerA {
		return errors.Wrapf(errors.ErrCurrency, "vault holds %s, not %s", e.TickerA, deposit.Ticker)
	}
	if err := c.ctrl.MoveCoins(db, e.Maker, e.Address, deposit); err != nil {
		return errors.Wrap(err, "fund vault")
	}
	if e.StorageDeposit.IsPositive() {
		if err := c.ctrl.MoveCoins(db, e.Maker, e.Address, e.StorageDeposit); err != nil {
			return errors.Wrap(err, "charge storage deposit")
		}
	}
	return nil
}

// Release drains and closes the vault: the storage deposit goes back to
// the maker, the full asset-A balance goes to dest. Settle releases to
// the taker, cancel back to the maker.
func (c VaultController) Release(db lockswap.KVStore, e *Escrow, dest lockswap.Address) error {
	if err := c.authorize(e); err != nil {
		return err
	}
	// The deposit is refunded first so that the balance left in the
	// vault is exactly the original asset-A deposit.
	if e.StorageDeposit.IsPositive() {
		if err := c.ctrl.MoveCoins(db, e.Address, e.Maker, e.StorageDeposit); err != nil {
			return errors.Wrap(err, "refund storage deposit")
		}
	}
	balance, err := c.ctrl.Balance(db, e.Address, e.TickerA)
	if err != nil {
		return errors.Wrap(err, "vault balance")
	}
	if balance.IsPositive() {
		if err := c.ctrl.MoveCoins(db, e.Address, dest, balance); err != nil {
			return errors.Wrap(err, "pay out vault")
		}
	}
	return c.closeVault(db, e)
}

// authorize verifies that the stored proof re-derives the record's own
// address. This is the capability check replacing a vault signing key.
func (c VaultController) authorize(e *Escrow) error {
	cond, err := lockswap.DeriveWithProof("escrow", "seed", seedData(e.Maker, e.Seed), e.Proof)
	if err != nil {
		return errors.Wrap(errors.ErrUnauthorized, "proof does not derive")
	}
	if !cond.Address().Equals(e.Address) {
		return errors.Wrap(errors.ErrUnauthorized, "proof derives a different address")
	}
	return nil
}

// closeVault removes the emptied holding accounts of the record. A
// remaining balance fails with ErrVaultNotEmpty.
func (c VaultController) closeVault(db lockswap.KVStore, e *Escrow) error {
	if err := c.closeHolding(db, e.Address, e.TickerA); err != nil {
		return err
	}
	// The storage deposit may live in its own holding account.
	if e.StorageDeposit.IsPositive() && e.StorageDeposit.Ticker != e.TickerA {
		return c.closeHolding(db, e.Address, e.StorageDeposit.Ticker)
	}
	return nil
}

func (c VaultController) closeHolding(db lockswap.KVStore, owner lockswap.Address, ticker string) error {
	switch err := c.ctrl.CloseHolding(db, owner, ticker); {
	case err == nil:
		return nil
	case errors.ErrState.Is(err):
		return errors.Wrapf(ErrVaultNotEmpty, "%s of %s", ticker, owner)
	default:
		return err
	}
}
