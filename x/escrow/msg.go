package escrow

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
)

const (
	pathCreate = "escrow/create"
	pathSettle = "escrow/settle"
	pathCancel = "escrow/cancel"
)

// CreateEscrowMsg opens a new escrow. The deposit is taken from the
// maker's holding and locked in the vault until settle or cancel.
type CreateEscrowMsg struct {
	// Maker is the depositing party. Defaults to the main signer.
	Maker lockswap.Address `json:"maker"`
	// Seed distinguishes multiple escrows of the same maker.
	Seed uint64 `json:"seed"`
	// Deposit is the amount of asset A locked in the vault.
	Deposit coin.Coin `json:"deposit"`
	// Receive is the amount of asset B demanded in return.
	Receive coin.Coin `json:"receive"`
}

var _ lockswap.Msg = (*CreateEscrowMsg)(nil)

func (CreateEscrowMsg) Path() string {
	return pathCreate
}

func (m *CreateEscrowMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *CreateEscrowMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

func (m *CreateEscrowMsg) Validate() error {
	var err error
	if len(m.Maker) != 0 {
		err = errors.AppendField(err, "Maker", m.Maker.Validate())
	}
	err = errors.AppendField(err, "Deposit", m.Deposit.Validate())
	if !m.Deposit.IsPositive() {
		err = errors.AppendField(err, "Deposit", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	err = errors.AppendField(err, "Receive", m.Receive.Validate())
	if !m.Receive.IsPositive() {
		err = errors.AppendField(err, "Receive", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if m.Deposit.Ticker == m.Receive.Ticker {
		err = errors.AppendField(err, "Receive", errors.Wrap(errors.ErrCurrency, "cannot exchange an asset for itself"))
	}
	return err
}

// SettleEscrowMsg completes the exchange. The signer is the taker and
// pays the demanded amount of asset B for the vault content.
type SettleEscrowMsg struct {
	// Escrow is the derived address of the record.
	Escrow lockswap.Address `json:"escrow"`
}

var _ lockswap.Msg = (*SettleEscrowMsg)(nil)

func (SettleEscrowMsg) Path() string {
	return pathSettle
}

func (m *SettleEscrowMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *SettleEscrowMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

func (m *SettleEscrowMsg) Validate() error {
	return errors.Field("Escrow", m.Escrow.Validate(), "invalid escrow address")
}

// CancelEscrowMsg returns the vault content to the maker. Only the
// maker can cancel.
type CancelEscrowMsg struct {
	// Escrow is the derived address of the record.
	Escrow lockswap.Address `json:"escrow"`
}

var _ lockswap.Msg = (*CancelEscrowMsg)(nil)

func (CancelEscrowMsg) Path() string {
	return pathCancel
}

func (m *CancelEscrowMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *CancelEscrowMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

func (m *CancelEscrowMsg) Validate() error {
	return errors.Field("Escrow", m.Escrow.Validate(), "invalid escrow address")
}
