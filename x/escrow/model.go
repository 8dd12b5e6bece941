package escrow

import (
	"encoding/binary"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
)

var (
	// ErrLocked is returned when a terminal transition is attempted
	// before the lock window elapsed.
	ErrLocked = errors.Register(1010, "escrow is time locked")

	// ErrVaultNotEmpty is returned when closing a vault that still
	// holds a balance. This signals a programming error, funds are
	// never discarded.
	ErrVaultNotEmpty = errors.Register(1011, "vault is not empty")
)

// Escrow is the durable record of an open exchange offer. It is created
// by the create transition and never mutated, both terminal transitions
// remove it.
type Escrow struct {
	// Seed is the maker chosen nonce that, together with the maker
	// address, determines where this record lives.
	Seed uint64 `json:"seed"`
	// Maker deposited asset A and is paid asset B (or refunded).
	Maker lockswap.Address `json:"maker"`
	// TickerA names the deposited asset type.
	TickerA string `json:"ticker_a"`
	// Receive is the amount of asset B the maker demands.
	Receive coin.Coin `json:"receive"`
	// CreatedAt starts the lock window.
	CreatedAt lockswap.UnixTime `json:"created_at"`
	// Proof re-derives the record address and with it the authority
	// over the vault.
	Proof lockswap.Proof `json:"proof"`
	// Address is the derived address of this record. It is stored so
	// the vault authority can be verified without a search.
	Address lockswap.Address `json:"address"`
	// StorageDeposit was charged at creation and is returned to the
	// maker when the record is removed. Recorded here so the refund is
	// exact even if the configuration changes in between.
	StorageDeposit coin.Coin `json:"storage_deposit"`
}

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *Escrow) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

func (e *Escrow) Validate() error {
	var err error
	err = errors.AppendField(err, "Maker", e.Maker.Validate())
	if !coin.IsCC(e.TickerA) {
		err = errors.AppendField(err, "TickerA", errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", e.TickerA))
	}
	err = errors.AppendField(err, "Receive", e.Receive.Validate())
	if !e.Receive.IsPositive() {
		err = errors.AppendField(err, "Receive", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if e.Receive.Ticker == e.TickerA {
		err = errors.AppendField(err, "Receive", errors.Wrap(errors.ErrCurrency, "cannot exchange an asset for itself"))
	}
	err = errors.AppendField(err, "CreatedAt", e.CreatedAt.Validate())
	err = errors.AppendField(err, "Address", e.Address.Validate())
	err = errors.AppendField(err, "StorageDeposit", e.StorageDeposit.Validate())
	if !e.StorageDeposit.IsNonNegative() {
		err = errors.AppendField(err, "StorageDeposit", errors.Wrap(errors.ErrAmount, "negative deposit"))
	}
	return err
}

func (e *Escrow) Copy() orm.Model {
	return &Escrow{
		Seed:           e.Seed,
		Maker:          append([]byte(nil), e.Maker...),
		TickerA:        e.TickerA,
		Receive:        *e.Receive.Clone(),
		CreatedAt:      e.CreatedAt,
		Proof:          e.Proof,
		Address:        append([]byte(nil), e.Address...),
		StorageDeposit: *e.StorageDeposit.Clone(),
	}
}

// NewBucket returns a bucket for keeping escrow records, keyed by their
// derived addresses.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("escrow", &Escrow{})
}

// RecordCondition derives the condition of the escrow record of the
// given maker and seed. Its address is where the record is stored and
// at the same time the owner of the vault.
func RecordCondition(maker lockswap.Address, seed uint64) (lockswap.Condition, lockswap.Proof, error) {
	if err := maker.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, "maker")
	}
	return lockswap.Derive("escrow", "seed", seedData(maker, seed))
}

func seedData(maker lockswap.Address, seed uint64) []byte {
	data := make([]byte, len(maker)+8)
	copy(data, maker)
	binary.LittleEndian.PutUint64(data[len(maker):], seed)
	return data
}
