package asset

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/coin"
	"github.com/iov-one/lockswap/errors"
)

const pathSend = "asset/send"

const maxMemoSize = 128

// SendMsg moves the amount between the holdings of two owners.
type SendMsg struct {
	// Src is the owner paying. When empty, the main signer of the
	// transaction is used.
	Src lockswap.Address `json:"src"`
	// Dest is the owner being paid. The destination holding is created
	// when it does not exist yet.
	Dest lockswap.Address `json:"dest"`
	// Amount to move, must be positive.
	Amount coin.Coin `json:"amount"`
	// Memo is a free form human readable note.
	Memo string `json:"memo"`
}

var _ lockswap.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return pathSend
}

func (m *SendMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// Validate makes sure that this is sensible.
func (m *SendMsg) Validate() error {
	var err error
	if len(m.Src) != 0 {
		err = errors.AppendField(err, "Src", m.Src.Validate())
	}
	err = errors.AppendField(err, "Dest", m.Dest.Validate())
	err = errors.AppendField(err, "Amount", m.Amount.Validate())
	if !m.Amount.IsPositive() {
		err = errors.AppendField(err, "Amount", errors.Wrapf(errors.ErrAmount, "non-positive: %v", m.Amount))
	}
	if len(m.Memo) > maxMemoSize {
		err = errors.AppendField(err, "Memo", errors.Wrapf(errors.ErrInput, "memo longer than %d characters", maxMemoSize))
	}
	return err
}
