package swaptest

import (
	"github.com/iov-one/lockswap"
)

// Msg is a mock implementation of the lockswap.Msg interface.
type Msg struct {
	// RoutePath is returned by the Path method.
	RoutePath string

	// Serialized is returned by the Marshal method and set by the
	// Unmarshal method.
	Serialized []byte

	// Err, if set, is returned by both Marshal and Validate.
	Err error
}

var _ lockswap.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}

func (m *Msg) Validate() error {
	return m.Err
}

// Tx is a mock implementation of the lockswap.Tx interface. It transports
// a single message without serialization support.
type Tx struct {
	// Msg is the message this transaction transports.
	Msg lockswap.Msg

	// Err, if set, is returned by GetMsg.
	Err error
}

var _ lockswap.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (lockswap.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, nil
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("test transaction deserialization is not implemented")
}
