package whitelist

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/errors"
)

const (
	pathAdd    = "whitelist/add"
	pathRemove = "whitelist/remove"
)

// AddEntryMsg clears the given address. Only the configured admin may
// issue it.
type AddEntryMsg struct {
	Address lockswap.Address `json:"address"`
}

var _ lockswap.Msg = (*AddEntryMsg)(nil)

func (AddEntryMsg) Path() string {
	return pathAdd
}

func (m *AddEntryMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *AddEntryMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

func (m *AddEntryMsg) Validate() error {
	return errors.Field("Address", m.Address.Validate(), "invalid address")
}

// RemoveEntryMsg removes the clearance of the given address. Only the
// configured admin may issue it.
type RemoveEntryMsg struct {
	Address lockswap.Address `json:"address"`
}

var _ lockswap.Msg = (*RemoveEntryMsg)(nil)

func (RemoveEntryMsg) Path() string {
	return pathRemove
}

func (m *RemoveEntryMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *RemoveEntryMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

func (m *RemoveEntryMsg) Validate() error {
	return errors.Field("Address", m.Address.Validate(), "invalid address")
}
