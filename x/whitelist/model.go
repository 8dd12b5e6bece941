/*
Package whitelist maintains the set of owners cleared to pay out of
their holdings, and provides the transfer policy that enforces it.

The set is managed by a configured admin. When the policy is plugged
into the asset controller, a transfer from an unlisted owner is denied
before any balance changes.
*/
package whitelist

import (
	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/orm"
)

// Entry marks a single owner as cleared. Entries are keyed by the owner
// address.
type Entry struct {
	// Address of the cleared owner.
	Address lockswap.Address `json:"address"`
	// CreatedAt is set when the admin adds the entry.
	CreatedAt lockswap.UnixTime `json:"created_at"`
}

var _ orm.Model = (*Entry)(nil)

func (e *Entry) Marshal() ([]byte, error) {
	return codec.Marshal(e)
}

func (e *Entry) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, e)
}

func (e *Entry) Validate() error {
	var err error
	err = errors.AppendField(err, "Address", e.Address.Validate())
	err = errors.AppendField(err, "CreatedAt", e.CreatedAt.Validate())
	return err
}

func (e *Entry) Copy() orm.Model {
	return &Entry{
		Address:   append([]byte(nil), e.Address...),
		CreatedAt: e.CreatedAt,
	}
}

// NewBucket returns a bucket for keeping whitelist entries.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("wlist", &Entry{})
}
