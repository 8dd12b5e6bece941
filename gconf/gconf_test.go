package gconf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/codec"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/store"
)

type config struct {
	Window lockswap.UnixDuration `json:"window"`
}

func (c *config) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *config) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

func (c *config) Validate() error {
	return c.Window.Validate()
}

func TestSaveAndLoad(t *testing.T) {
	db := store.MemStore()

	err := Load(db, "mypkg", &config{})
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, Save(db, "mypkg", &config{Window: 120}))

	var got config
	require.NoError(t, Load(db, "mypkg", &got))
	assert.Equal(t, lockswap.UnixDuration(120), got.Window)
}

func TestSaveRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	err := Save(db, "mypkg", &config{Window: -1})
	assert.True(t, errors.ErrState.Is(err))
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := lockswap.Options{
		"conf": json.RawMessage(`{"mypkg": {"window": "48h"}}`),
	}

	var conf config
	require.NoError(t, InitConfig(db, opts, "mypkg", &conf))

	var got config
	require.NoError(t, Load(db, "mypkg", &got))
	assert.Equal(t, lockswap.AsUnixDuration(48*time.Hour), got.Window)
}

func TestInitConfigMissingPackage(t *testing.T) {
	db := store.MemStore()
	opts := lockswap.Options{
		"conf": json.RawMessage(`{"otherpkg": {}}`),
	}
	err := InitConfig(db, opts, "mypkg", &config{})
	assert.True(t, errors.ErrNotFound.Is(err))
}
