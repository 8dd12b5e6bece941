package utils

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/store"
	"github.com/iov-one/lockswap/swaptest"
)

func TestLoggingPassesResultsThrough(t *testing.T) {
	var buf bytes.Buffer
	ctx := lockswap.WithLogger(context.Background(), log.NewTMLogger(&buf))
	db := store.MemStore()

	h := &swaptest.Handler{
		CheckResult:   lockswap.CheckResult{Log: "checked"},
		DeliverResult: lockswap.DeliverResult{Log: "delivered"},
	}
	dec := NewLogging()

	cres, err := dec.Check(ctx, db, &swaptest.Tx{}, h)
	require.NoError(t, err)
	assert.Equal(t, "checked", cres.Log)

	dres, err := dec.Deliver(ctx, db, &swaptest.Tx{}, h)
	require.NoError(t, err)
	assert.Equal(t, "delivered", dres.Log)

	assert.Equal(t, 2, h.CallCount())
	assert.Contains(t, buf.String(), "checked")
	assert.Contains(t, buf.String(), "delivered")
	assert.Contains(t, buf.String(), "duration")
}

func TestLoggingReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	ctx := lockswap.WithLogger(context.Background(), log.NewTMLogger(&buf))
	db := store.MemStore()

	h := &swaptest.Handler{
		DeliverErr: errors.ErrState.New("boom"),
	}
	_, err := NewLogging().Deliver(ctx, db, &swaptest.Tx{}, h)
	assert.True(t, errors.ErrState.Is(err))
	assert.Contains(t, buf.String(), "boom")
}
