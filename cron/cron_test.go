package cron

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
	"github.com/iov-one/lockswap/store"
	"github.com/iov-one/lockswap/swaptest"
)

// jsonEnc serializes tasks as JSON. Tests transport swaptest messages
// only, so a single concrete type is enough.
type jsonEnc struct{}

func (jsonEnc) MarshalTask(auth []lockswap.Condition, msg lockswap.Msg) ([]byte, error) {
	raw, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Auth []lockswap.Condition
		Raw  []byte
		Path string
	}{Auth: auth, Raw: raw, Path: msg.Path()})
}

func (jsonEnc) UnmarshalTask(raw []byte) ([]lockswap.Condition, lockswap.Msg, error) {
	var payload struct {
		Auth []lockswap.Condition
		Raw  []byte
		Path string
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, err
	}
	return payload.Auth, &swaptest.Msg{RoutePath: payload.Path, Serialized: payload.Raw}, nil
}

func blockCtx(at time.Time) lockswap.Context {
	return lockswap.WithBlockTime(context.Background(), at)
}

func TestScheduleAndDelete(t *testing.T) {
	db := store.MemStore()
	s := NewScheduler(jsonEnc{})

	now := time.Now()
	msg := &swaptest.Msg{RoutePath: "test/any"}

	first, err := s.Schedule(db, now, nil, msg)
	require.NoError(t, err)

	// Same time schedules to a sibling slot, not over the first task.
	second, err := s.Schedule(db, now, nil, msg)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, s.Delete(db, first))
	err = s.Delete(db, first)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
	require.NoError(t, s.Delete(db, second))
}

func TestTickExecutesDueTasks(t *testing.T) {
	db := store.MemStore()
	s := NewScheduler(jsonEnc{})

	now := time.Now()
	handler := &swaptest.Handler{}
	ticker := NewTicker(handler, jsonEnc{})

	_, err := s.Schedule(db, now.Add(-time.Hour), nil, &swaptest.Msg{RoutePath: "test/past"})
	require.NoError(t, err)
	due, err := s.Schedule(db, now, nil, &swaptest.Msg{RoutePath: "test/now"})
	require.NoError(t, err)
	_, err = s.Schedule(db, now.Add(time.Hour), nil, &swaptest.Msg{RoutePath: "test/future"})
	require.NoError(t, err)

	tags := ticker.Tick(blockCtx(now), db)

	// Past and current tasks ran and are gone, the future one stays.
	assert.Equal(t, 2, handler.DeliverCall)
	require.Len(t, tags, 2)
	assert.Equal(t, []byte("cron"), tags[0].Key)
	assert.Equal(t, due, tags[1].Value)
	err = s.Delete(db, due)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	// The next tick has nothing to do.
	assert.Len(t, ticker.Tick(blockCtx(now), db), 0)
	assert.Equal(t, 2, handler.DeliverCall)
}

func TestTickWritesTaskState(t *testing.T) {
	db := store.MemStore()
	s := NewScheduler(jsonEnc{})
	now := time.Now()

	handler := &swaptest.WriteHandler{Key: []byte("a"), Value: []byte("b")}
	ticker := NewTicker(handler, jsonEnc{})

	_, err := s.Schedule(db, now, nil, &swaptest.Msg{RoutePath: "test/write"})
	require.NoError(t, err)

	ticker.Tick(blockCtx(now), db)

	got, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestTickDiscardsFailedTask(t *testing.T) {
	db := store.MemStore()
	s := NewScheduler(jsonEnc{})
	now := time.Now()

	boom := errors.Wrap(errors.ErrState, "boom")
	handler := &swaptest.WriteHandler{Key: []byte("a"), Value: []byte("b"), Err: boom}
	ticker := NewTicker(handler, jsonEnc{})

	taskID, err := s.Schedule(db, now, nil, &swaptest.Msg{RoutePath: "test/fail"})
	require.NoError(t, err)

	tags := ticker.Tick(blockCtx(now), db)

	// No tag and no partial write, but the task is consumed.
	assert.Len(t, tags, 0)
	got, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, got)
	err = s.Delete(db, taskID)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestTaskAuthentication(t *testing.T) {
	db := store.MemStore()
	s := NewScheduler(jsonEnc{})
	now := time.Now()

	cond := swaptest.NewCondition()
	handler := &authedHandler{}
	ticker := NewTicker(handler, jsonEnc{})

	_, err := s.Schedule(db, now, []lockswap.Condition{cond}, &swaptest.Msg{RoutePath: "test/auth"})
	require.NoError(t, err)

	ticker.Tick(blockCtx(now), db)
	require.Len(t, handler.conds, 1)
	assert.True(t, cond.Equals(handler.conds[0]))
}

// authedHandler records the conditions the cron authenticator reveals
// during delivery.
type authedHandler struct {
	conds []lockswap.Condition
}

func (h *authedHandler) Check(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.CheckResult, error) {
	return &lockswap.CheckResult{}, nil
}

func (h *authedHandler) Deliver(ctx lockswap.Context, db lockswap.KVStore, tx lockswap.Tx) (*lockswap.DeliverResult, error) {
	h.conds = Authenticator{}.GetConditions(ctx)
	return &lockswap.DeliverResult{}, nil
}
