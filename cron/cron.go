/*
Package cron implements a persistent queue of messages executed at a
future block. Nothing in this module requires it for correctness, it
exists so that clients can hand over the submission of a settle or
cancel message instead of watching the clock themselves.

A scheduled task is executed at most once per queue entry, in its own
cache wrap. A failing task is logged and removed from the queue, it
never aborts the block.
*/
package cron

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/lockswap"
	"github.com/iov-one/lockswap/errors"
)

// queuePrefix is the key space of the task queue. Keys are ordered by
// execution time, so iterating the prefix returns tasks oldest first.
const queuePrefix = "_crontask:"

// TaskMarshaler is implemented by the application to serialize tasks.
// The cron package cannot know the concrete message types, only the
// application codec does.
type TaskMarshaler interface {
	// MarshalTask serializes given data for storage.
	MarshalTask(auth []lockswap.Condition, msg lockswap.Msg) ([]byte, error)

	// UnmarshalTask deserializes data stored by MarshalTask.
	UnmarshalTask(raw []byte) (auth []lockswap.Condition, msg lockswap.Msg, err error)
}

// JobScheduler queues messages for future execution. It implements the
// lockswap.Scheduler interface.
type JobScheduler struct {
	enc TaskMarshaler
}

var _ lockswap.Scheduler = (*JobScheduler)(nil)

// NewScheduler returns a scheduler using the given marshaler for task
// serialization.
func NewScheduler(enc TaskMarshaler) *JobScheduler {
	return &JobScheduler{enc: enc}
}

// Schedule queues the message to be executed at or after the given
// time. The task ID doubles as the queue key.
//
// Two tasks scheduled for the same nanosecond are stored under
// consecutive keys, so the execution time of a task can be off by the
// number of its same-time siblings.
func (s *JobScheduler) Schedule(db lockswap.KVStore, runAt time.Time, auth []lockswap.Condition, msg lockswap.Msg) ([]byte, error) {
	raw, err := s.enc.MarshalTask(auth, msg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal task")
	}
	for {
		key := queueKey(runAt)
		switch ok, err := db.Has(key); {
		case err != nil:
			return nil, err
		case ok:
			runAt = runAt.Add(time.Nanosecond)
		default:
			if err := db.Set(key, raw); err != nil {
				return nil, err
			}
			return key, nil
		}
	}
}

// Delete removes a scheduled task from the queue.
func (s *JobScheduler) Delete(db lockswap.KVStore, taskID []byte) error {
	switch ok, err := db.Has(taskID); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "task %X", taskID)
	}
	return db.Delete(taskID)
}

func queueKey(t time.Time) []byte {
	key := make([]byte, len(queuePrefix)+8)
	copy(key, queuePrefix)
	binary.BigEndian.PutUint64(key[len(queuePrefix):], uint64(t.UnixNano()))
	return key
}

// TaskTicker drains due tasks on every block. It implements the
// lockswap.Ticker interface.
type TaskTicker struct {
	hn  lockswap.Handler
	enc TaskMarshaler
}

var _ lockswap.Ticker = (*TaskTicker)(nil)

// NewTicker returns a ticker that executes due tasks through the given
// handler.
func NewTicker(h lockswap.Handler, enc TaskMarshaler) *TaskTicker {
	return &TaskTicker{hn: h, enc: enc}
}

// Tick executes all tasks that are due at the block time of the
// context. Failures are logged, never propagated, a block must not be
// held up by a broken task.
func (t *TaskTicker) Tick(ctx lockswap.Context, db lockswap.CacheableKVStore) []common.KVPair {
	tags, err := t.tick(ctx, db)
	if err != nil {
		lockswap.GetLogger(ctx).Error("cron tick failed", "err", err)
	}
	return tags
}

func (t *TaskTicker) tick(ctx lockswap.Context, db lockswap.CacheableKVStore) ([]common.KVPair, error) {
	now, err := lockswap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	due, err := dueTasks(db, now)
	if err != nil {
		return nil, errors.Wrap(err, "due tasks")
	}

	var tags []common.KVPair
	for _, task := range due {
		cache := db.CacheWrap()
		if err := t.runTask(ctx, cache, task.value); err != nil {
			cache.Discard()
			lockswap.GetLogger(ctx).Error("cron task failed",
				"key", fmt.Sprintf("%X", task.key), "err", err)
		} else {
			if err := cache.Write(); err != nil {
				return tags, errors.Wrap(err, "cannot write cache")
			}
			tags = append(tags, common.KVPair{
				Key:   []byte("cron"),
				Value: task.key,
			})
		}
		// Executed means consumed, successful or not.
		if err := db.Delete(task.key); err != nil {
			return tags, errors.Wrap(err, "cannot delete task")
		}
	}
	return tags, nil
}

func (t *TaskTicker) runTask(ctx lockswap.Context, db lockswap.KVStore, raw []byte) error {
	auth, msg, err := t.enc.UnmarshalTask(raw)
	if err != nil {
		return errors.Wrap(err, "unmarshal task")
	}
	ctx = withAuth(ctx, auth)
	_, err = t.hn.Deliver(ctx, db, &taskTx{msg: msg})
	return err
}

type task struct {
	key   []byte
	value []byte
}

// dueTasks returns all tasks scheduled at or before now. The queue is
// fully read before any task runs, the store must not be written during
// iteration.
func dueTasks(db lockswap.ReadOnlyKVStore, now time.Time) ([]task, error) {
	// The end is the first key scheduled after now, exclusive.
	end := queueKey(now.Add(time.Nanosecond))
	it, err := db.Iterator([]byte(queuePrefix), end)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var due []task
	for it.Valid() {
		due = append(due, task{
			key:   append([]byte(nil), it.Key()...),
			value: append([]byte(nil), it.Value()...),
		})
		if err := it.Next(); err != nil {
			return nil, err
		}
	}
	return due, nil
}

// taskTx wraps a deserialized message so it can travel through the
// regular handler stack.
type taskTx struct {
	msg lockswap.Msg
}

var _ lockswap.Tx = (*taskTx)(nil)

func (tx *taskTx) GetMsg() (lockswap.Msg, error) {
	return tx.msg, nil
}

func (tx *taskTx) Marshal() ([]byte, error) {
	return nil, errors.Wrap(errors.ErrState, "a task transaction cannot be marshaled")
}

func (tx *taskTx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrState, "a task transaction cannot be unmarshaled")
}
