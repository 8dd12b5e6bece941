package lockswap

import (
	"time"

	"github.com/tendermint/tendermint/libs/common"
)

// Scheduler is an interface implemented to allow scheduling message
// execution in the future.
type Scheduler interface {
	// Schedule queues given message in the database to be executed at
	// given time. The message will be executed with context containing
	// provided authentication conditions.
	// When successful, the scheduled task ID is returned.
	Schedule(db KVStore, runAt time.Time, auth []Condition, msg Msg) ([]byte, error)

	// Delete removes a scheduled task from the queue. It returns
	// ErrNotFound if task with given ID is not present in the queue.
	Delete(db KVStore, taskID []byte) error
}

// Ticker is an interface used to call background tasks scheduled for
// execution.
type Ticker interface {
	// Tick is a method called at the beginning of the block. It should
	// be used to execute any scheduled tasks that are due.
	//
	// Because beginning of the block does not allow for an error
	// response this method does not return one as well. It is the
	// implementation's responsibility to handle all errors internally.
	Tick(ctx Context, store CacheableKVStore) []common.KVPair
}
