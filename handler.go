package lockswap

import (
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error response from validating a
// transaction before it is executed.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created
	// entity.
	Data []byte

	// Log is human-readable informational string.
	Log string

	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64

	// GasPayment is the total fees for this tx (or other source of
	// payment).
	GasPayment int64
}

// DeliverResult captures any non-error response from executing a
// transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created
	// entity.
	Data []byte

	// Log is human-readable informational string.
	Log string

	// GasUsed is the units of work performed.
	GasUsed int64

	// Tags are indexed by the blockchain node and allow the results to
	// be searched for.
	Tags []common.KVPair
}

// Handler is a core engine that can process a few specific messages.
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a
// transaction. It is its own interface to allow better type controls in
// the next arguments in Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction. It is its
// own interface to allow better type controls in the next arguments in
// Decorator.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality like
// logging, or rollback on error.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler, the setup side of
// a Router.
type Registry interface {
	// Handle assigns the given handler to handle all messages with the
	// given path.
	Handle(path string, h Handler)
}
