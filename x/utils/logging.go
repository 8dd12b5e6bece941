package utils

import (
	"time"

	"github.com/iov-one/lockswap"
)

// Logging decorator logs every request and the time it took to process
// it, using the logger from the context.
type Logging struct{}

var _ lockswap.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug.
func (l Logging) Check(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx, next lockswap.Checker) (*lockswap.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	logDuration(ctx, start, checkLog(res), err)
	return res, err
}

// Deliver logs error -> info, success -> debug.
func (l Logging) Deliver(ctx lockswap.Context, store lockswap.KVStore, tx lockswap.Tx, next lockswap.Deliverer) (*lockswap.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	logDuration(ctx, start, deliverLog(res), err)
	return res, err
}

func checkLog(res *lockswap.CheckResult) string {
	if res == nil {
		return ""
	}
	return res.Log
}

func deliverLog(res *lockswap.DeliverResult) string {
	if res == nil {
		return ""
	}
	return res.Log
}

// logDuration writes information about the time and result to the
// logger.
func logDuration(ctx lockswap.Context, start time.Time, msg string, err error) {
	delta := time.Since(start)
	logger := lockswap.GetLogger(ctx).With("duration", delta/time.Microsecond)
	if err != nil {
		logger = logger.With("err", err)
		logger.Info(msg)
	} else {
		logger.Debug(msg)
	}
}
