package lockswap

import (
	"encoding/json"
	"time"

	"github.com/iov-one/lockswap/errors"
)

// UnixTime represents a point in time as a POSIX time.
// This type comes in handy when dealing with serialized models. Instead
// of using Go's time.Time that includes nanoseconds use primitive int64
// type and seconds precision.
type UnixTime int64

// Time returns a time.Time structure that represents the same moment in
// time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Add modifies this UNIX time by given duration. Any duration value
// smaller than a second is ignored as it cannot be represented by the
// UnixTime type.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// AsUnixTime converts given Time structure into its UNIX time
// representation. All time information more granular than a second is
// dropped as it cannot be represented by the UnixTime type.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a
// number. Usually a number is used as a representation of this time in
// JSON but it is convenient to use a string format in configurations.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		unix := UnixTime(n)
		if err := unix.Validate(); err != nil {
			return err
		}
		*t = unix
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := AsUnixTime(stdtime)
		if err := unix.Validate(); err != nil {
			return err
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// MarshalJSON returns a JSON representation as a number.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(t))
}

const maxUnixTime = 253402300799 // 9999-12-31 23:59:59

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative time")
	}
	if t > maxUnixTime {
		return errors.Wrap(errors.ErrState, "time must be an A.D. value")
	}
	return nil
}

// String returns the usual formatting of this time.
func (t UnixTime) String() string {
	return t.Time().UTC().String()
}

// UnixDuration represents a time duration with granularity of a second.
// This type should be used mostly for serialized model declarations.
type UnixDuration int32

// AsUnixDuration converts given Duration into UnixDuration. Because of
// the difference in precision this conversion is lossy.
func AsUnixDuration(d time.Duration) UnixDuration {
	return UnixDuration(d / time.Second)
}

// Duration returns the time.Duration representation of this duration.
func (d UnixDuration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// UnmarshalJSON loads JSON serialized representation into this value.
// JSON serialized value can be represented as both a number of seconds
// and a human readable string as supported by time.ParseDuration.
func (d *UnixDuration) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		dur, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		*d = AsUnixDuration(dur)
		return nil
	}

	var n int32
	if err := json.Unmarshal(raw, &n); err != nil {
		return errors.Wrap(errors.ErrInput, "invalid duration format")
	}
	*d = UnixDuration(n)
	return nil
}

// MarshalJSON returns a JSON representation as a number of seconds.
func (d UnixDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(int32(d))
}

// Validate returns an error if this duration value is invalid.
func (d UnixDuration) Validate() error {
	if d < 0 {
		return errors.Wrap(errors.ErrState, "negative duration")
	}
	return nil
}

func (d UnixDuration) String() string {
	return d.Duration().String()
}

// IsExpired returns true if given time is in the past as compared to the
// "current" time as declared for the context. The expiration is
// inclusive, so a value equal to the current block time is already
// expired.
//
// This function panics if the block time is not present in the context.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		panic("context must carry the block time")
	}
	return t <= AsUnixTime(blockNow)
}

// InThePast returns true if given time is in the past as compared to the
// current time as declared in the context. Context "now" is not included
// in the past.
func InThePast(ctx Context, t time.Time) bool {
	blockNow, err := BlockTime(ctx)
	if err != nil {
		panic("context must carry the block time")
	}
	return t.Before(blockNow)
}
