package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Global error registry. Codes 1-99 are reserved for the errors declared
// in this package. Applications register their own errors with codes
// above 1000.
var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned whenever an event is invalid and cannot be
	// handled.
	ErrMsg = Register(4, "invalid message")

	// ErrModel is returned whenever a message is invalid and cannot
	// be used (ie. persisted).
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate is returned when there is a record already that has
	// the same unique key/index used.
	ErrDuplicate = Register(6, "duplicate")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when an object is in invalid state.
	ErrState = Register(10, "invalid state")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(11, "invalid type")

	// ErrAmount is returned when processing an amount that is invalid,
	// for example not positive where it must be.
	ErrAmount = Register(12, "invalid amount")

	// ErrInsufficientAmount is returned when an amount is too low, for
	// example a balance that cannot cover a transfer.
	ErrInsufficientAmount = Register(13, "insufficient amount")

	// ErrInput stands for general input problems.
	ErrInput = Register(14, "invalid input")

	// ErrExpired stands for an expired deadline.
	ErrExpired = Register(15, "expired")

	// ErrOverflow is used for integer overflows during arithmetics.
	ErrOverflow = Register(16, "an operation cannot be completed due to value exceeding its range")

	// ErrCurrency is used when a currency (ticker) is not what was
	// expected, for example mixing two currencies in one arithmetic
	// operation.
	ErrCurrency = Register(17, "invalid currency")

	// ErrDatabase is returned whenever the underlying storage fails.
	ErrDatabase = Register(20, "database")

	// ErrIteratorDone is returned when an iterator hits the end of its
	// domain.
	ErrIteratorDone = Register(21, "iterator done")

	// ErrDerivation is returned when no proof value produces a valid
	// derived address for the given inputs.
	ErrDerivation = Register(22, "derivation exhausted")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may
// want to declare custom codes. This function ensures that no error code
// is used twice. Attempt to reuse an error code results in panic.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure uniqueness.
var usedCodes = map[uint32]*Error{}

// Error represents a root error.
//
// Instead of returning an arbitrary error instance, use one of the
// errors declared by this package and wrap it to provide the context.
type Error struct {
	code uint32
	desc string
}

func (e *Error) Error() string {
	return e.desc
}

// ABCICode returns the unique code of this error kind.
func (e *Error) ABCICode() uint32 {
	return e.code
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (e *Error) Is(err error) bool {
	for {
		if err == e {
			return true
		}

		// If this is a collection of errors, this error is matching if
		// any of the contained errors is.
		if u, ok := err.(unpacker); ok {
			for _, msg := range u.Unpack() {
				if e.Is(msg) {
					return true
				}
			}
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// New returns a new error, wrapping this declaration with the given
// description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is the formatted variant of New.
func (e *Error) Newf(description string, args ...interface{}) error {
	return Wrapf(e, description, args...)
}

// Wrap extends given error with an additional information.
//
// If the wrapped error does not provide ABCICode method (ie. stdlib
// errors), it will be labeled as internal error.
//
// If err is nil, this returns nil, avoiding the need for an if statement
// when wrapping a potential error returned from a function call.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional functionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) StackTrace() errors.StackTrace {
	// Only the parent carries the stack trace.
	return nil
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// ABCICode returns the error code of the wrapped error, so that the
// rightmost (most inner) registered error determines the result.
func (e *wrappedError) ABCICode() uint32 {
	return abciCode(e.parent)
}

// internalABCICode is the ABCI code of an error that was not created from
// a registered declaration.
const internalABCICode uint32 = 1

// abciCode tests if given error contains an ABCI code and returns the
// value of it if available. Unregistered errors are reported as internal.
func abciCode(err error) uint32 {
	if err == nil {
		panic("abci code of a nil error")
	}

	type coder interface {
		ABCICode() uint32
	}

	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// stackTrace returns the first found stack trace frame carried by given
// error or any wrapped error. It returns nil if no stack trace is found.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	for {
		if st, ok := err.(stackTracer); ok {
			if t := st.StackTrace(); t != nil {
				return t
			}
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// Recover captures a panic and flows it as an ErrPanic error. It must
// be used as a deferred call with a named error return:
//
//   func SafeCall() (err error) {
//       defer errors.Recover(&err)
//       ...
//   }
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type unpacker interface {
	Unpack() []error
}
