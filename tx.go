package lockswap

import (
	"reflect"

	"github.com/iov-one/lockswap/errors"
)

// Marshaller is anything that can be represented in binary.
//
// Marshall may validate the data before serializing it and unless it is
// valid, return an error.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshal, as this almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers as well.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a message within a transaction. It is a request to make a
// change to the state and the basic unit this framework routes.
type Msg interface {
	Persistent

	// Validate ensures the message is well formed, ignoring state.
	Validate() error

	// Path natively identifies this type of message, used for routing
	// it to the proper handler. Path must be of the form
	// "<extension>/<type>" (eg. "escrow/create").
	Path() string
}

// Tx represents the requests to the application. Each Tx contains
// exactly one Msg. Authentication and fee payment wrappers stay outside
// of this interface.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from the transaction and writes it into
// the destination. The destination must be a non-nil pointer of the same
// type as the transported message. The message is validated before being
// returned.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrEmpty, "transaction without a message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non-nil pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Type() != dst.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dst.Elem().Set(src.Elem())

	return destination.Validate()
}
