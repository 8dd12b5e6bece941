package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements the unpacker interface, it is flattened and
// the errors it contains are directly included in the resulting multi
// error instead.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		switch e := e.(type) {
		case nil:
			continue
		case multiError:
			res = append(res, e...)
		default:
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type multiError []error

var _ unpacker = (multiError)(nil)

func (e multiError) Unpack() []error {
	return e
}

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// ABCICode of a multi error is the code of the first contained error
// that carries one.
func (e multiError) ABCICode() uint32 {
	for _, err := range e {
		if code := abciCode(err); code != internalABCICode {
			return code
		}
	}
	return internalABCICode
}
