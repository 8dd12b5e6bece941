package errors

import "fmt"

// Field returns an error instance that wraps the original error with
// information about the field name that the error refers to. Use this
// function to report validation errors of a single attribute.
//
// A nil error input returns nil, so this can wrap function results
// directly.
func Field(fieldName string, err error, description string) error {
	if err == nil {
		return nil
	}
	err = Wrap(err, description)
	return &fieldError{
		field: fieldName,
		err:   err,
	}
}

// AppendField is a shortcut for composing a multi error out of field
// validation results.
func AppendField(errs error, fieldName string, fieldErr error) error {
	return Append(errs, Field(fieldName, fieldErr, "field failed validation"))
}

// FieldErrors returns the list of all errors that were created for given
// field name. An error must implement the fielder interface to be
// inspected.
func FieldErrors(err error, fieldName string) []error {
	if err == nil {
		return nil
	}

	if u, ok := err.(unpacker); ok {
		var res []error
		for _, e := range u.Unpack() {
			res = append(res, FieldErrors(e, fieldName)...)
		}
		return res
	}

	if f, ok := err.(fielder); ok && f.Field() == fieldName {
		return []error{err}
	}
	return nil
}

type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.field, e.err)
}

func (e *fieldError) Cause() error {
	return e.err
}

func (e *fieldError) Field() string {
	return e.field
}

type fielder interface {
	Field() string
}
