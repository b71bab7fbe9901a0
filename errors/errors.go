package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingField - a mandatory field is absent or null
	ErrMissingField = errors.New("field required")
	// ErrTypeMismatch - the field holds a json value of the wrong kind
	ErrTypeMismatch = errors.New("unexpected value type")
	// ErrInvalidEnumValue - the value is not a member of the closed set
	ErrInvalidEnumValue = errors.New("value is not a permitted enumeration member")
	// ErrMalformedTimestamp - the value is not an ISO-8601 date-time
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrInvalidAmount - the value is not a non-negative decimal amount
	ErrInvalidAmount = errors.New("invalid monetary amount")
	// ErrMalformedJSON - the document is not well formed json
	ErrMalformedJSON = errors.New("malformed json")
	// ErrInvalidRange - a numeric parameter is out of its permitted range
	ErrInvalidRange = errors.New("value out of range")
	// ErrUnknownField - the document carries a field not in the schema (strict decoding only)
	ErrUnknownField = errors.New("unknown field")
)

// ErrorBundle creates a new response error
type ErrorBundle struct {
	cause   error
	message string
	data    interface{}
}

// New creates a new response error
func New(cause error, message string, data interface{}) error {
	return &ErrorBundle{
		cause,
		message,
		data,
	}
}

// Data from error origin
func (e ErrorBundle) Data() interface{} {
	return e.data
}

// Unwrap returns the associated cause
func (e ErrorBundle) Unwrap() error {
	return e.cause
}

// Error turns into an error
func (e ErrorBundle) Error() string {
	return e.message
}

// DataToString returns string representation of data
func (e ErrorBundle) DataToString() string {
	if e.data == nil {
		return "no error bundle data"
	}
	b, err := json.Marshal(e.data)
	if err != nil {
		return fmt.Sprintf("error retrieving error bundle data %s", err.Error())
	}
	return string(b)
}

// Wrap wraps an error
func Wrap(cause error, message string) error {
	return &ErrorBundle{
		cause:   cause,
		message: message,
		data:    nil,
	}
}

// MultiError - allows for multiple errors, not necessarily chained
type MultiError struct {
	Errs []error
}

// Append - append new errors to this multierror
func (me *MultiError) Append(err ...error) {
	if me.Errs == nil {
		me.Errs = []error{}
	}
	me.Errs = append(me.Errs, err...)
}

// Count - get the number of errors contained herein
func (me *MultiError) Count() int {
	return len(me.Errs)
}

type wErrs struct {
	err   error
	cause error
}

func (we *wErrs) Error() string {
	var result string
	if we.err != nil {
		result = we.err.Error()
	}
	if we.cause != nil {
		result += ": " + we.cause.Error()
	}
	return result
}

// Is - implement interface{ Is(error) bool } for equality check
func (we *wErrs) Is(err error) bool {
	return err == we.err
}

// As - implement interface{ As(target interface{}) bool } for equality check
func (we *wErrs) As(target interface{}) bool {
	return errors.As(we.err, target)
}

// Unwrap - implement unwrap interface to get the cause
func (we *wErrs) Unwrap() error {
	return we.cause
}

// Unwrap - implement Unwrap for unwrapping sub errors
func (me *MultiError) Unwrap() error {
	var errs []error
	// iterate over all the errors and wrapped errors
	// make a list so we can put them in wErr nodes
	for _, v := range me.Errs {
		vv := v
		for {
			errs = append(errs, vv)
			// unwrap until cant
			err := errors.Unwrap(vv)
			if err == nil {
				break
			}
			vv = err
		}
	}

	var wrappedErr = new(wErrs)
	for _, v := range errs {
		if v != nil {
			wrappedErr = &wErrs{err: v, cause: wrappedErr}
		}
	}
	wrappedErr = &wErrs{err: errors.New("wrapped errors"), cause: wrappedErr}

	return wrappedErr

}

// Error - implement Error interface
func (me *MultiError) Error() string {
	var errText string
	for _, err := range me.Errs {
		if errText == "" {
			errText = fmt.Sprintf("%s", err)
		} else {
			errText += fmt.Sprintf("; %s", err)
		}
	}
	return errText
}
