package errors

import "errors"

// IsErrValidation is a helper method for determining if an error is a structural validation failure
func IsErrValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsErrMissingField is a helper method for determining if an error indicates an absent mandatory field
func IsErrMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// FieldPaths returns the failed field paths of a validation error, or nil for any other error
func FieldPaths(err error) []string {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	return ve.Fields()
}
