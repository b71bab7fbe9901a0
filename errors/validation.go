package errors

import (
	"errors"
	"fmt"
	"sort"
)

// FieldError is a structural validation failure of a single field. Path is the
// dotted wire path of the field, list elements are addressed as name[i].
type FieldError struct {
	Path string
	Err  error
}

// NewFieldError creates a FieldError for the field at path
func NewFieldError(path string, err error) *FieldError {
	return &FieldError{Path: path, Err: err}
}

// Error - implement Error interface
func (fe *FieldError) Error() string {
	if fe.Path == "" {
		return fe.Err.Error()
	}
	return fe.Path + ": " + fe.Err.Error()
}

// Unwrap returns the failure cause
func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// ValidationError collects every field failure found while constructing an entity.
type ValidationError struct {
	Entity string
	MultiError
}

// NewValidationError creates an empty ValidationError for entity
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{Entity: entity}
}

// Add records a failure of the field at path
func (ve *ValidationError) Add(path string, err error) {
	ve.Append(NewFieldError(path, err))
}

// Merge appends the field failures of other, re-rooting their paths under prefix.
func (ve *ValidationError) Merge(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for _, e := range other.Errs {
		var fe *FieldError
		if !errors.As(e, &fe) {
			ve.Append(e)
			continue
		}
		ve.Add(JoinPath(prefix, fe.Path), fe.Err)
	}
}

// Fields returns the sorted paths of the failed fields
func (ve *ValidationError) Fields() []string {
	var paths []string
	for _, e := range ve.Errs {
		var fe *FieldError
		if errors.As(e, &fe) {
			paths = append(paths, fe.Path)
		}
	}
	sort.Strings(paths)
	return paths
}

// ErrorOrNil returns nil when no failure has been recorded
func (ve *ValidationError) ErrorOrNil() error {
	if ve == nil || ve.Count() == 0 {
		return nil
	}
	return ve
}

// Error - implement Error interface
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", ve.Entity, ve.MultiError.Error())
}

// JoinPath appends name to a dotted field path
func JoinPath(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	case name[0] == '[':
		return prefix + name
	}
	return prefix + "." + name
}

// IndexPath addresses the i-th element of the list at path
func IndexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
