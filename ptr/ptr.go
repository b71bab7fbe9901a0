package ptr

import (
	"time"
)

// FromString returns pointer to string
func FromString(s string) *string {
	return &s
}

// String returns value of pointer or empty string
func String(s *string) string {
	return StringOr(s, "")
}

// StringOr returns value of pointer or alternative value
func StringOr(s *string, or string) string {
	if s == nil {
		return or
	}
	return *s
}

// FromBool returns pointer to bool
func FromBool(b bool) *bool {
	return &b
}

// Bool returns value of pointer or false
func Bool(b *bool) bool {
	return b != nil && *b
}

// FromTime - get the address of the time
func FromTime(t time.Time) *time.Time {
	return &t
}

// Time returns value of pointer or the zero time
func Time(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// To returns a pointer to a copy of v
func To[T any](v T) *T {
	return &v
}

// Value returns value of pointer or the zero value of T
func Value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
