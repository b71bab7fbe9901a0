// Package time parses the ISO-8601 timestamps used on the gateway wire format.
package time

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date form of ISO-8601
const DateLayout = "2006-01-02"

// ErrInvalidTimestamp - the value is not an accepted ISO-8601 form
var ErrInvalidTimestamp = errors.New("invalid iso-8601 timestamp")

// accepted layouts, most specific first. Forms without an offset are read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseISO8601 parses an ISO-8601 date-time or calendar date. The offset is
// preserved when present.
func ParseISO8601(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// FormatDate renders the calendar date of t
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
