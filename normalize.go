package grana

import (
	"fmt"
	"time"

	"github.com/luchiari/grana/date"
)

// MalformedDateError reports a raw date string that could not be
// normalized. It is fatal and surfaced to the caller; the engine never
// silently substitutes a default date.
type MalformedDateError struct {
	Input string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q: %v", e.Input, e.Err)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// normalizeFormats are the accepted raw shapes, tried in order: plain
// ISO dates first, then full timestamps as stores commonly emit them.
var normalizeFormats = []string{
	date.DateFormat,
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z0700",
}

// NormalizeDate coerces a raw date string into a calendar date. The
// year, month and day are read from the UTC fields of the parsed
// timestamp, never the local ones, so a date stored as midnight UTC is
// not shifted to the previous day in negative-offset locales.
//
// Unparseable input returns a *MalformedDateError.
func NormalizeDate(raw string) (date.Date, error) {
	var lastErr error
	for _, format := range normalizeFormats {
		on, err := time.Parse(format, raw)
		if err == nil {
			return date.New(on.UTC().Date()), nil
		}
		lastErr = err
	}
	return date.Date{}, &MalformedDateError{Input: raw, Err: lastErr}
}
