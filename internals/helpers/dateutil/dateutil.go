// file: internals/helpers/dateutil/dateutil.go
package dateutil

import (
	"strings"
	"time"

	helper "schoolcal_backend/internals/helpers"
)

// Layout is the canonical wire/storage form for calendar dates.
const Layout = "2006-01-02"

// Accepted input layouts, tried in order. Datetime inputs keep the calendar
// date exactly as written: the time portion is discarded, never shifted
// into another zone.
var inputLayouts = []string{
	Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Normalize converts heterogeneous date input to canonical "YYYY-MM-DD".
// Empty/whitespace input returns ("", nil) — the no-date sentinel for
// contexts where a date is optional. Unparseable input returns a
// ValidationError naming the field.
func Normalize(s, field string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(Layout), nil
		}
	}
	return "", helper.NewValidationError("Invalid date format", field)
}

// NormalizeRequired is Normalize with the no-date sentinel rejected.
func NormalizeRequired(s, field string) (string, error) {
	out, err := Normalize(s, field)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", helper.MissingFieldsError(field)
	}
	return out, nil
}

// ToTime parses an already-canonical date string into a UTC midnight
// time.Time for the date-typed columns.
func ToTime(canonical string) time.Time {
	t, _ := time.ParseInLocation(Layout, canonical, time.UTC)
	return t
}

// Format renders a stored date column back to its canonical string.
func Format(t time.Time) string {
	return t.Format(Layout)
}
