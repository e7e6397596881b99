package utils

import "time"

// Wire formats used by the mobile clients. Timestamps are always rendered
// in UTC with a literal Z suffix, dates without a time component.
const (
	TimestampLayout = "2006-01-02T15:04:05Z"
	DateLayout      = "2006-01-02"
)

// FormatTimestamp renders a unix-seconds value in the API timestamp format.
// Returns "" for zero/negative values so callers can omit the field.
func FormatTimestamp(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(TimestampLayout)
}

// FormatDate renders a time in the API date format.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Today returns the current UTC date in the API date format.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
