// Package dateutil provides pure calendar-date helpers over ISO 8601 date
// strings (YYYY-MM-DD). All arithmetic uses local calendar fields only; no
// timezone conversion is performed. Malformed input is not guarded.
package dateutil

import "time"

// ISOLayout is the wire format for calendar dates.
const ISOLayout = "2006-01-02"

// ToISODate formats a date using its local calendar fields.
func ToISODate(t time.Time) string {
	return t.Format(ISOLayout)
}

// FromISODate constructs a local-midnight time from an ISO date string.
func FromISODate(iso string) time.Time {
	t, _ := time.ParseInLocation(ISOLayout, iso, time.Local)
	return t
}

// Today returns the current local calendar date as an ISO string.
func Today() string {
	return ToISODate(time.Now())
}

// StartOfWeek returns the Sunday on or before the given date. The week model
// is Sunday-first, seven days.
func StartOfWeek(iso string) string {
	t := FromISODate(iso)
	return ToISODate(t.AddDate(0, 0, -int(t.Weekday())))
}

// AddDays performs calendar arithmetic; month and year rollover are handled
// by the standard library's date normalization.
func AddDays(iso string, n int) string {
	return ToISODate(FromISODate(iso).AddDate(0, 0, n))
}
