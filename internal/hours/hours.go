// Package hours decides whether a place is open from its "HH:MM" opening and
// closing times.
package hours

import (
	"time"
)

const layout = "15:04"

// parse returns the minute of day for an "HH:MM" value. Both fields must
// have two digits; time.Parse alone would take "9:00".
func parse(s string) (int, bool) {
	if len(s) != len(layout) || s[2] != ':' {
		return 0, false
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Valid reports whether s is a 24-hour "HH:MM" time of day.
func Valid(s string) bool {
	_, ok := parse(s)
	return ok
}

// IsOpen reports whether now falls strictly between opening and closing.
// All three are compared as naive wall-clock times at minute precision.
// Unparseable input is reported as closed.
//
// Ranges that wrap past midnight (closing <= opening) are never open.
func IsOpen(opening, closing string, now time.Time) bool {
	open, ok := parse(opening)
	if !ok {
		return false
	}
	shut, ok := parse(closing)
	if !ok {
		return false
	}

	current := now.Hour()*60 + now.Minute()
	return current > open && current < shut
}

// OpenNow is IsOpen evaluated against the local clock.
func OpenNow(opening, closing string) bool {
	return IsOpen(opening, closing, time.Now())
}
