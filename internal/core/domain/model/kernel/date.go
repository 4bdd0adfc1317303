package kernel

import "time"

// DateOf drops the clock part of t, keeping the calendar date in UTC.
// Entity dates are calendar dates, so every date stored or compared passes through here.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days from start to end, both included.
// It returns 0 when end precedes start.
func DaysInclusive(start, end time.Time) int {
	s, e := DateOf(start), DateOf(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
