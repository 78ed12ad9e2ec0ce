package util

import "time"

// NewDate builds a UTC midnight timestamp, the resolution every stored price
// and macro observation uses.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateLte compares timestamps at day resolution: true when t1 is on or
// before t2's calendar day.
func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || SameDay(t1, t2)
}
