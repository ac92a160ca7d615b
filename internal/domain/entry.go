package domain

import (
	"time"
)

// TimeEntry represents one categorized, timed unit of work for a given date.
// This is a pure domain model without database-specific concerns.
type TimeEntry struct {
	Duration float64 // hours
	Category int
	Account  string // single-character account key, stored lowercase
	Comment  string
	Date     time.Time // date only; time-of-day is always midnight UTC
}

// NewTimeEntry creates a new TimeEntry stamped with the given date.
func NewTimeEntry(duration float64, category int, account string, comment string, date time.Time) TimeEntry {
	return TimeEntry{
		Duration: duration,
		Category: category,
		Account:  NormalizeAccountKey(account),
		Comment:  comment,
		Date:     Midnight(date),
	}
}

// IsValid checks if the time entry has valid data. Registry membership is
// checked separately by the validator; this covers the structural invariants.
func (te TimeEntry) IsValid() bool {
	if te.Duration <= 0 {
		return false
	}
	if len(te.Account) != 1 {
		return false
	}
	return !te.Date.IsZero()
}

// DateString returns the entry date formatted as yyyy-mm-dd.
func (te TimeEntry) DateString() string {
	return te.Date.Format("2006-01-02")
}

// TotalDuration sums the durations of all entries.
func TotalDuration(entries []TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Duration
	}
	return total
}

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
