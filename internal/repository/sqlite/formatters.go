package sqlite

import (
	"time"
)

const dateLayout = "2006-01-02"

// FormatDateForDB formats an entry date as an ISO date string. Entry dates
// carry no time of day, so the full RFC3339 form is not used.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateFromDB parses an ISO date string from the database into a
// midnight UTC time.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatTimeForDB formats a timestamp as RFC3339 for consistent storage.
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
