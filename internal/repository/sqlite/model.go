package sqlite

import (
	"time"

	"github.com/blairfrandeen/titr/internal/domain"
)

// LogRow is a persisted time entry as stored in the time_log table.
type LogRow struct {
	ID         int64
	SessionID  int64
	Date       time.Time
	Duration   float64
	CategoryID int
	AccountKey string
	Comment    string
}

// SessionRow records one commit of a console session.
type SessionRow struct {
	ID         int64
	CreatedAt  time.Time
	EntryCount int
}

// ToDomain converts a log row back into a time entry.
func (r *LogRow) ToDomain() domain.TimeEntry {
	return domain.TimeEntry{
		Duration: r.Duration,
		Category: r.CategoryID,
		Account:  r.AccountKey,
		Comment:  r.Comment,
		Date:     r.Date,
	}
}

// RowsToDomain converts a slice of log rows into time entries.
func RowsToDomain(rows []*LogRow) []domain.TimeEntry {
	entries := make([]domain.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}
	return entries
}
