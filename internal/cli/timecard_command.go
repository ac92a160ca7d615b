package cli

import (
	"context"
	"time"

	"github.com/blairfrandeen/titr/internal/domain"
)

// TimecardCommand summarizes the logged hours for the week containing the
// active date.
type TimecardCommand struct {
	app *App
}

// NewTimecardCommand creates a new timecard command
func NewTimecardCommand(app *App) *TimecardCommand {
	return &TimecardCommand{app: app}
}

// Execute prints per-day totals, Monday through Sunday, for the active
// date's week. Only committed entries count; the staged session is shown by
// preview instead.
func (c *TimecardCommand) Execute(ctx context.Context, args []string) error {
	start := weekStart(c.app.sess.Date())
	end := start.AddDate(0, 0, 6)

	entries, err := c.app.repo.EntriesBetween(ctx, start, end)
	if err != nil {
		return err
	}

	byDay := make(map[string]float64, 7)
	for _, entry := range entries {
		byDay[entry.DateString()] += entry.Duration
	}

	c.app.printf("week of %s\n", start.Format("2006-01-02"))
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		c.app.printf("  %s  %6.2f h\n", day.Format("Mon 2006-01-02"), byDay[day.Format("2006-01-02")])
	}
	c.app.printf("  total           %6.2f h\n", domain.TotalDuration(entries))
	return nil
}

func (c *TimecardCommand) Usage() string {
	return "show committed hours per day for the active date's week"
}

// weekStart returns the Monday of t's week.
func weekStart(t time.Time) time.Time {
	t = domain.Midnight(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
