package cli

import (
	"context"
	"strings"
)

// DateCommand changes the active date for new entries.
type DateCommand struct {
	app *App
}

// NewDateCommand creates a new date command
func NewDateCommand(app *App) *DateCommand {
	return &DateCommand{app: app}
}

// Execute sets the active date from an ISO date, a day offset, or nothing
// to reset to today
func (c *DateCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.sess.SetDate(strings.Join(args, " ")); err != nil {
		return err
	}
	c.app.printf("logging %s\n", c.app.sess.Date().Format("Mon 2006-01-02"))
	return nil
}

func (c *DateCommand) Usage() string {
	return "set active date: date [YYYY-MM-DD | -N]; no argument means today"
}
