package cli

import (
	"context"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
)

// deepWorkWindowDays is the rolling window the goal is measured over.
const deepWorkWindowDays = 365

// DeepWorkCommand reports progress against the configured deep work goal.
type DeepWorkCommand struct {
	app *App
}

// NewDeepWorkCommand creates a new deepwork command
func NewDeepWorkCommand(app *App) *DeepWorkCommand {
	return &DeepWorkCommand{app: app}
}

// Execute sums the deep work category over the trailing year and compares
// it to the goal from the config
func (c *DeepWorkCommand) Execute(ctx context.Context, args []string) error {
	name := c.app.cfg.Outlook.DeepWorkCategory
	categoryID, ok := c.app.categories.FindByName(name)
	if !ok {
		return errors.NewInputError("deep_work_category in the config does not match any category")
	}

	end := domain.Midnight(c.app.sess.Date())
	start := end.AddDate(0, 0, -deepWorkWindowDays)

	entries, err := c.app.repo.EntriesBetween(ctx, start, end)
	if err != nil {
		return err
	}

	var deepHours float64
	for _, entry := range entries {
		if entry.Category == categoryID {
			deepHours += entry.Duration
		}
	}

	goal := c.app.cfg.DeepWorkGoal
	c.app.printf("%s over the last %d days: %.1f h (goal %.1f h)\n",
		c.app.categories.Name(categoryID), deepWorkWindowDays, deepHours, goal)
	if goal > 0 {
		c.app.printf("  %.0f%% of goal\n", 100*deepHours/goal)
	}
	return nil
}

func (c *DeepWorkCommand) Usage() string {
	return "show deep work hours over the trailing year against the goal"
}
