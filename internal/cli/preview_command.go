package cli

import (
	"context"
)

// PreviewCommand shows the staged entries and their total.
type PreviewCommand struct {
	app *App
}

// NewPreviewCommand creates a new preview command
func NewPreviewCommand(app *App) *PreviewCommand {
	return &PreviewCommand{app: app}
}

// Execute prints the staged entries with 1-based indexes
func (c *PreviewCommand) Execute(ctx context.Context, args []string) error {
	entries := c.app.sess.Entries()
	if len(entries) == 0 {
		c.app.printf("no entries staged\n")
		return nil
	}

	for i, entry := range entries {
		c.app.printf("%3d  %s\n", i+1, c.app.formatEntry(entry))
	}
	c.app.printf("     total: %.2f h\n", c.app.sess.Total())
	return nil
}

func (c *PreviewCommand) Usage() string {
	return "show staged entries and their total"
}
