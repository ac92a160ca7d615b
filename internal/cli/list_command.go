package cli

import (
	"context"
)

// ListCommand prints the configured categories and accounts.
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints both registries
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	c.app.printf("categories:\n")
	for _, line := range c.app.cfg.CategoryNames() {
		c.app.printf("  %s\n", line)
	}
	c.app.printf("accounts:\n")
	for _, line := range c.app.cfg.AccountNames() {
		c.app.printf("  %s\n", line)
	}
	return nil
}

func (c *ListCommand) Usage() string {
	return "list the configured categories and accounts"
}
