package cli

import (
	"context"
)

// HelpCommand prints usage for every registered command.
type HelpCommand struct {
	app      *App
	registry *CommandRegistry
}

// NewHelpCommand creates a new help command
func NewHelpCommand(app *App, registry *CommandRegistry) *HelpCommand {
	return &HelpCommand{app: app, registry: registry}
}

// Execute prints the entry line format and the command table
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	c.app.printf("entry lines start with a duration in hours:\n")
	c.app.printf("  <duration> [category] [account] [comment...]   e.g.  .5 2 i code review\n")
	c.app.printf("a duration of 0 stages nothing\n\ncommands:\n")
	for _, line := range c.registry.Usage() {
		c.app.printf("%s\n", line)
	}
	return nil
}

func (c *HelpCommand) Usage() string {
	return "show this help"
}

// QuitCommand ends the console loop.
type QuitCommand struct {
	app *App
}

// NewQuitCommand creates a new quit command
func NewQuitCommand(app *App) *QuitCommand {
	return &QuitCommand{app: app}
}

// Execute warns about uncommitted entries and stops the loop
func (c *QuitCommand) Execute(ctx context.Context, args []string) error {
	if n := c.app.sess.Len(); n > 0 {
		c.app.printf("discarding %d uncommitted entries\n", n)
	}
	return errQuit
}

func (c *QuitCommand) Usage() string {
	return "exit without committing staged entries"
}
