package cli

import (
	"context"
)

// UndoCommand drops the most recently staged entry.
type UndoCommand struct {
	app *App
}

// NewUndoCommand creates a new undo command
func NewUndoCommand(app *App) *UndoCommand {
	return &UndoCommand{app: app}
}

// Execute removes the last staged entry
func (c *UndoCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.sess.UndoLast(); err != nil {
		return err
	}
	c.app.printf("undid last entry (%d staged)\n", c.app.sess.Len())
	return nil
}

func (c *UndoCommand) Usage() string {
	return "remove the most recently staged entry"
}

// ClearCommand discards every staged entry.
type ClearCommand struct {
	app *App
}

// NewClearCommand creates a new clear command
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{app: app}
}

// Execute discards all staged entries
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	count := c.app.sess.Len()
	c.app.sess.Clear()
	c.app.printf("cleared %d entries\n", count)
	return nil
}

func (c *ClearCommand) Usage() string {
	return "discard all staged entries"
}
