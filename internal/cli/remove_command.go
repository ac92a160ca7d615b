package cli

import (
	"context"
	"strconv"

	"github.com/blairfrandeen/titr/internal/errors"
)

// RemoveCommand deletes one staged entry by its preview index.
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new remove command
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute removes the entry at the given 1-based index
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInputError("usage: remove <index>")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.NewParseError("index", args[0], "not an integer")
	}
	if err := c.app.sess.RemoveEntry(index); err != nil {
		return err
	}
	c.app.printf("removed entry %d (%d staged)\n", index, c.app.sess.Len())
	return nil
}

func (c *RemoveCommand) Usage() string {
	return "remove a staged entry: remove <index>"
}
