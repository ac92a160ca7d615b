package cli

import (
	"context"
	"strconv"

	"github.com/blairfrandeen/titr/internal/errors"
)

// DefaultCommand changes the session's default category or account.
type DefaultCommand struct {
	app *App
}

// NewDefaultCommand creates a new default command
func NewDefaultCommand(app *App) *DefaultCommand {
	return &DefaultCommand{app: app}
}

// Execute handles "default category <id>" and "default account <key>"
func (c *DefaultCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInputError("usage: default category <id> | default account <key>")
	}

	switch args[0] {
	case "category":
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.NewParseError("category", args[1], "not an integer")
		}
		if err := c.app.sess.SetDefaultCategory(id); err != nil {
			return err
		}
		c.app.printf("default category: %s\n", c.app.categories.Name(id))
	case "account":
		if err := c.app.sess.SetDefaultAccount(args[1]); err != nil {
			return err
		}
		c.app.printf("default account: %s\n", c.app.accounts.Name(c.app.sess.DefaultAccount()))
	default:
		return errors.NewInputError("usage: default category <id> | default account <key>")
	}
	return nil
}

func (c *DefaultCommand) Usage() string {
	return "change session defaults: default category <id> | default account <key>"
}
