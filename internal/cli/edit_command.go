package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/parser"
)

// EditCommand replaces one staged entry with a re-parsed line.
type EditCommand struct {
	app *App
}

// NewEditCommand creates a new edit command
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute re-parses the remainder of the line and swaps it in at the given
// 1-based index. Omitted fields keep the existing entry's values; a comment
// of "-" clears the comment.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInputError("usage: edit <index> <duration> [category] [account] [comment]")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.NewParseError("index", args[0], "not an integer")
	}

	parsed, err := parser.Parse(strings.Join(args[1:], " "), c.app.categories, c.app.accounts)
	if err != nil {
		return err
	}
	if err := c.app.sess.EditEntry(index, parsed); err != nil {
		return err
	}
	c.app.printf("entry %d is now %s\n", index, c.app.formatEntry(c.app.sess.Entries()[index-1]))
	return nil
}

func (c *EditCommand) Usage() string {
	return "replace a staged entry: edit <index> <duration> [category] [account] [comment] (\"-\" clears the comment)"
}
