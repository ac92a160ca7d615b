package cli

import (
	"context"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/export"
)

// CommitCommand writes the staged entries to the database and clears the
// session.
type CommitCommand struct {
	app *App
}

// NewCommitCommand creates a new commit command
func NewCommitCommand(app *App) *CommitCommand {
	return &CommitCommand{app: app}
}

// Execute saves the session. The entries are also placed on the clipboard
// so they can be pasted into a timecard; a clipboard failure does not undo
// the save.
func (c *CommitCommand) Execute(ctx context.Context, args []string) error {
	entries := c.app.sess.Entries()

	row, err := c.app.sess.Commit(ctx)
	if err != nil {
		return err
	}
	c.app.printf("saved session %d (%d entries, %.2f h)\n",
		row.ID, row.EntryCount, domain.TotalDuration(entries))

	if err := export.ToClipboard(c.app.clip, entries, c.app.categories, c.app.accounts); err != nil {
		c.app.printf("saved, but clipboard copy failed: %v\n", c.app.errors.HandleSimple(err))
	}
	return nil
}

func (c *CommitCommand) Usage() string {
	return "write staged entries to the database and copy them to the clipboard"
}
