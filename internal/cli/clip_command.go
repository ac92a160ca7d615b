package cli

import (
	"context"

	"github.com/blairfrandeen/titr/internal/export"
)

// ClipCommand copies the staged entries to the clipboard as TSV.
type ClipCommand struct {
	app *App
}

// NewClipCommand creates a new clip command
func NewClipCommand(app *App) *ClipCommand {
	return &ClipCommand{app: app}
}

// Execute renders the staged entries and places them on the clipboard
func (c *ClipCommand) Execute(ctx context.Context, args []string) error {
	if err := export.ToClipboard(c.app.clip, c.app.sess.Entries(), c.app.categories, c.app.accounts); err != nil {
		return err
	}
	c.app.printf("copied %d entries to clipboard\n", c.app.sess.Len())
	return nil
}

func (c *ClipCommand) Usage() string {
	return "copy staged entries to the clipboard as tab-separated values"
}
