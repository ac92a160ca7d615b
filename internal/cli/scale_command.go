package cli

import (
	"context"
	"strconv"

	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/reconcile"
)

// ScaleCommand stretches the staged entries to a target total, preserving
// their proportions.
type ScaleCommand struct {
	app *App
}

// NewScaleCommand creates a new scale command
func NewScaleCommand(app *App) *ScaleCommand {
	return &ScaleCommand{app: app}
}

// Execute scales all staged durations so they sum to the target hours
func (c *ScaleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInputError("usage: scale <target hours>")
	}
	target, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.NewParseError("target", args[0], "not a number")
	}

	scaled, err := reconcile.Scale(c.app.sess.Entries(), target)
	if err != nil {
		return err
	}
	c.app.sess.ReplaceAll(scaled)
	c.app.printf("scaled %d entries to %.2f h\n", len(scaled), c.app.sess.Total())
	return nil
}

func (c *ScaleCommand) Usage() string {
	return "scale staged entries to a total: scale <target hours>"
}
