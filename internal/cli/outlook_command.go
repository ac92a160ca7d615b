package cli

import (
	"context"

	"github.com/blairfrandeen/titr/internal/calendar"
	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/reconcile"
)

// OutlookCommand walks the active date's calendar blocks, staging one entry
// per block as the user accepts, overrides, or skips it.
type OutlookCommand struct {
	app *App
}

// NewOutlookCommand creates a new outlook command
func NewOutlookCommand(app *App) *OutlookCommand {
	return &OutlookCommand{app: app}
}

// Execute runs an interactive reconciliation pass over the calendar
func (c *OutlookCommand) Execute(ctx context.Context, args []string) error {
	if c.app.source == nil {
		return errors.NewSourceUnavailableError("outlook",
			errors.NewInputError("no calendar configured; set tenant_id and client_id in the [outlook] section"))
	}

	pass, err := reconcile.NewPass(ctx, c.app.source, c.skipRules(), c.app.sess, c.app.categories, c.app.accounts)
	if err != nil {
		return err
	}
	if pass.Remaining() == 0 {
		c.app.printf("no calendar blocks to reconcile for %s\n", c.app.sess.Date().Format("2006-01-02"))
		return nil
	}
	c.app.printf("%d calendar blocks for %s\n", pass.Remaining(), c.app.sess.Date().Format("2006-01-02"))
	c.app.printf("enter accepts, 0 skips, or type a replacement entry line\n")

	var accepted, overridden, skipped int
	for {
		candidate, ok := pass.Next()
		if !ok {
			break
		}
		c.app.printf("\n%s - %s  %s\n",
			candidate.Block.Start.Format("15:04"),
			candidate.Block.End.Format("15:04"),
			candidate.Block.Subject)
		c.app.printf("proposed: %s\n", c.app.formatEntry(candidate.Entry))

		// Re-prompt the same block until it resolves cleanly.
		for {
			c.app.printf("outlook> ")
			line, ok := c.app.readLine()
			if !ok {
				c.app.printf("\n")
				return nil
			}
			resolution, err := pass.Resolve(candidate, line)
			if err != nil {
				c.app.printf("%v\n", c.app.errors.HandleSimple(err))
				continue
			}
			switch resolution {
			case reconcile.Accepted:
				accepted++
			case reconcile.Overridden:
				overridden++
			case reconcile.Skipped:
				skipped++
			}
			break
		}
	}

	c.app.printf("\nreconciled: %d accepted, %d overridden, %d skipped (%d staged, %.2f h total)\n",
		accepted, overridden, skipped, c.app.sess.Len(), c.app.sess.Total())
	return nil
}

func (c *OutlookCommand) skipRules() calendar.SkipRules {
	outlook := c.app.cfg.Outlook
	return calendar.SkipRules{
		AllDay:      outlook.SkipAllDay,
		OutOfOffice: outlook.SkipOutOfOffice,
		Subjects:    outlook.SkipSubjects,
		Statuses:    outlook.SkipStatuses,
	}
}

func (c *OutlookCommand) Usage() string {
	return "pull the active date's calendar and reconcile it into entries"
}
