// Package cli implements the interactive console: a read-eval loop where a
// line starting with a number stages a time entry and anything else
// dispatches to a registered command.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/blairfrandeen/titr/internal/calendar"
	"github.com/blairfrandeen/titr/internal/config"
	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/export"
	"github.com/blairfrandeen/titr/internal/parser"
	"github.com/blairfrandeen/titr/internal/repository/sqlite"
	"github.com/blairfrandeen/titr/internal/session"
)

const prompt = "titr> "

// App holds everything one console run needs.
type App struct {
	cfg        *config.Config
	categories domain.CategoryRegistry
	accounts   domain.AccountRegistry

	sess   *session.Session
	repo   sqlite.Repository
	source calendar.Source
	clip   export.Clipboard

	registry *CommandRegistry
	errors   *ErrorHandler

	in  *bufio.Scanner
	out io.Writer
}

// NewApp wires the console with its dependencies. source may be nil when no
// calendar is configured; the outlook command then reports it unavailable.
func NewApp(cfg *config.Config, sess *session.Session, repo sqlite.Repository, source calendar.Source, clip export.Clipboard, in io.Reader, out io.Writer) (*App, error) {
	categories, accounts, err := cfg.Registries()
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:        cfg,
		categories: categories,
		accounts:   accounts,
		sess:       sess,
		repo:       repo,
		source:     source,
		clip:       clip,
		errors:     NewErrorHandler(),
		in:         bufio.NewScanner(in),
		out:        out,
	}
	app.registry = NewCommandRegistry(app)
	return app, nil
}

// Run reads lines until quit or EOF.
func (a *App) Run(ctx context.Context) error {
	a.printf("titr - keyboard-driven time tracking. Type help for commands.\n")
	a.printf("Logging %s, default category %s, account %s.\n",
		a.sess.Date().Format("Mon 2006-01-02"),
		a.categories.Name(a.sess.DefaultCategory()),
		a.accounts.Name(a.sess.DefaultAccount()))

	for {
		a.printf(prompt)
		line, ok := a.readLine()
		if !ok {
			a.printf("\n")
			return nil
		}

		if err := a.dispatch(ctx, line); err != nil {
			if err == errQuit {
				return nil
			}
			a.printf("%v\n", a.errors.HandleSimple(err))
		}
	}
}

// dispatch routes one console line. Entry lines are recognized by their
// leading number; everything else is a command word plus arguments.
func (a *App) dispatch(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if parser.IsEntryLine(line) {
		return a.stageEntryLine(line)
	}

	fields := strings.Fields(line)
	return a.registry.Execute(ctx, fields[0], fields[1:])
}

func (a *App) stageEntryLine(line string) error {
	parsed, err := parser.Parse(line, a.categories, a.accounts)
	if err != nil {
		return err
	}
	added, err := a.sess.AddEntry(parsed)
	if err != nil {
		return err
	}
	if !added {
		a.printf("zero duration, nothing added\n")
		return nil
	}
	entry := a.sess.Entries()[a.sess.Len()-1]
	a.printf("added %s  (%d staged, %.2f h total)\n", a.formatEntry(entry), a.sess.Len(), a.sess.Total())
	return nil
}

// readLine returns the next input line; ok is false at EOF.
func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) formatEntry(entry domain.TimeEntry) string {
	return fmt.Sprintf("%s  %5.2f h  %-12s %-12s %s",
		entry.DateString(),
		entry.Duration,
		a.categories.Name(entry.Category),
		a.accounts.Name(entry.Account),
		entry.Comment)
}
