package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blairfrandeen/titr/internal/calendar"
	"github.com/blairfrandeen/titr/internal/config"
	"github.com/blairfrandeen/titr/internal/export"
	"github.com/blairfrandeen/titr/internal/msgraph"
	"github.com/blairfrandeen/titr/internal/repository/sqlite"
	"github.com/blairfrandeen/titr/internal/session"
	"github.com/blairfrandeen/titr/internal/validation"
)

// NewRootCommand creates the root cobra command that launches the console
func NewRootCommand() *cobra.Command {
	var testDB bool
	var startOutlook bool

	cmd := &cobra.Command{
		Use:   "titr",
		Short: "keyboard-driven time tracking console",
		Long: `titr is an interactive console for logging how a working day was spent.

Entries are terse lines: a duration in hours, then an optional category id,
an optional single-letter account key, and a free comment. Everything else
is a command.

EXAMPLES:
  titr> .5 2 i code review      # half an hour of category 2 on account i
  titr> 1.5 meeting ran long    # defaults fill the missing fields
  titr> outlook                 # reconcile today's calendar into entries
  titr> scale 8                 # stretch the day to 8 hours
  titr> commit                  # write to the database and clipboard

CONFIGURATION:
  Categories, accounts, defaults, and the Outlook connection live in
  ~/.titr/config.toml, created on first run. TITR_CONFIG and TITR_DB
  override the config and database locations; TITR_DEBUG enables debug
  logging.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd.Context(), testDB, startOutlook)
		},
	}

	cmd.Flags().BoolVar(&testDB, "testdb", false, "use a throwaway database instead of ~/.titr/titr.db")
	cmd.Flags().BoolVar(&startOutlook, "outlook", false, "begin the session with a calendar reconciliation pass")
	return cmd
}

// Execute runs the root command and reports its error.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "titr: %v\n", err)
		return err
	}
	return nil
}

func runConsole(ctx context.Context, testDB, startOutlook bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(testDB)
	if err != nil {
		return err
	}
	repo, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	categories, accounts, err := cfg.Registries()
	if err != nil {
		return err
	}
	if err := repo.SyncRegistries(ctx, categories, accounts); err != nil {
		return err
	}

	validator := validation.NewEntryValidator(categories, accounts, cfg.MaxEntryDuration)
	sess := session.New(repo, validator, cfg.DefaultCategory, cfg.DefaultAccount)

	var source calendar.Source
	if cfg.Outlook.TenantID != "" && cfg.Outlook.ClientID != "" {
		source = msgraph.NewSource(cfg.Outlook.TenantID, cfg.Outlook.ClientID, cfg.Outlook.Timezone, categories)
	}

	app, err := NewApp(cfg, sess, repo, source, export.SystemClipboard{}, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if startOutlook {
		if err := app.dispatch(ctx, "outlook"); err != nil && err != errQuit {
			app.printf("%v\n", app.errors.HandleSimple(err))
		}
	}
	return app.Run(ctx)
}

func resolveDBPath(testDB bool) (string, error) {
	if testDB {
		return filepath.Join(os.TempDir(), "titr_test.db"), nil
	}
	return config.DBPath()
}
