// Package sqlite persists committed sessions and their time entries, and
// keeps the category and account registries mirrored into the database so
// the log remains interpretable if the config changes.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/logging"
	"github.com/blairfrandeen/titr/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// SaveSession writes all entries of a committed session atomically and
	// returns the recorded session metadata.
	SaveSession(ctx context.Context, entries []domain.TimeEntry) (*SessionRow, error)

	// EntriesBetween returns all logged entries with start <= date <= end,
	// ordered by date then insertion order.
	EntriesBetween(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error)

	// DeleteBetween removes logged entries with start <= date <= end and
	// reports how many rows went away.
	DeleteBetween(ctx context.Context, start, end time.Time) (int64, error)

	// LatestSession returns the most recently committed session.
	LatestSession(ctx context.Context) (*SessionRow, error)

	// SyncRegistries upserts the configured category and account names.
	SyncRegistries(ctx context.Context, categories domain.CategoryRegistry, accounts domain.AccountRegistry) error

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and applies pending
// migrations.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("sqlite: opened %s", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveSession inserts a session row and all of its entries in one
// transaction. Nothing is written if any insert fails.
func (r *SQLiteRepository) SaveSession(ctx context.Context, entries []domain.TimeEntry) (*SessionRow, error) {
	if len(entries) == 0 {
		return nil, errors.NewInputError("no entries to save")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (created_at, entry_count) VALUES (?, ?)`,
		FormatTimeForDB(now), len(entries))
	if err != nil {
		return nil, HandleDatabaseError("insert session", err)
	}

	sessionID, err := result.LastInsertId()
	if err != nil {
		return nil, HandleDatabaseError("get session id", err)
	}

	const insertEntry = `
	INSERT INTO time_log (session_id, date, duration, category_id, account_key, comment)
	VALUES (?, ?, ?, ?, ?, ?)`

	for _, entry := range entries {
		_, err := tx.ExecContext(ctx, insertEntry,
			sessionID,
			FormatDateForDB(entry.Date),
			entry.Duration,
			entry.Category,
			entry.Account,
			entry.Comment,
		)
		if err != nil {
			return nil, HandleDatabaseError("insert time entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit session", err)
	}

	logging.Debugf("sqlite: saved session %d with %d entries", sessionID, len(entries))
	return &SessionRow{ID: sessionID, CreatedAt: now, EntryCount: len(entries)}, nil
}

// EntriesBetween retrieves logged entries within an inclusive date range.
func (r *SQLiteRepository) EntriesBetween(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error) {
	query := `
	SELECT id, session_id, date, duration, category_id, account_key, comment
	FROM time_log
	WHERE date >= ? AND date <= ?
	ORDER BY date, id`

	rows, err := QueryMultiple(ctx, r.db, query, ScanLogRows, "time entries",
		FormatDateForDB(start), FormatDateForDB(end))
	if err != nil {
		return nil, err
	}
	return RowsToDomain(rows), nil
}

// DeleteBetween removes logged entries within an inclusive date range, used
// to re-log a day that was committed with mistakes.
func (r *SQLiteRepository) DeleteBetween(ctx context.Context, start, end time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM time_log WHERE date >= ? AND date <= ?`,
		FormatDateForDB(start), FormatDateForDB(end))
	if err != nil {
		return 0, HandleDatabaseError("delete time entries", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, HandleDatabaseError("get rows affected", err)
	}
	return rows, nil
}

// LatestSession retrieves the most recently committed session.
func (r *SQLiteRepository) LatestSession(ctx context.Context) (*SessionRow, error) {
	query := `
	SELECT id, created_at, entry_count
	FROM sessions
	ORDER BY id DESC
	LIMIT 1`

	return QuerySingle(ctx, r.db, query, ScanSessionRow, "session", "latest")
}

// SyncRegistries mirrors the configured registries into the database so
// category ids and account keys in the log stay resolvable.
func (r *SQLiteRepository) SyncRegistries(ctx context.Context, categories domain.CategoryRegistry, accounts domain.AccountRegistry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	for id, name := range categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			id, name)
		if err != nil {
			return HandleDatabaseError("upsert category", err)
		}
	}

	for key, name := range accounts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (key, name) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET name = excluded.name`,
			key, name)
		if err != nil {
			return HandleDatabaseError("upsert account", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit registries", err)
	}
	return nil
}
