// Package session holds the in-progress day of time entries: the staging
// area that entries accumulate in before a commit writes them to the
// database in one shot.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/logging"
	"github.com/blairfrandeen/titr/internal/parser"
	"github.com/blairfrandeen/titr/internal/repository/sqlite"
	"github.com/blairfrandeen/titr/internal/validation"
)

const dateLayout = "2006-01-02"

// Store persists a committed session. *sqlite.SQLiteRepository satisfies it.
type Store interface {
	SaveSession(ctx context.Context, entries []domain.TimeEntry) (*sqlite.SessionRow, error)
}

// Session is the mutable state of one console run. All entries share the
// active date and are validated on the way in, so a commit never fails
// validation.
type Session struct {
	store     Store
	validator *validation.EntryValidator

	date            time.Time
	defaultCategory int
	defaultAccount  string
	entries         []domain.TimeEntry

	// now is swappable for tests; it anchors "today" and future checks.
	now func() time.Time
}

// New creates a session on today's date with the configured defaults.
func New(store Store, validator *validation.EntryValidator, defaultCategory int, defaultAccount string) *Session {
	s := &Session{
		store:           store,
		validator:       validator,
		defaultCategory: defaultCategory,
		defaultAccount:  domain.NormalizeAccountKey(defaultAccount),
		now:             time.Now,
	}
	s.date = domain.Midnight(s.now())
	return s
}

// Date returns the active date.
func (s *Session) Date() time.Time { return s.date }

// DefaultCategory returns the category applied when an entry omits one.
func (s *Session) DefaultCategory() int { return s.defaultCategory }

// DefaultAccount returns the account applied when an entry omits one.
func (s *Session) DefaultAccount() string { return s.defaultAccount }

// Len returns the number of staged entries.
func (s *Session) Len() int { return len(s.entries) }

// Entries returns a snapshot of the staged entries.
func (s *Session) Entries() []domain.TimeEntry {
	snapshot := make([]domain.TimeEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Total returns the summed duration of the staged entries, in hours.
func (s *Session) Total() float64 {
	return domain.TotalDuration(s.entries)
}

// SetDate changes the active date for subsequent entries. The argument is
// either empty (today), a non-positive integer offset in days ("-1" is
// yesterday), or an ISO date. Future dates are rejected; entries already
// staged keep the date they were added under.
func (s *Session) SetDate(arg string) error {
	today := domain.Midnight(s.now())

	if arg == "" {
		s.date = today
		return nil
	}

	if offset, err := strconv.Atoi(arg); err == nil {
		if offset > 0 {
			return errors.NewInputError("date cannot be in the future")
		}
		s.date = today.AddDate(0, 0, offset)
		return nil
	}

	date, err := time.Parse(dateLayout, arg)
	if err != nil {
		return errors.NewInputError(fmt.Sprintf("bad date %q: expected YYYY-MM-DD or a day offset", arg))
	}
	date = domain.Midnight(date)
	if date.After(today) {
		return errors.NewInputError("date cannot be in the future")
	}
	s.date = date
	return nil
}

// SetDefaultCategory changes the session default after checking the registry.
func (s *Session) SetDefaultCategory(id int) error {
	if err := s.validator.ValidateCategory(id); err != nil {
		return errors.NewInputError(err.Error())
	}
	s.defaultCategory = id
	return nil
}

// SetDefaultAccount changes the session default after checking the registry.
func (s *Session) SetDefaultAccount(key string) error {
	if err := s.validator.ValidateAccount(key); err != nil {
		return errors.NewInputError(err.Error())
	}
	s.defaultAccount = domain.NormalizeAccountKey(key)
	return nil
}

// AddEntry stages a parsed line as a new entry, filling omitted fields from
// the session defaults. A zero duration is a deliberate skip: nothing is
// staged and added is false.
func (s *Session) AddEntry(parsed parser.Parsed) (added bool, err error) {
	if parsed.Duration == 0 {
		return false, nil
	}
	entry := s.materialize(parsed, s.defaultCategory, s.defaultAccount)
	if err := s.Append(entry); err != nil {
		return false, err
	}
	return true, nil
}

// Append validates a fully-formed entry and stages it.
func (s *Session) Append(entry domain.TimeEntry) error {
	if err := s.validator.ValidateEntry(entry); err != nil {
		return errors.NewInputError(err.Error())
	}
	s.entries = append(s.entries, entry)
	logging.Debugf("session: staged %.2f h, %d entries total", entry.Duration, len(s.entries))
	return nil
}

// RemoveEntry deletes the staged entry at a 1-based index.
func (s *Session) RemoveEntry(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.entries = append(s.entries[:index-1], s.entries[index:]...)
	return nil
}

// clearedComment, given as the whole comment of an edit line, empties the
// entry's comment instead of keeping the old one.
const clearedComment = "-"

// EditEntry replaces the staged entry at a 1-based index with a re-parsed
// line. Fields the line omits fall back to the existing entry's values; a
// comment of "-" clears the comment. The original entry survives untouched
// if anything about the replacement is invalid.
func (s *Session) EditEntry(index int, parsed parser.Parsed) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if parsed.Duration == 0 {
		return errors.NewInputError("edited entry needs a positive duration; use remove to drop it")
	}

	current := s.entries[index-1]
	replacement := s.materialize(parsed, current.Category, current.Account)
	replacement.Date = current.Date

	if err := s.validator.ValidateEntry(replacement); err != nil {
		return errors.NewInputError(err.Error())
	}
	switch parsed.Comment {
	case "":
		replacement.Comment = current.Comment
	case clearedComment:
		replacement.Comment = ""
	}
	s.entries[index-1] = replacement
	return nil
}

// UndoLast removes the most recently staged entry.
func (s *Session) UndoLast() error {
	if len(s.entries) == 0 {
		return errors.NewInputError("nothing to undo")
	}
	s.entries = s.entries[:len(s.entries)-1]
	return nil
}

// Clear discards all staged entries.
func (s *Session) Clear() {
	s.entries = nil
}

// ReplaceAll swaps the staged entries for an already-validated slice, used
// by scaling where the new set is computed as a whole.
func (s *Session) ReplaceAll(entries []domain.TimeEntry) {
	s.entries = entries
}

// Commit writes the staged entries through the store. The session is
// cleared only after the store reports success, so a failed write leaves
// everything staged for another attempt.
func (s *Session) Commit(ctx context.Context) (*sqlite.SessionRow, error) {
	if len(s.entries) == 0 {
		return nil, errors.NewInputError("no entries to commit")
	}
	row, err := s.store.SaveSession(ctx, s.entries)
	if err != nil {
		return nil, err
	}
	s.entries = nil
	return row, nil
}

func (s *Session) materialize(parsed parser.Parsed, fallbackCategory int, fallbackAccount string) domain.TimeEntry {
	category := fallbackCategory
	if parsed.Category != nil {
		category = *parsed.Category
	}
	account := fallbackAccount
	if parsed.Account != nil {
		account = *parsed.Account
	}
	return domain.NewTimeEntry(parsed.Duration, category, account, parsed.Comment, s.date)
}

func (s *Session) checkIndex(index int) error {
	if index < 1 || index > len(s.entries) {
		return errors.NewInputError(fmt.Sprintf("no entry at index %d; session has %d entries", index, len(s.entries)))
	}
	return nil
}
