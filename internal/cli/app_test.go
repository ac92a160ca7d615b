package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairfrandeen/titr/internal/calendar"
	"github.com/blairfrandeen/titr/internal/config"
	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/repository/sqlite"
	"github.com/blairfrandeen/titr/internal/session"
	"github.com/blairfrandeen/titr/internal/validation"
)

// mockRepo satisfies sqlite.Repository without a database.
type mockRepo struct {
	sessions [][]domain.TimeEntry
	logged   []domain.TimeEntry
}

func (m *mockRepo) SaveSession(ctx context.Context, entries []domain.TimeEntry) (*sqlite.SessionRow, error) {
	m.sessions = append(m.sessions, entries)
	m.logged = append(m.logged, entries...)
	return &sqlite.SessionRow{ID: int64(len(m.sessions)), CreatedAt: time.Now(), EntryCount: len(entries)}, nil
}

func (m *mockRepo) EntriesBetween(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error) {
	var out []domain.TimeEntry
	for _, e := range m.logged {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockRepo) DeleteBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var kept []domain.TimeEntry
	var removed int64
	for _, e := range m.logged {
		if !e.Date.Before(start) && !e.Date.After(end) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.logged = kept
	return removed, nil
}

func (m *mockRepo) LatestSession(ctx context.Context) (*sqlite.SessionRow, error) {
	return &sqlite.SessionRow{ID: int64(len(m.sessions))}, nil
}

func (m *mockRepo) SyncRegistries(ctx context.Context, categories domain.CategoryRegistry, accounts domain.AccountRegistry) error {
	return nil
}

func (m *mockRepo) Close() error { return nil }

type fakeClip struct {
	text string
}

func (f *fakeClip) WriteAll(text string) error {
	f.text = text
	return nil
}

// fakeSource serves fixed calendar blocks.
type fakeSource struct {
	blocks []calendar.Block
}

func (f *fakeSource) FetchEvents(ctx context.Context, date time.Time) ([]calendar.Block, error) {
	return f.blocks, nil
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultCategory:  2,
		DefaultAccount:   "i",
		MaxEntryDuration: 9,
		DeepWorkGoal:     30,
		Categories:       map[string]string{"2": "Deep Work", "3": "Meetings"},
		Accounts:         map[string]string{"i": "Internal", "o": "Operations"},
		Outlook: config.OutlookConfig{
			SkipAllDay:       true,
			SkipOutOfOffice:  true,
			SkipSubjects:     []string{"Lunch"},
			DeepWorkCategory: "Deep Work",
		},
	}
}

// runConsoleScript feeds the lines to a fresh app and returns its output.
func runConsoleScript(t *testing.T, repo sqlite.Repository, source calendar.Source, clip *fakeClip, lines ...string) (string, *session.Session) {
	t.Helper()
	cfg := testConfig()
	categories, accounts, err := cfg.Registries()
	require.NoError(t, err)

	validator := validation.NewEntryValidator(categories, accounts, cfg.MaxEntryDuration)
	sess := session.New(repo, validator, cfg.DefaultCategory, cfg.DefaultAccount)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	app, err := NewApp(cfg, sess, repo, source, clip, in, &out)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	return out.String(), sess
}

func TestConsole_AddPreviewCommit(t *testing.T) {
	repo := &mockRepo{}
	clip := &fakeClip{}

	out, sess := runConsoleScript(t, repo, nil, clip,
		".5 2 i code review",
		"1.5 3 standup and planning",
		"preview",
		"commit",
		"quit",
	)

	assert.Contains(t, out, "total: 2.00 h")
	assert.Contains(t, out, "saved session 1 (2 entries, 2.00 h)")
	require.Len(t, repo.sessions, 1)
	assert.Equal(t, 0, sess.Len())
	assert.Contains(t, clip.text, "code review")
	assert.Contains(t, clip.text, "\t")
}

func TestConsole_UnknownCommandKeepsRunning(t *testing.T) {
	out, sess := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"frobnicate",
		"1",
		"quit",
	)

	assert.Contains(t, out, "unknown command")
	assert.Equal(t, 1, sess.Len())
}

func TestConsole_ZeroDurationAddsNothing(t *testing.T) {
	out, sess := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"0 2 i skipped",
		"quit",
	)

	assert.Contains(t, out, "zero duration")
	assert.Equal(t, 0, sess.Len())
}

func TestConsole_RemoveEditUndo(t *testing.T) {
	_, sess := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"1 first",
		"2 second",
		"3 third",
		"remove 2",
		"edit 1 4",
		"undo",
		"quit",
	)

	// remove drops "second", edit changes "first" to 4 h, undo drops "third".
	entries := sess.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 4.0, entries[0].Duration)
	assert.Equal(t, "first", entries[0].Comment)
}

func TestConsole_Scale(t *testing.T) {
	_, sess := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"1",
		"2",
		"1",
		"scale 8",
		"quit",
	)

	assert.InDelta(t, 8, sess.Total(), 1e-9)
	assert.Equal(t, 2.0, sess.Entries()[0].Duration)
	assert.Equal(t, 4.0, sess.Entries()[1].Duration)
}

func TestConsole_ScaleErrors(t *testing.T) {
	out, _ := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"scale 8",
		"1",
		"scale 0",
		"quit",
	)

	assert.Contains(t, out, "no entries to scale")
	assert.Contains(t, out, "cannot scale to zero")
}

func TestConsole_DefaultsAndDate(t *testing.T) {
	out, sess := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"default category 3",
		"default account o",
		"date -1",
		"1 carried defaults",
		"quit",
	)

	assert.Contains(t, out, "default category: Meetings")
	entry := sess.Entries()[0]
	assert.Equal(t, 3, entry.Category)
	assert.Equal(t, "o", entry.Account)
	assert.Equal(t, domain.Midnight(time.Now()).AddDate(0, 0, -1), entry.Date)
}

func TestConsole_Outlook(t *testing.T) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.UTC)
	source := &fakeSource{blocks: []calendar.Block{
		{Subject: "standup", Start: start, End: start.Add(30 * time.Minute), Status: "busy"},
		{Subject: "Lunch", Start: start.Add(3 * time.Hour), End: start.Add(4 * time.Hour), Status: "busy"},
		{Subject: "workshop", Start: start.Add(5 * time.Hour), End: start.Add(7 * time.Hour), Status: "busy"},
	}}

	out, sess := runConsoleScript(t, &mockRepo{}, source, &fakeClip{},
		"outlook",
		"",    // accept standup; Lunch is skipped by config
		"1.5", // override workshop duration
		"quit",
	)

	assert.Contains(t, out, "1 accepted, 1 overridden, 0 skipped")
	entries := sess.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "standup", entries[0].Comment)
	assert.Equal(t, 0.5, entries[0].Duration)
	assert.Equal(t, "workshop", entries[1].Comment)
	assert.Equal(t, 1.5, entries[1].Duration)
}

func TestConsole_OutlookUnconfigured(t *testing.T) {
	out, _ := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"outlook",
		"quit",
	)

	assert.Contains(t, out, "outlook")
	assert.Contains(t, out, "unavailable")
}

func TestConsole_ListAndHelp(t *testing.T) {
	out, _ := runConsoleScript(t, &mockRepo{}, nil, &fakeClip{},
		"list",
		"help",
		"quit",
	)

	assert.Contains(t, out, "2: Deep Work")
	assert.Contains(t, out, "i: Internal")
	assert.Contains(t, out, "scale <target hours>")
}

func TestConsole_TimecardAndDeepwork(t *testing.T) {
	repo := &mockRepo{}

	// Commit one session, then report on it in a second run.
	_, _ = runConsoleScript(t, repo, nil, &fakeClip{},
		"2 2 i deep session",
		"1 3 o meeting",
		"commit",
		"quit",
	)

	out, _ := runConsoleScript(t, repo, nil, &fakeClip{},
		"timecard",
		"deepwork",
		"quit",
	)

	assert.Contains(t, out, "week of")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "Deep Work over the last 365 days: 2.0 h (goal 30.0 h)")
}

func TestConsole_EOFExits(t *testing.T) {
	cfg := testConfig()
	categories, accounts, err := cfg.Registries()
	require.NoError(t, err)
	validator := validation.NewEntryValidator(categories, accounts, cfg.MaxEntryDuration)
	sess := session.New(&mockRepo{}, validator, cfg.DefaultCategory, cfg.DefaultAccount)

	var out bytes.Buffer
	app, err := NewApp(cfg, sess, &mockRepo{}, nil, &fakeClip{}, strings.NewReader("1\n"), &out)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, sess.Len())
}
