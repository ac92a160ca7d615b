package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairfrandeen/titr/internal/domain"
)

type fakeClipboard struct {
	text    string
	failErr error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.text = text
	return nil
}

func exportRegistries() (domain.CategoryRegistry, domain.AccountRegistry) {
	return domain.CategoryRegistry{2: "Deep Work", 3: "Meetings"},
		domain.AccountRegistry{"i": "Internal"}
}

func TestTSV(t *testing.T) {
	categories, accounts := exportRegistries()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	entries := []domain.TimeEntry{
		domain.NewTimeEntry(1.5, 2, "i", "morning work", date),
		domain.NewTimeEntry(0.5, 3, "i", "standup", date),
	}

	want := "2024-06-03\t1.5\tDeep Work\tInternal\tmorning work\n" +
		"2024-06-03\t0.5\tMeetings\tInternal\tstandup\n"
	assert.Equal(t, want, TSV(entries, categories, accounts))
}

func TestTSV_Empty(t *testing.T) {
	categories, accounts := exportRegistries()
	assert.Equal(t, "", TSV(nil, categories, accounts))
}

func TestToClipboard(t *testing.T) {
	categories, accounts := exportRegistries()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{domain.NewTimeEntry(2, 2, "i", "", date)}

	t.Run("writes rendered TSV", func(t *testing.T) {
		clip := &fakeClipboard{}
		require.NoError(t, ToClipboard(clip, entries, categories, accounts))
		assert.Equal(t, "2024-06-03\t2\tDeep Work\tInternal\t\n", clip.text)
	})

	t.Run("nothing to copy", func(t *testing.T) {
		clip := &fakeClipboard{}
		assert.Error(t, ToClipboard(clip, nil, categories, accounts))
	})

	t.Run("clipboard failure surfaces", func(t *testing.T) {
		clip := &fakeClipboard{failErr: assert.AnError}
		assert.Error(t, ToClipboard(clip, entries, categories, accounts))
	})
}
