package msgraph

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
)

func testSource() *Source {
	categories := domain.CategoryRegistry{2: "Deep Work", 3: "Meetings"}
	return NewSource("tenant", "client", "Pacific Standard Time", categories)
}

func graphEvent(subject, start, end string) calendarEvent {
	var event calendarEvent
	event.Subject = subject
	event.ShowAs = "busy"
	event.Start.DateTime = start
	event.End.DateTime = end
	return event
}

func TestParseGraphTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"graph fractional seconds", "2024-06-03T09:00:00.0000000"},
		{"no fraction", "2024-06-03T09:00:00"},
		{"rfc3339", "2024-06-03T09:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseGraphTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 9, parsed.Hour())
		})
	}

	_, err := parseGraphTime("June 3rd, 9am")
	assert.Error(t, err)
}

func TestMapEvent(t *testing.T) {
	source := testSource()

	t.Run("ordinary meeting", func(t *testing.T) {
		event := graphEvent("design review", "2024-06-03T09:00:00.0000000", "2024-06-03T10:30:00.0000000")
		block, ok := source.mapEvent(event)
		require.True(t, ok)

		assert.Equal(t, "design review", block.Subject)
		assert.Equal(t, 1.5, block.Hours())
		assert.Equal(t, "busy", block.Status)
		assert.False(t, block.OutOfOffice)
		assert.Nil(t, block.SuggestedCategory)
	})

	t.Run("cancelled is dropped", func(t *testing.T) {
		event := graphEvent("cancelled sync", "2024-06-03T09:00:00", "2024-06-03T10:00:00")
		event.IsCancelled = true
		_, ok := source.mapEvent(event)
		assert.False(t, ok)
	})

	t.Run("private is dropped", func(t *testing.T) {
		event := graphEvent("1:1", "2024-06-03T09:00:00", "2024-06-03T10:00:00")
		event.Sensitivity = "private"
		_, ok := source.mapEvent(event)
		assert.False(t, ok)
	})

	t.Run("oof flag", func(t *testing.T) {
		event := graphEvent("dentist", "2024-06-03T09:00:00", "2024-06-03T11:00:00")
		event.ShowAs = "oof"
		block, ok := source.mapEvent(event)
		require.True(t, ok)
		assert.True(t, block.OutOfOffice)
	})

	t.Run("category label maps to configured id", func(t *testing.T) {
		event := graphEvent("focus block", "2024-06-03T09:00:00", "2024-06-03T12:00:00")
		event.Categories = []string{"Personal", "deep work"}
		block, ok := source.mapEvent(event)
		require.True(t, ok)
		require.NotNil(t, block.SuggestedCategory)
		assert.Equal(t, 2, *block.SuggestedCategory)
	})

	t.Run("missing times are dropped", func(t *testing.T) {
		event := graphEvent("broken", "", "")
		_, ok := source.mapEvent(event)
		assert.False(t, ok)
	})
}

func TestFetchEvents_Unconfigured(t *testing.T) {
	source := NewSource("", "", "", nil)

	_, err := source.FetchEvents(context.Background(), time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeSourceUnavailable))
}
