package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
)

func entriesWithDurations(durations ...float64) []domain.TimeEntry {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	entries := make([]domain.TimeEntry, 0, len(durations))
	for _, d := range durations {
		entries = append(entries, domain.NewTimeEntry(d, 2, "i", "", date))
	}
	return entries
}

func durations(entries []domain.TimeEntry) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Duration)
	}
	return out
}

func TestScale(t *testing.T) {
	scaled, err := Scale(entriesWithDurations(1, 2, 1), 8)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4, 2}, durations(scaled))
	assert.InDelta(t, 8, domain.TotalDuration(scaled), 1e-9)
}

func TestScale_PreservesProportions(t *testing.T) {
	scaled, err := Scale(entriesWithDurations(0.5, 1.5), 6)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, scaled[0].Duration, 1e-9)
	assert.InDelta(t, 4.5, scaled[1].Duration, 1e-9)
}

func TestScale_NoOpWhenAlreadyAtTarget(t *testing.T) {
	scaled, err := Scale(entriesWithDurations(3, 5), 8)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 5}, durations(scaled))
}

func TestScale_InputUntouched(t *testing.T) {
	original := entriesWithDurations(1, 1)

	_, err := Scale(original, 10)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1}, durations(original))
}

func TestScale_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.TimeEntry
		target  float64
	}{
		{"zero target", entriesWithDurations(1), 0},
		{"negative target", entriesWithDurations(1), -4},
		{"no entries", nil, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scale(tt.entries, tt.target)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInput))
		})
	}
}
