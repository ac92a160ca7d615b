package validation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairfrandeen/titr/internal/domain"
)

func testValidator() *EntryValidator {
	categories := domain.CategoryRegistry{2: "Deep Work", 3: "Meetings"}
	accounts := domain.AccountRegistry{"i": "Internal", "o": "Operations"}
	return NewEntryValidator(categories, accounts, 9)
}

func TestValidateDuration(t *testing.T) {
	ev := testValidator()

	assert.NoError(t, ev.ValidateDuration(1.5))
	assert.NoError(t, ev.ValidateDuration(0)) // zero means skip, not invalid
	assert.NoError(t, ev.ValidateDuration(9))

	assert.Error(t, ev.ValidateDuration(-1))
	assert.Error(t, ev.ValidateDuration(9.5))
	assert.Error(t, ev.ValidateDuration(math.NaN()))
	assert.Error(t, ev.ValidateDuration(math.Inf(1)))
}

func TestValidateCategory(t *testing.T) {
	ev := testValidator()

	assert.NoError(t, ev.ValidateCategory(2))
	assert.Error(t, ev.ValidateCategory(99))
}

func TestValidateAccount(t *testing.T) {
	ev := testValidator()

	assert.NoError(t, ev.ValidateAccount("i"))
	assert.NoError(t, ev.ValidateAccount("O"))
	assert.Error(t, ev.ValidateAccount("z"))
}

func TestValidateEntry(t *testing.T) {
	ev := testValidator()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("valid entry", func(t *testing.T) {
		entry := domain.NewTimeEntry(1.5, 2, "i", "notes", date)
		assert.NoError(t, ev.ValidateEntry(entry))
	})

	t.Run("collects multiple errors", func(t *testing.T) {
		entry := domain.NewTimeEntry(20, 99, "z", "", date)
		err := ev.ValidateEntry(entry)
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, validationErr.Errors, 3)
	})

	t.Run("zero duration rejected", func(t *testing.T) {
		entry := domain.NewTimeEntry(0, 2, "i", "skipped", date)
		err := ev.ValidateEntry(entry)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("zero date", func(t *testing.T) {
		entry := domain.TimeEntry{Duration: 1, Category: 2, Account: "i"}
		err := ev.ValidateEntry(entry)
		require.Error(t, err)
	})
}

func TestIsValidationError(t *testing.T) {
	ev := testValidator()
	err := ev.ValidateCategory(99)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(assert.AnError))
}
