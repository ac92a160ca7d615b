package validation

import (
	"fmt"
	"math"

	"github.com/blairfrandeen/titr/internal/domain"
)

// EntryValidator checks time entries against the configured registries and
// duration limits before they enter a session.
type EntryValidator struct {
	categories  domain.CategoryRegistry
	accounts    domain.AccountRegistry
	maxDuration float64
}

// NewEntryValidator creates a validator bound to the loaded registries.
// maxDuration is the longest single entry allowed, in hours.
func NewEntryValidator(categories domain.CategoryRegistry, accounts domain.AccountRegistry, maxDuration float64) *EntryValidator {
	return &EntryValidator{
		categories:  categories,
		accounts:    accounts,
		maxDuration: maxDuration,
	}
}

// ValidateDuration checks a duration in isolation. Zero is allowed here;
// the session layer treats it as "skip this entry".
func (ev *EntryValidator) ValidateDuration(hours float64) error {
	validationError := NewValidationError()
	ev.checkDuration(validationError, hours)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateCategory checks that a category id exists in the registry.
func (ev *EntryValidator) ValidateCategory(id int) error {
	if !ev.categories.Contains(id) {
		validationError := NewValidationError()
		validationError.AddUnknownKeyError("category", id)
		return validationError
	}
	return nil
}

// ValidateAccount checks that an account key exists in the registry.
func (ev *EntryValidator) ValidateAccount(key string) error {
	if !ev.accounts.Contains(key) {
		validationError := NewValidationError()
		validationError.AddUnknownKeyError("account", key)
		return validationError
	}
	return nil
}

// ValidateEntry checks a complete entry before it is appended to a session.
func (ev *EntryValidator) ValidateEntry(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	ev.checkDuration(validationError, entry.Duration)
	if entry.Duration == 0 {
		// A zero duration is a skip signal on input lines, never a stored entry.
		validationError.AddInvalidValueError("duration", entry.Duration, "must be positive")
	}
	if !ev.categories.Contains(entry.Category) {
		validationError.AddUnknownKeyError("category", entry.Category)
	}
	if !ev.accounts.Contains(entry.Account) {
		validationError.AddUnknownKeyError("account", entry.Account)
	}
	if entry.Date.IsZero() {
		validationError.AddError("date", ErrorTypeRequired, "date is required", nil)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (ev *EntryValidator) checkDuration(validationError *ValidationError, hours float64) {
	switch {
	case math.IsNaN(hours) || math.IsInf(hours, 0):
		validationError.AddInvalidValueError("duration", hours, "must be a finite number")
	case hours < 0:
		validationError.AddInvalidValueError("duration", hours, "cannot be negative")
	case hours > ev.maxDuration:
		validationError.AddError("duration", ErrorTypeOutOfRange,
			fmt.Sprintf("%.2f hours exceeds the %.2f hour limit; you're working too much", hours, ev.maxDuration), hours)
	}
}
