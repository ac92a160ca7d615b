package reconcile

import (
	"math"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
)

// Scale returns a copy of entries with every duration multiplied so the
// total equals target hours. Proportions between entries are preserved. The
// input is never modified, and an error leaves nothing half-scaled.
func Scale(entries []domain.TimeEntry, target float64) ([]domain.TimeEntry, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, errors.NewInputError("scale target must be a finite number")
	}
	if target <= 0 {
		return nil, errors.NewInputError("cannot scale to zero")
	}
	if len(entries) == 0 {
		return nil, errors.NewInputError("no entries to scale")
	}

	total := domain.TotalDuration(entries)
	if total <= 0 {
		return nil, errors.NewInputError("no entries to scale")
	}

	factor := target / total
	scaled := make([]domain.TimeEntry, len(entries))
	copy(scaled, entries)
	if factor == 1 {
		return scaled, nil
	}

	for i := range scaled {
		duration := scaled[i].Duration * factor
		if math.IsNaN(duration) || math.IsInf(duration, 0) {
			return nil, errors.NewInputError("scaling produced an unusable duration")
		}
		scaled[i].Duration = duration
	}
	return scaled, nil
}
