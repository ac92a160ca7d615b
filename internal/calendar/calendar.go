// Package calendar defines the provider-neutral view of a day's meetings
// that the reconciliation pass consumes. Concrete providers (Microsoft
// Graph) live in their own packages and translate into Block values.
package calendar

import (
	"context"
	"strings"
	"time"
)

// Block is one scheduled event on the working day.
type Block struct {
	Subject           string
	Start             time.Time
	End               time.Time
	AllDay            bool
	OutOfOffice       bool
	Status            string // provider's free/busy status, lowercase
	SuggestedCategory *int   // mapped from the event's own categorization, if any
}

// Hours returns the block length in hours.
func (b Block) Hours() float64 {
	return b.End.Sub(b.Start).Hours()
}

// Source fetches the calendar blocks for a single working date.
type Source interface {
	FetchEvents(ctx context.Context, date time.Time) ([]Block, error)
}

// SkipRules decides which fetched blocks never become candidate entries.
type SkipRules struct {
	AllDay       bool
	OutOfOffice  bool
	Subjects     []string
	Statuses     []string
	MinimumHours float64
}

// ShouldSkip reports whether a block is excluded from reconciliation.
func (r SkipRules) ShouldSkip(b Block) bool {
	if r.AllDay && b.AllDay {
		return true
	}
	if r.OutOfOffice && b.OutOfOffice {
		return true
	}
	if b.Hours() <= r.MinimumHours {
		return true
	}
	for _, subject := range r.Subjects {
		if strings.EqualFold(subject, b.Subject) {
			return true
		}
	}
	for _, status := range r.Statuses {
		if strings.EqualFold(status, b.Status) {
			return true
		}
	}
	return false
}

// Filter returns the blocks that survive the skip rules, sorted order
// preserved.
func (r SkipRules) Filter(blocks []Block) []Block {
	kept := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if !r.ShouldSkip(b) {
			kept = append(kept, b)
		}
	}
	return kept
}
