package msgraph

import (
	"context"
	"strings"
	"time"

	"github.com/blairfrandeen/titr/internal/calendar"
	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
	"github.com/blairfrandeen/titr/internal/logging"
)

// Source fetches a day's events from Microsoft Graph and maps them to
// calendar blocks. It implements calendar.Source.
type Source struct {
	tenantID   string
	clientID   string
	timezone   string
	categories domain.CategoryRegistry
}

// NewSource creates a Graph-backed calendar source. categories is used to
// map the event's own category labels onto configured category ids.
func NewSource(tenantID, clientID, timezone string, categories domain.CategoryRegistry) *Source {
	return &Source{
		tenantID:   tenantID,
		clientID:   clientID,
		timezone:   timezone,
		categories: categories,
	}
}

// FetchEvents returns the blocks scheduled on the given date. Any failure to
// authenticate or reach the Graph API surfaces as a source-unavailable
// error; the session is never disturbed by a broken calendar connection.
func (s *Source) FetchEvents(ctx context.Context, date time.Time) ([]calendar.Block, error) {
	if s.tenantID == "" || s.clientID == "" {
		return nil, errors.NewSourceUnavailableError("outlook",
			errors.NewInputError("tenant_id and client_id must be set in the [outlook] config section"))
	}

	tok, cfg, err := authenticate(ctx, s.tenantID, s.clientID)
	if err != nil {
		return nil, errors.NewSourceUnavailableError("outlook", err)
	}

	dayStart := domain.Midnight(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := newClient(ctx, tok, cfg).getCalendarView(ctx, dayStart, dayEnd, s.timezone)
	if err != nil {
		return nil, errors.NewSourceUnavailableError("outlook", err)
	}
	logging.Debugf("msgraph: fetched %d events for %s", len(events), dayStart.Format("2006-01-02"))

	blocks := make([]calendar.Block, 0, len(events))
	for _, event := range events {
		block, ok := s.mapEvent(event)
		if !ok {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// mapEvent converts one Graph event into a block. Cancelled and private
// events are dropped at the provider level; everything else is left to the
// configured skip rules.
func (s *Source) mapEvent(event calendarEvent) (calendar.Block, bool) {
	if event.IsCancelled || event.Sensitivity == "private" {
		return calendar.Block{}, false
	}
	if event.Start.DateTime == "" || event.End.DateTime == "" {
		return calendar.Block{}, false
	}

	start, err := parseGraphTime(event.Start.DateTime)
	if err != nil {
		logging.Debugf("msgraph: skipping event %q: %v", event.Subject, err)
		return calendar.Block{}, false
	}
	end, err := parseGraphTime(event.End.DateTime)
	if err != nil {
		logging.Debugf("msgraph: skipping event %q: %v", event.Subject, err)
		return calendar.Block{}, false
	}

	block := calendar.Block{
		Subject:           event.Subject,
		Start:             start,
		End:               end,
		AllDay:            event.IsAllDay,
		OutOfOffice:       strings.EqualFold(event.ShowAs, "oof"),
		Status:            strings.ToLower(event.ShowAs),
		SuggestedCategory: s.suggestCategory(event.Categories),
	}
	return block, true
}

// suggestCategory maps the first event label that matches a configured
// category name, case-insensitively.
func (s *Source) suggestCategory(labels []string) *int {
	for _, label := range labels {
		if id, ok := s.categories.FindByName(label); ok {
			return &id
		}
	}
	return nil
}
