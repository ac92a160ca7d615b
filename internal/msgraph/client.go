// Package msgraph reads calendar events from Microsoft Graph and exposes
// them as calendar blocks for reconciliation. Authentication uses the
// OAuth2 device code flow with tokens cached under ~/.titr/auth/.
package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// client is an authenticated Microsoft Graph API client.
type client struct {
	httpClient *http.Client
}

func newClient(ctx context.Context, tok *oauth2.Token, cfg *oauth2.Config) *client {
	ts := cfg.TokenSource(ctx, tok)
	return &client{
		httpClient: oauth2.NewClient(ctx, &savingTokenSource{ts: ts}),
	}
}

// savingTokenSource wraps a TokenSource and persists refreshed tokens.
type savingTokenSource struct {
	ts oauth2.TokenSource
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.ts.Token()
	if err != nil {
		return nil, err
	}
	// Best-effort save; ignore errors.
	_ = saveToken(tok)
	return tok, nil
}

// calendarEvent is a Microsoft Graph calendar event.
type calendarEvent struct {
	ID          string   `json:"id"`
	Subject     string   `json:"subject"`
	IsAllDay    bool     `json:"isAllDay"`
	IsCancelled bool     `json:"isCancelled"`
	Sensitivity string   `json:"sensitivity"` // "normal", "personal", "private", "confidential"
	ShowAs      string   `json:"showAs"`      // "free", "tentative", "busy", "oof", "workingElsewhere", "unknown"
	Categories  []string `json:"categories"`
	Start       struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"end"`
}

// calendarViewResponse is the Graph API paged response for calendar events.
type calendarViewResponse struct {
	Value    []calendarEvent `json:"value"`
	NextLink string          `json:"@odata.nextLink"`
}

// getCalendarView fetches calendar events in [from, to) using the
// calendarView endpoint, following paging links. timezone is the Exchange
// timezone name used in the Prefer header; pass "" for UTC.
func (c *client) getCalendarView(ctx context.Context, from, to time.Time, timezone string) ([]calendarEvent, error) {
	startISO := from.UTC().Format(time.RFC3339)
	endISO := to.UTC().Format(time.RFC3339)

	endpoint := fmt.Sprintf("%s/me/calendarView?startDateTime=%s&endDateTime=%s&$top=100",
		graphBaseURL,
		url.QueryEscape(startISO),
		url.QueryEscape(endISO),
	)

	var all []calendarEvent
	for endpoint != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if timezone != "" {
			req.Header.Set("Prefer", fmt.Sprintf(`outlook.timezone="%s"`, timezone))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("graph API request failed: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("graph API error %d: %s", resp.StatusCode, string(body))
		}

		var page calendarViewResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decoding graph response: %w", err)
		}

		all = append(all, page.Value...)
		endpoint = page.NextLink
	}
	return all, nil
}

// parseGraphTime parses a Graph API dateTime string. Graph returns times
// like "2026-02-27T09:00:00.0000000" without a zone suffix when a
// Prefer: outlook.timezone header is set.
func parseGraphTime(dt string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, dt); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}
