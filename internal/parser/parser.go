// Package parser turns one line of terse console input into a provisional
// time entry. It is pure: classification depends only on the line and the
// registries passed in, never on session state.
package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
)

// Parsed is the provisional entry produced from one line of input.
// Category and Account are nil when the line omitted them; the caller
// decides what fills the gap (session defaults, or the candidate fields
// during calendar reconciliation).
type Parsed struct {
	Duration float64
	Category *int
	Account  *string
	Comment  string
}

// IsEntryLine reports whether a line should be dispatched as a new-entry
// line, i.e. its first token parses as a float.
func IsEntryLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(fields[0], 64)
	return err == nil
}

// Parse classifies one whitespace-delimited line. The first token must be a
// non-negative real number of hours; the rest are classified left-to-right
// as category, account, or comment. The first token that is neither a known
// category id nor a known account key begins the comment, as does a second
// token that would otherwise classify as category or account. Unknown small
// integers and single letters are not errors; comments are allowed to
// contain them.
func Parse(line string, categories domain.CategoryRegistry, accounts domain.AccountRegistry) (Parsed, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Parsed{}, errors.NewParseError("duration", line, "no input")
	}

	duration, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Parsed{}, errors.NewParseError("duration", fields[0], "not a number")
	}
	if math.IsNaN(duration) {
		return Parsed{}, errors.NewParseError("duration", fields[0], "NaN is not a duration")
	}
	if duration < 0 {
		return Parsed{}, errors.NewParseError("duration", fields[0], "cannot be negative")
	}

	parsed := Parsed{Duration: duration}

	rest := fields[1:]
	for i, tok := range rest {
		switch classify(tok, parsed, categories, accounts) {
		case tokenCategory:
			id, _ := strconv.Atoi(tok)
			parsed.Category = &id
		case tokenAccount:
			key := domain.NormalizeAccountKey(tok)
			parsed.Account = &key
		default:
			parsed.Comment = strings.Join(rest[i:], " ")
			return parsed, nil
		}
	}

	return parsed, nil
}

type tokenKind int

const (
	tokenCategory tokenKind = iota
	tokenAccount
	tokenCommentStart
)

// classify attempts the ordered classification for a single token: category,
// then account, then comment. A slot already filled no longer matches, so a
// second category- or account-looking token falls through to the comment.
func classify(tok string, parsed Parsed, categories domain.CategoryRegistry, accounts domain.AccountRegistry) tokenKind {
	if parsed.Category == nil {
		if id, err := strconv.Atoi(tok); err == nil && categories.Contains(id) {
			return tokenCategory
		}
	}
	if parsed.Account == nil {
		if utf8.RuneCountInString(tok) == 1 && accounts.Contains(tok) {
			return tokenAccount
		}
	}
	return tokenCommentStart
}
