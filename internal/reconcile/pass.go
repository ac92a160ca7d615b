// Package reconcile walks a day's calendar blocks, proposing one candidate
// entry per block for the user to accept, override, or skip, and provides
// the proportional scaling used to stretch a session to a target total.
package reconcile

import (
	"context"
	"sort"
	"strings"

	"github.com/blairfrandeen/titr/internal/calendar"
	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/logging"
	"github.com/blairfrandeen/titr/internal/parser"
	"github.com/blairfrandeen/titr/internal/session"
)

// Resolution is the outcome of one candidate block.
type Resolution int

const (
	// Accepted means the candidate was staged verbatim.
	Accepted Resolution = iota
	// Overridden means the user's line replaced parts of the candidate.
	Overridden
	// Skipped means no entry was staged for the block.
	Skipped
)

// Candidate pairs a calendar block with the entry it proposes.
type Candidate struct {
	Block calendar.Block
	Entry domain.TimeEntry
}

// Pass iterates a day's surviving calendar blocks in chronological order.
// Each candidate is resolved exactly once; resolutions are independent and
// final.
type Pass struct {
	sess       *session.Session
	categories domain.CategoryRegistry
	accounts   domain.AccountRegistry
	blocks     []calendar.Block
	next       int
}

// NewPass fetches the active date's events, applies the skip rules, and
// drops blocks the session already represents (an existing staged entry
// whose comment matches the block subject).
func NewPass(ctx context.Context, source calendar.Source, rules calendar.SkipRules, sess *session.Session, categories domain.CategoryRegistry, accounts domain.AccountRegistry) (*Pass, error) {
	fetched, err := source.FetchEvents(ctx, sess.Date())
	if err != nil {
		return nil, err
	}

	blocks := rules.Filter(fetched)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})

	kept := blocks[:0]
	for _, block := range blocks {
		if !alreadyStaged(sess, block) {
			kept = append(kept, block)
		}
	}
	logging.Debugf("reconcile: %d of %d fetched blocks to resolve", len(kept), len(fetched))

	return &Pass{
		sess:       sess,
		categories: categories,
		accounts:   accounts,
		blocks:     kept,
	}, nil
}

func alreadyStaged(sess *session.Session, block calendar.Block) bool {
	for _, entry := range sess.Entries() {
		if domain.SameDay(entry.Date, sess.Date()) && strings.EqualFold(entry.Comment, block.Subject) {
			return true
		}
	}
	return false
}

// Remaining returns how many candidates are left to resolve.
func (p *Pass) Remaining() int {
	return len(p.blocks) - p.next
}

// Next returns the next candidate. ok is false once the pass is exhausted.
func (p *Pass) Next() (candidate Candidate, ok bool) {
	if p.next >= len(p.blocks) {
		return Candidate{}, false
	}
	block := p.blocks[p.next]
	p.next++

	category := p.sess.DefaultCategory()
	if block.SuggestedCategory != nil {
		category = *block.SuggestedCategory
	}
	entry := domain.NewTimeEntry(block.Hours(), category, p.sess.DefaultAccount(), block.Subject, p.sess.Date())
	return Candidate{Block: block, Entry: entry}, true
}

// Resolve applies the user's line to a candidate. An empty line accepts the
// candidate verbatim; a zero duration skips the block; anything else is
// tokenized like a normal entry line, with omitted fields falling back to
// the candidate rather than the session defaults. A returned error means
// nothing was staged and the same candidate may be retried.
func (p *Pass) Resolve(candidate Candidate, line string) (Resolution, error) {
	if strings.TrimSpace(line) == "" {
		if err := p.sess.Append(candidate.Entry); err != nil {
			return Skipped, err
		}
		return Accepted, nil
	}

	parsed, err := parser.Parse(line, p.categories, p.accounts)
	if err != nil {
		return Skipped, err
	}
	if parsed.Duration == 0 {
		return Skipped, nil
	}

	entry := candidate.Entry
	entry.Duration = parsed.Duration
	if parsed.Category != nil {
		entry.Category = *parsed.Category
	}
	if parsed.Account != nil {
		entry.Account = domain.NormalizeAccountKey(*parsed.Account)
	}
	if parsed.Comment != "" {
		entry.Comment = parsed.Comment
	}

	if err := p.sess.Append(entry); err != nil {
		return Skipped, err
	}
	return Overridden, nil
}
