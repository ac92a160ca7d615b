// Package export renders staged entries as tab-separated values and copies
// them to the system clipboard, ready to paste into a timecard spreadsheet.
package export

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/blairfrandeen/titr/internal/domain"
	"github.com/blairfrandeen/titr/internal/errors"
)

// Clipboard abstracts the system clipboard so tests avoid touching it.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the real OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// TSV renders entries one per line: date, duration, category name, account
// name, comment, separated by tabs. Each line ends with a newline; no
// entries yields the empty string. Registry names are resolved so the
// pasted rows are readable without the config at hand.
func TSV(entries []domain.TimeEntry, categories domain.CategoryRegistry, accounts domain.AccountRegistry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.DateString())
		b.WriteByte('\t')
		b.WriteString(strconv.FormatFloat(entry.Duration, 'f', -1, 64))
		b.WriteByte('\t')
		b.WriteString(categories.Name(entry.Category))
		b.WriteByte('\t')
		b.WriteString(accounts.Name(entry.Account))
		b.WriteByte('\t')
		b.WriteString(entry.Comment)
		b.WriteByte('\n')
	}
	return b.String()
}

// ToClipboard renders entries as TSV and places them on the clipboard.
func ToClipboard(clip Clipboard, entries []domain.TimeEntry, categories domain.CategoryRegistry, accounts domain.AccountRegistry) error {
	if len(entries) == 0 {
		return errors.NewInputError("no entries to copy")
	}
	if err := clip.WriteAll(TSV(entries, categories, accounts)); err != nil {
		return errors.WrapError(err, errors.ErrorTypeInput, "could not write to clipboard")
	}
	return nil
}
