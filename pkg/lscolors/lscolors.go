// Package lscolors assembles the LS_COLORS table from a flattened file type
// database and a theme.
package lscolors

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"vivid/pkg/filetypes"
)

// Separator joins entries in the LS_COLORS value.
const Separator = ":"

// Resolver renders the style for a category path.
type Resolver interface {
	Resolve(category []string) (string, error)
}

// Entry is one code=style pair of the table.
type Entry struct {
	Code     string
	Category filetypes.Category
	Style    string
}

// String formats the entry as it appears in LS_COLORS.
func (e Entry) String() string {
	return e.Code + "=" + e.Style
}

// Generate resolves every code of db through resolver. Entries are ordered by
// ascending code length, codes of equal length keep database order.
func Generate(db *filetypes.Database, resolver Resolver) ([]Entry, error) {
	codes := db.Codes()
	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		category, _ := db.Category(code)
		style, err := resolver.Resolve(category)
		if err != nil {
			return nil, fmt.Errorf("could not resolve style for '%s' (%s): %w", code, category, err)
		}
		entries = append(entries, Entry{Code: code, Category: category, Style: style})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(utf8.RuneCountInString(a.Code), utf8.RuneCountInString(b.Code))
	})
	return entries, nil
}

// Format joins entries into a single LS_COLORS value.
func Format(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(e.Code)
		b.WriteByte('=')
		b.WriteString(e.Style)
	}
	return b.String()
}

// Build generates and formats the table in one step.
func Build(db *filetypes.Database, resolver Resolver) (string, error) {
	entries, err := Generate(db, resolver)
	if err != nil {
		return "", err
	}
	return Format(entries), nil
}
