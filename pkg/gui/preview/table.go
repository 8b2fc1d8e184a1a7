// Package preview shows a generated LS_COLORS table with every code drawn in
// its own style.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"vivid/pkg/gui/icons"
	"vivid/pkg/gui/theme"
	"vivid/pkg/lscolors"
)

const (
	// MaxCodeWidth caps the code column; longer codes are truncated.
	MaxCodeWidth = 28

	columnGap = "  "
	ellipsis  = "…"
)

var categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted))

// Table renders one row per entry: the category icon, the styled code, its
// category and the raw style fragment. Lines are cut at width when width is positive. The Ascii
// profile disables the code styling.
func Table(entries []lscolors.Entry, profile termenv.Profile, width int) string {
	codeWidth := 0
	for _, e := range entries {
		codeWidth = max(codeWidth, runewidth.StringWidth(e.Code))
	}
	codeWidth = min(codeWidth, MaxCodeWidth)

	categoryWidth := 0
	for _, e := range entries {
		categoryWidth = max(categoryWidth, runewidth.StringWidth(e.Category.String()))
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}

		cell := StyledCode(truncate.StringWithTail(e.Code, uint(codeWidth), ellipsis), e.Style, profile)
		category := categoryStyle.Render(e.Category.String())

		line := icons.ForCategory(e.Category).Get() + " " + pad(cell, codeWidth) + columnGap + pad(category, categoryWidth) + columnGap + e.Style
		if width > 0 {
			line = truncate.String(line, uint(width))
		}
		b.WriteString(line)
	}
	return b.String()
}

// StyledCode wraps code in the SGR sequence of style.
func StyledCode(code, style string, profile termenv.Profile) string {
	if profile == termenv.Ascii || style == "" {
		return code
	}
	return termenv.CSI + style + "m" + code + termenv.CSI + termenv.ResetSeq + "m"
}

func pad(s string, width int) string {
	if n := width - ansi.PrintableRuneWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
