// Package icons provides Nerd Font icons, with plain fallbacks, for the file
// type categories shown in the preview.
package icons

import (
	"os"
	"strings"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

// Icons for the top level categories of the bundled database
var (
	File = Icon{
		NerdFont: "\uf15b", // Nerd Font file icon
		Fallback: "·",
	}

	Core = Icon{
		NerdFont: "\uf07b", // Nerd Font folder icon
		Fallback: "■",
	}

	Text = Icon{
		NerdFont: "\uf15c", // Nerd Font text file icon
		Fallback: "≡",
	}

	Programming = Icon{
		NerdFont: "\uf121", // Nerd Font code icon
		Fallback: "λ",
	}

	Media = Icon{
		NerdFont: "\uf03e", // Nerd Font picture icon
		Fallback: "♪",
	}

	Office = Icon{
		NerdFont: "\uf1c2", // Nerd Font document icon
		Fallback: "¶",
	}

	Archives = Icon{
		NerdFont: "\uf1c6", // Nerd Font archive icon
		Fallback: "▣",
	}

	Executable = Icon{
		NerdFont: "\uf120", // Nerd Font terminal icon
		Fallback: "»",
	}

	Crypto = Icon{
		NerdFont: "\uf084", // Nerd Font key icon
		Fallback: "¤",
	}

	Unimportant = Icon{
		NerdFont: "\uf1f8", // Nerd Font trash icon
		Fallback: "~",
	}
)

var useNerdFonts *bool

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	// Terminals that are commonly set up with a Nerd Font
	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// ForCategory returns the icon of the top level group of a category path.
func ForCategory(category []string) Icon {
	if len(category) == 0 {
		return File
	}
	switch category[0] {
	case "core":
		return Core
	case "text":
		return Text
	case "programming":
		return Programming
	case "media":
		return Media
	case "office":
		return Office
	case "archives":
		return Archives
	case "executable":
		return Executable
	case "crypto":
		return Crypto
	case "unimportant":
		return Unimportant
	default:
		return File
	}
}
