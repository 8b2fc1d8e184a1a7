package preview

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the preview keybindings. Line and page scrolling is left to
// the viewport's own bindings.
type KeyMap struct {
	Quit   key.Binding // q, esc, ctrl+c - leave the preview
	Top    key.Binding // g, home - jump to first entry
	Bottom key.Binding // G, end - jump to last entry
}

// NewKeyMap creates a KeyMap with the default bindings.
func NewKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
	}
}
