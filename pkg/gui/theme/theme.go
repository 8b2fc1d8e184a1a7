// Package theme holds the colours of the preview chrome. The previewed
// entries themselves are drawn in the colours of the generated table.
package theme

var (
	// Brand colour for titles
	Brand = "#9d87ae"

	// Text colors
	TextPrimary     = "#ffffff" // theme name, focused text
	TextDescription = "#c9c9c9" // help line
	TextMuted       = "#7a7a7a" // categories, document sources

	// Border colors
	BorderMuted = "#7a7a7a"
)
