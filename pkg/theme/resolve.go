package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// ResetCode is emitted for categories the theme has no entry for.
	ResetCode = "0"

	// DefaultStyle applies when a descriptor names no text style.
	DefaultStyle = "regular"

	// DefaultForeground is the colour name used when a descriptor names no
	// foreground.
	DefaultForeground = "default"

	// FallbackForeground is used when the foreground colour name is not in the
	// colors table.
	FallbackForeground = "ffffff"
)

// styleNumber maps a text style name to its SGR parameter.
func styleNumber(name string) (int, bool) {
	switch name {
	case "regular":
		return 0, true
	case "bold":
		return 1, true
	case "faint":
		return 2, true
	case "italic":
		return 3, true
	case "underline":
		return 4, true
	case "blink":
		return 5, true
	case "rapid-blink":
		return 6, true
	case "overline":
		return 53, true
	default:
		return 0, false
	}
}

// Resolve renders the style for category. The walk follows category from the
// root and stops at the first node carrying style attributes, so a styled
// ancestor wins over its descendants. A category the theme does not cover is
// reported through the logger and resolves to ResetCode.
//
// Resolve panics if category is empty.
func (t *Theme) Resolve(category []string) (string, error) {
	if len(category) == 0 {
		panic("theme: category must not be empty")
	}

	node := t.root
	for _, key := range category {
		if node.Descriptor != nil {
			break
		}
		child, ok := node.Children[key]
		if !ok {
			t.logger.Warnf("could not resolve path '%s'", strings.Join(category, "/"))
			return ResetCode, nil
		}
		node = child
	}

	return t.render(node.Descriptor)
}

func (t *Theme) render(d *Descriptor) (string, error) {
	if d == nil {
		d = &Descriptor{}
	}

	var b strings.Builder

	styles := d.Styles
	if len(styles) == 0 {
		styles = []string{DefaultStyle}
	}
	for i, name := range styles {
		n, ok := styleNumber(name)
		if !ok {
			return "", fmt.Errorf("%w: '%s'", ErrUnknownStyleName, name)
		}
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(n))
	}

	foreground := d.Foreground
	if foreground == "" {
		foreground = DefaultForeground
	}
	hex, ok := t.colors[foreground]
	if !ok {
		hex = FallbackForeground
	}
	if err := writeColor(&b, "38", hex); err != nil {
		return "", fmt.Errorf("foreground '%s': %w", foreground, err)
	}

	// A background name missing from the colors table drops the background.
	if d.Background != "" {
		if hex, ok := t.colors[d.Background]; ok {
			if err := writeColor(&b, "48", hex); err != nil {
				return "", fmt.Errorf("background '%s': %w", d.Background, err)
			}
		}
	}

	return b.String(), nil
}

func writeColor(b *strings.Builder, selector, hex string) error {
	r, g, bl, err := decodeHex(hex)
	if err != nil {
		return err
	}
	fmt.Fprintf(b, ";%s;2;%d;%d;%d", selector, r, g, bl)
	return nil
}

// decodeHex splits a six digit hex colour into its 8-bit channels.
func decodeHex(hex string) (r, g, b uint8, err error) {
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: '%s' is not six hex digits", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: '%s'", ErrInvalidColor, hex)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}
