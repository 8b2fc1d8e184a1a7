// Package theme resolves file type categories against a colour theme and
// renders the matching SGR fragment for LS_COLORS.
//
// A theme document mirrors the file type database. Any group may carry a
// style descriptor (foreground, background, style) and the root holds a
// colors table mapping colour names to six hex digits:
//
//	colors:
//	  red: ff0000
//	archives:
//	  style: bold
//	  foreground: red
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	keyForeground = "foreground"
	keyBackground = "background"
	keyStyle      = "style"
	keyColors     = "colors"
)

var (
	// ErrInvalidTheme is returned when a theme document cannot be read as a
	// tree of groups.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrUnknownStyleName is returned when a style descriptor names a text
	// style outside the supported set.
	ErrUnknownStyleName = errors.New("unknown style name")

	// ErrInvalidColor is returned when a colour used by a resolved style is
	// not six hex digits.
	ErrInvalidColor = errors.New("invalid color")
)

// Descriptor holds the style attributes attached to a theme node.
type Descriptor struct {
	Styles     []string
	Foreground string
	Background string
}

// Node is a group in the theme tree. Descriptor is nil unless the group
// carries at least one style attribute.
type Node struct {
	Descriptor *Descriptor
	Children   map[string]*Node
}

// Theme is a parsed theme document.
type Theme struct {
	name   string
	root   *Node
	colors map[string]string
	logger *log.Logger
}

// Option configures a Theme.
type Option func(*Theme)

// WithLogger sets the logger that receives lookup diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(t *Theme) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithName sets the name reported in diagnostics.
func WithName(name string) Option {
	return func(t *Theme) {
		t.name = name
	}
}

// Load reads the theme document stored at path.
func Load(path string, opts ...Option) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load theme from %s: %w", path, err)
	}
	return Parse(data, opts...)
}

// Parse builds a Theme from a YAML document.
func Parse(data []byte, opts ...Option) (*Theme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidTheme)
	}

	content := resolveAlias(doc.Content[0])
	if content.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: document root must be a mapping", ErrInvalidTheme, content.Line)
	}

	t := &Theme{
		colors: map[string]string{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}

	root, err := parseNode(content, "")
	if err != nil {
		return nil, err
	}
	t.root = root

	if colors := lookup(content, keyColors); colors != nil {
		if err := t.parseColors(colors); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Name returns the theme name, if one was given.
func (t *Theme) Name() string {
	return t.name
}

// Root returns the root of the theme tree.
func (t *Theme) Root() *Node {
	return t.root
}

// Color looks up a colour by name in the colors table.
func (t *Theme) Color(name string) (string, bool) {
	hex, ok := t.colors[name]
	return hex, ok
}

// Colors returns a copy of the colors table.
func (t *Theme) Colors() map[string]string {
	colors := make(map[string]string, len(t.colors))
	for name, hex := range t.colors {
		colors[name] = hex
	}
	return colors
}

func (t *Theme) parseColors(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: colors must be a mapping", ErrInvalidTheme, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: line %d: color '%s' must be a string", ErrInvalidTheme, value.Line, key.Value)
		}
		t.colors[key.Value] = value.Value
	}
	return nil
}

// parseNode converts a mapping into a Node. Mapping-valued keys become
// children, other values that are not style attributes are ignored.
func parseNode(n *yaml.Node, path string) (*Node, error) {
	node := &Node{Children: map[string]*Node{}}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, resolveAlias(n.Content[i+1])

		switch key {
		case keyForeground, keyBackground:
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: '%s' of %s must be a string", ErrInvalidTheme, value.Line, key, describe(path))
			}
			d := node.descriptor()
			if key == keyForeground {
				d.Foreground = scalar(value)
			} else {
				d.Background = scalar(value)
			}
		case keyStyle:
			styles, err := parseStyles(value, path)
			if err != nil {
				return nil, err
			}
			node.descriptor().Styles = styles
		default:
			// The root colors table is not a group
			if value.Kind != yaml.MappingNode || (path == "" && key == keyColors) {
				continue
			}
			child, err := parseNode(value, join(path, key))
			if err != nil {
				return nil, err
			}
			node.Children[key] = child
		}
	}
	return node, nil
}

func parseStyles(value *yaml.Node, path string) ([]string, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if s := scalar(value); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	case yaml.SequenceNode:
		styles := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: style of %s must be a string or a list of strings", ErrInvalidTheme, item.Line, describe(path))
			}
			styles = append(styles, item.Value)
		}
		return styles, nil
	default:
		return nil, fmt.Errorf("%w: line %d: style of %s must be a string or a list of strings", ErrInvalidTheme, value.Line, describe(path))
	}
}

func (n *Node) descriptor() *Descriptor {
	if n.Descriptor == nil {
		n.Descriptor = &Descriptor{}
	}
	return n.Descriptor
}

// scalar returns the value of a scalar node, treating an explicit null as
// unset.
func scalar(n *yaml.Node) string {
	if n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

func lookup(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolveAlias(n.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}

func describe(path string) string {
	if path == "" {
		return "root"
	}
	return "'" + path + "'"
}
