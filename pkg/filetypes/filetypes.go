// Package filetypes flattens the nested file type database into the table of
// LS_COLORS match codes it describes.
//
// The database is a YAML tree of named groups. Inner nodes map group names to
// sub-groups, leaves are lists of patterns:
//
//	text:
//	  readme: [$README, $README.md]
//	  markup: [md, rst]
//
// A pattern starting with '$' matches an exact file name, every other pattern
// matches a file name suffix.
package filetypes

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExactMatchPrefix marks a pattern that matches a whole file name.
const ExactMatchPrefix = "$"

// ErrInvalidTaxonomy is returned when the database contains a node that is
// neither a group mapping nor a pattern list.
var ErrInvalidTaxonomy = errors.New("invalid file type database")

// Category is the path of group names from the database root to the group
// that owns a match code.
type Category []string

// String joins the category path with slashes.
func (c Category) String() string {
	return strings.Join(c, "/")
}

// Database is the flattened file type table. Codes keep the order in which
// they were first seen in the document.
type Database struct {
	codes      []string
	categories map[string]Category
}

func newDatabase() *Database {
	return &Database{categories: map[string]Category{}}
}

// Len returns the number of distinct match codes.
func (d *Database) Len() int {
	return len(d.codes)
}

// Codes returns the match codes in document order.
func (d *Database) Codes() []string {
	codes := make([]string, len(d.codes))
	copy(codes, d.codes)
	return codes
}

// Category returns the category owning code.
func (d *Database) Category(code string) (Category, bool) {
	category, ok := d.categories[code]
	return category, ok
}

// set records code under category. A code seen before keeps its position and
// takes the new category.
func (d *Database) set(code string, category Category) {
	if _, exists := d.categories[code]; !exists {
		d.codes = append(d.codes, code)
	}
	d.categories[code] = category
}

// Code derives the LS_COLORS match code for a database pattern.
func Code(pattern string) string {
	if name, ok := strings.CutPrefix(pattern, ExactMatchPrefix); ok {
		return name
	}
	return "*" + pattern
}

// Load reads and flattens the database stored at path.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load file types from %s: %w", path, err)
	}
	return Parse(data)
}

// Parse flattens a database document.
func Parse(data []byte) (*Database, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTaxonomy, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidTaxonomy)
	}
	return Flatten(doc.Content[0])
}

// Flatten walks tree and maps every pattern to the category of the list that
// holds it.
func Flatten(tree *yaml.Node) (*Database, error) {
	db := newDatabase()
	if err := flatten(db, tree, Category{}); err != nil {
		return nil, err
	}
	return db, nil
}

func flatten(db *Database, node *yaml.Node, category Category) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Value == "" || item.Value == ExactMatchPrefix {
				return fmt.Errorf("%w: line %d: %s entry must be a non-empty pattern", ErrInvalidTaxonomy, item.Line, describe(category))
			}
			db.set(Code(item.Value), category)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			child := make(Category, len(category), len(category)+1)
			copy(child, category)
			child = append(child, key.Value)
			if err := flatten(db, value, child); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: line %d: unexpected %s at %s", ErrInvalidTaxonomy, node.Line, kindName(node.Kind), describe(category))
	}
	return nil
}

func describe(category Category) string {
	if len(category) == 0 {
		return "root"
	}
	return "'" + category.String() + "'"
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
