// Package assets bundles the default file type database and themes into the
// binary.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// ThemeExt is the file extension of theme documents.
const ThemeExt = ".yml"

//go:embed filetypes.yml
var database []byte

//go:embed themes/*.yml
var themes embed.FS

// Database returns the bundled file type database.
func Database() []byte {
	return database
}

// Theme returns the bundled theme called name.
func Theme(name string) ([]byte, error) {
	return themes.ReadFile(path.Join("themes", name+ThemeExt))
}

// ThemeNames lists the bundled themes in lexical order.
func ThemeNames() []string {
	entries, err := fs.ReadDir(themes, "themes")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ThemeExt); ok && !entry.IsDir() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
