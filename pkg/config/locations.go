// Package config locates the file type database and theme documents.
//
// Each document is looked up in a fixed order and the first existing
// candidate wins: explicit flag, environment variable, the user's
// ~/.config/vivid directory, and finally the copy bundled into the binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"vivid/pkg/assets"
)

const (
	// EnvDatabase overrides the file type database path.
	EnvDatabase = "VIVID_DATABASE"
	// EnvThemesDir adds a directory searched for themes.
	EnvThemesDir = "VIVID_THEMES_DIR"

	databaseFile = "filetypes.yml"
	themesDir    = "themes"
)

// BundledSource is reported for documents read from the binary.
const BundledSource = "<bundled>"

// ErrThemeNotFound is returned when no location provides the requested theme.
var ErrThemeNotFound = errors.New("theme not found")

// Locations holds the command line overrides. Empty fields fall through to
// the environment and the defaults.
type Locations struct {
	Database  string
	ThemesDir string
}

// Document is a loaded document and where it came from.
type Document struct {
	Source string
	Data   []byte
}

// GetVividDir returns the path to the user's vivid configuration directory.
func GetVividDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vivid"), nil
}

// DatabasePaths returns the candidate database files in lookup order.
func (l Locations) DatabasePaths() []string {
	var paths []string
	if l.Database != "" {
		paths = append(paths, l.Database)
	}
	if env := strings.TrimSpace(os.Getenv(EnvDatabase)); env != "" {
		paths = append(paths, env)
	}
	if dir, err := GetVividDir(); err == nil {
		paths = append(paths, filepath.Join(dir, databaseFile))
	}
	return paths
}

// ThemeDirs returns the directories searched for themes, in lookup order.
func (l Locations) ThemeDirs() []string {
	var dirs []string
	if l.ThemesDir != "" {
		dirs = append(dirs, l.ThemesDir)
	}
	if env := strings.TrimSpace(os.Getenv(EnvThemesDir)); env != "" {
		dirs = append(dirs, env)
	}
	if dir, err := GetVividDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, themesDir))
	}
	return dirs
}

// ReadDatabase loads the first database found. An explicitly requested
// database that cannot be read is an error rather than a fall through.
func (l Locations) ReadDatabase() (Document, error) {
	if l.Database != "" {
		return readFile(l.Database)
	}
	for _, path := range l.DatabasePaths() {
		if !isFile(path) {
			continue
		}
		return readFile(path)
	}
	return Document{Source: BundledSource, Data: assets.Database()}, nil
}

// ReadTheme loads the theme called name. A name that points at an existing
// file is read directly.
func (l Locations) ReadTheme(name string) (Document, error) {
	if name == "" {
		return Document{}, fmt.Errorf("%w: empty theme name", ErrThemeNotFound)
	}
	if strings.HasSuffix(name, assets.ThemeExt) && isFile(name) {
		return readFile(name)
	}
	if !strings.ContainsRune(name, filepath.Separator) {
		for _, dir := range l.ThemeDirs() {
			path := filepath.Join(dir, name+assets.ThemeExt)
			if !isFile(path) {
				continue
			}
			return readFile(path)
		}
		if data, err := assets.Theme(name); err == nil {
			return Document{Source: BundledSource, Data: data}, nil
		}
	}
	return Document{}, fmt.Errorf("%w: '%s'", ErrThemeNotFound, name)
}

// ThemeName returns the name a theme argument refers to.
func ThemeName(arg string) string {
	return strings.TrimSuffix(filepath.Base(arg), assets.ThemeExt)
}

// AvailableThemes lists the theme names found in every location, sorted and
// without duplicates.
func (l Locations) AvailableThemes() ([]string, error) {
	names := assets.ThemeNames()
	for _, dir := range l.ThemeDirs() {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if name, ok := strings.CutSuffix(entry.Name(), assets.ThemeExt); ok {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func readFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Document{Source: path, Data: data}, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
