package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory and clears the overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvThemesDir, "")
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGetVividDir(t *testing.T) {
	home := isolate(t)
	dir, err := GetVividDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "vivid"), dir)
}

func TestReadDatabaseFallsBackToBundled(t *testing.T) {
	isolate(t)
	doc, err := Locations{}.ReadDatabase()
	require.NoError(t, err)
	assert.Equal(t, BundledSource, doc.Source)
	assert.NotEmpty(t, doc.Data)
}

func TestReadDatabasePrecedence(t *testing.T) {
	home := isolate(t)
	userDB := filepath.Join(home, ".config", "vivid", "filetypes.yml")
	writeFile(t, userDB, "user: [a]")

	doc, err := Locations{}.ReadDatabase()
	require.NoError(t, err)
	assert.Equal(t, userDB, doc.Source)

	envDB := filepath.Join(t.TempDir(), "env.yml")
	writeFile(t, envDB, "env: [a]")
	t.Setenv(EnvDatabase, envDB)

	doc, err = Locations{}.ReadDatabase()
	require.NoError(t, err)
	assert.Equal(t, envDB, doc.Source)

	flagDB := filepath.Join(t.TempDir(), "flag.yml")
	writeFile(t, flagDB, "flag: [a]")

	doc, err = Locations{Database: flagDB}.ReadDatabase()
	require.NoError(t, err)
	assert.Equal(t, flagDB, doc.Source)
	assert.Equal(t, "flag: [a]", string(doc.Data))
}

func TestReadDatabaseMissingFlagIsError(t *testing.T) {
	isolate(t)
	_, err := Locations{Database: filepath.Join(t.TempDir(), "missing.yml")}.ReadDatabase()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadThemeBundled(t *testing.T) {
	isolate(t)
	doc, err := Locations{}.ReadTheme("molokai")
	require.NoError(t, err)
	assert.Equal(t, BundledSource, doc.Source)
}

func TestReadThemePrecedence(t *testing.T) {
	home := isolate(t)
	userTheme := filepath.Join(home, ".config", "vivid", "themes", "molokai.yml")
	writeFile(t, userTheme, "user: {}")

	doc, err := Locations{}.ReadTheme("molokai")
	require.NoError(t, err)
	assert.Equal(t, userTheme, doc.Source)

	flagDir := t.TempDir()
	writeFile(t, filepath.Join(flagDir, "molokai.yml"), "flag: {}")

	doc, err = Locations{ThemesDir: flagDir}.ReadTheme("molokai")
	require.NoError(t, err)
	assert.Equal(t, "flag: {}", string(doc.Data))
}

func TestReadThemeByPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, path, "custom: {}")

	doc, err := Locations{}.ReadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Equal(t, "custom", ThemeName(path))
}

func TestReadThemeNotFound(t *testing.T) {
	isolate(t)
	for _, name := range []string{"", "nope", filepath.Join("some", "dir", "nope")} {
		_, err := Locations{}.ReadTheme(name)
		require.ErrorIs(t, err, ErrThemeNotFound, name)
	}
}

func TestAvailableThemes(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "vivid", "themes", "zenburn.yml"), "a: {}")
	writeFile(t, filepath.Join(home, ".config", "vivid", "themes", "molokai.yml"), "a: {}")
	writeFile(t, filepath.Join(home, ".config", "vivid", "themes", "notes.txt"), "")

	names, err := Locations{}.AvailableThemes()
	require.NoError(t, err)
	assert.Equal(t, []string{"ayu", "molokai", "snazzy", "zenburn"}, names)
}
