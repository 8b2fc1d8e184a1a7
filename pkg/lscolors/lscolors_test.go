package lscolors

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivid/pkg/filetypes"
	"vivid/pkg/theme"
)

func mustDatabase(t *testing.T, doc string) *filetypes.Database {
	t.Helper()
	db, err := filetypes.Parse([]byte(doc))
	require.NoError(t, err)
	return db
}

func mustTheme(t *testing.T, doc string) (*theme.Theme, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	th, err := theme.Parse([]byte(doc), theme.WithLogger(log.New(&buf)))
	require.NoError(t, err)
	return th, &buf
}

func TestBuildConcreteScenario(t *testing.T) {
	db := mustDatabase(t, `{"archives": ["tar", "$Makefile"]}`)
	th, _ := mustTheme(t, `{"archives": {"style": "bold", "foreground": "red"}, "colors": {"red": "ff0000"}}`)

	got, err := Build(db, th)
	require.NoError(t, err)
	assert.Equal(t, "*tar=1;38;2;255;0;0:Makefile=1;38;2;255;0;0", got)
}

func TestGenerateSortsByCodeLengthStably(t *testing.T) {
	db := mustDatabase(t, `
a: [$LICENSE, zz, $Makefile, xy, c]
b: [$go.mod, yy]
`)
	th, _ := mustTheme(t, `
a: {style: bold}
b: {style: italic}
`)

	entries, err := Generate(db, th)
	require.NoError(t, err)

	var codes []string
	for _, e := range entries {
		codes = append(codes, e.Code)
	}
	assert.Equal(t, []string{"*c", "*zz", "*xy", "*yy", "go.mod", "LICENSE", "Makefile"}, codes)
	assert.Equal(t, filetypes.Category{"b"}, entries[3].Category)
	assert.Equal(t, "3;38;2;255;255;255", entries[3].Style)
}

func TestGenerateCountsCharactersNotBytes(t *testing.T) {
	db := mustDatabase(t, `
a: [$ÄÖÜ, $abcd]
`)
	th, _ := mustTheme(t, `a: {style: bold}`)

	entries, err := Generate(db, th)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ÄÖÜ", entries[0].Code)
	assert.Equal(t, "abcd", entries[1].Code)
}

func TestGenerateUniqueCodes(t *testing.T) {
	db := mustDatabase(t, `
text: [md, txt]
docs:
  markdown: [md]
`)
	th, _ := mustTheme(t, `
colors:
  red: ff0000
text: {foreground: red}
docs: {style: underline}
`)

	got, err := Build(db, th)
	require.NoError(t, err)
	assert.Equal(t, "*md=4;38;2;255;255;255:*txt=0;38;2;255;0;0", got)
	assert.Equal(t, 1, strings.Count(got, "*md="))
}

func TestGenerateMissingCategoryDegrades(t *testing.T) {
	db := mustDatabase(t, `
known: [a]
unknown: [b]
`)
	th, buf := mustTheme(t, `known: {style: bold}`)

	got, err := Build(db, th)
	require.NoError(t, err)
	assert.Equal(t, "*a=1;38;2;255;255;255:*b=0", got)
	assert.Equal(t, 1, strings.Count(buf.String(), "could not resolve path 'unknown'"))
}

func TestGenerateUnknownStyleNameIsFatal(t *testing.T) {
	db := mustDatabase(t, `
fine: [a]
broken: [b]
`)
	th, _ := mustTheme(t, `
fine: {style: bold}
broken: {style: sparkle}
`)

	got, err := Build(db, th)
	require.ErrorIs(t, err, theme.ErrUnknownStyleName)
	assert.Empty(t, got)
	assert.Contains(t, err.Error(), "*b")
}

func TestBuildIsIdempotent(t *testing.T) {
	db := mustDatabase(t, `
x: [$Dockerfile, go, rs, $Makefile, c]
y:
  z: [tar, gz]
`)
	th, _ := mustTheme(t, `
colors:
  a: 123456
x: {foreground: a}
y: {background: a}
`)

	first, err := Build(db, th)
	require.NoError(t, err)
	second, err := Build(db, th)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type stubResolver map[string]string

func (s stubResolver) Resolve(category []string) (string, error) {
	style, ok := s[strings.Join(category, "/")]
	if !ok {
		return "", errors.New("no style")
	}
	return style, nil
}

func TestGenerateAcceptsAnyResolver(t *testing.T) {
	db := mustDatabase(t, `
a:
  b: [x]
`)
	entries, err := Generate(db, stubResolver{"a/b": "7"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "*x=7", entries[0].String())

	_, err = Generate(mustDatabase(t, `c: [y]`), stubResolver{})
	require.Error(t, err)
}

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, "", Format(nil))
}
