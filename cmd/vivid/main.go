package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vivid/internal/version"
	"vivid/pkg/config"
	"vivid/pkg/filetypes"
	"vivid/pkg/gui/preview"
	"vivid/pkg/logging"
	"vivid/pkg/lscolors"
	"vivid/pkg/theme"
)

type app struct {
	locations config.Locations
	verbose   bool
	logger    *log.Logger
	stdout    io.Writer
	stderr    io.Writer
}

// load reads the database and the theme named by themeArg.
func (a *app) load(themeArg string) (*filetypes.Database, *theme.Theme, config.Document, error) {
	dbDoc, err := a.locations.ReadDatabase()
	if err != nil {
		return nil, nil, config.Document{}, fmt.Errorf("could not load file types: %w", err)
	}
	a.logger.Debugf("file types loaded from %s", dbDoc.Source)

	db, err := filetypes.Parse(dbDoc.Data)
	if err != nil {
		return nil, nil, config.Document{}, fmt.Errorf("%s: %w", dbDoc.Source, err)
	}

	themeDoc, err := a.locations.ReadTheme(themeArg)
	if err != nil {
		return nil, nil, config.Document{}, err
	}
	a.logger.Debugf("theme loaded from %s", themeDoc.Source)

	name := config.ThemeName(themeArg)
	th, err := theme.Parse(themeDoc.Data, theme.WithName(name), theme.WithLogger(a.logger))
	if err != nil {
		return nil, nil, config.Document{}, fmt.Errorf("%s: %w", themeDoc.Source, err)
	}
	return db, th, themeDoc, nil
}

func (a *app) runGenerate(themeArg string) error {
	db, th, _, err := a.load(themeArg)
	if err != nil {
		return err
	}

	out, err := lscolors.Build(db, th)
	if err != nil {
		return err
	}
	a.logger.Debugf("generated %d entries for theme %s", db.Len(), th.Name())

	_, err = fmt.Fprintln(a.stdout, out)
	return err
}

func (a *app) runThemes() error {
	names, err := a.locations.AvailableThemes()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(a.stdout, name); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runPreview(themeArg string, plain bool) error {
	db, th, doc, err := a.load(themeArg)
	if err != nil {
		return err
	}

	entries, err := lscolors.Generate(db, th)
	if err != nil {
		return err
	}

	profile := termenv.NewOutput(a.stdout).EnvColorProfile()

	fd, isTTY := a.terminal()
	if plain || !isTTY {
		width := 0
		if isTTY {
			if w, _, err := term.GetSize(fd); err == nil {
				width = w
			}
		}
		_, err := fmt.Fprintln(a.stdout, preview.Table(entries, profile, width))
		return err
	}

	return preview.Run(preview.New(th.Name(), doc.Source, entries, profile))
}

// terminal reports whether stdout is a terminal.
func (a *app) terminal() (int, bool) {
	f, ok := a.stdout.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	var showVersion bool

	var rootCmd = &cobra.Command{
		Use:   "vivid",
		Short: "A generator for the LS_COLORS environment variable",
		Long: `Vivid generates LS_COLORS values from a database of file types and a colour theme.

File types are grouped into categories (archives, media/image, ...). A theme
assigns a style to any category, the most general styled category wins.

Documents are looked up in this order:
  file types: --database, $VIVID_DATABASE, ~/.config/vivid/filetypes.yml, bundled
  themes:     a path to a .yml file, --themes-dir, $VIVID_THEMES_DIR,
              ~/.config/vivid/themes/<name>.yml, bundled

Examples:
  export LS_COLORS="$(vivid generate molokai)"
  vivid preview snazzy
  vivid themes`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			a.logger = logging.New(a.stderr, a.verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				_, err := fmt.Fprintln(a.stdout, version.Short())
				return err
			}
			return cmd.Help()
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.PersistentFlags().StringVarP(&a.locations.Database, "database", "d", "", "Path to the file types database (filetypes.yml)")
	rootCmd.PersistentFlags().StringVar(&a.locations.ThemesDir, "themes-dir", "", "Additional directory searched for themes")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Log where documents are loaded from")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "generate <theme>",
		Short: "Generate a LS_COLORS expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runGenerate(args[0])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runThemes()
		},
	})

	var plain bool
	previewCmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Show every file type in the colours of a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runPreview(args[0], plain)
		},
	}
	previewCmd.Flags().BoolVar(&plain, "plain", false, "Print the table instead of starting the interactive preview")
	rootCmd.AddCommand(previewCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
