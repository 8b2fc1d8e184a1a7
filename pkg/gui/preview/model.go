package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"vivid/pkg/gui/theme"
	"vivid/pkg/lscolors"
)

// Lines taken by the header and help line around the viewport.
const (
	headerRows = 2
	footerRows = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Brand)).
			Bold(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderMuted))
)

// Model is the interactive preview: a scrollable table of entries.
type Model struct {
	viewport viewport.Model
	keys     KeyMap
	entries  []lscolors.Entry
	profile  termenv.Profile
	title    string
	source   string
	ready    bool
	width    int
	height   int
}

// New creates a preview for entries. title names the theme and source tells
// where it was loaded from.
func New(title, source string, entries []lscolors.Entry, profile termenv.Profile) Model {
	vp := viewport.New(0, 0)
	vp.Style = frameStyle

	return Model{
		viewport: vp,
		keys:     NewKeyMap(),
		entries:  entries,
		profile:  profile,
		title:    title,
		source:   source,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize lays the preview out for a terminal of the given size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// The viewport size includes its frame, the table does not
	m.viewport.Width = width
	m.viewport.Height = max(height-headerRows-footerRows, 0)
	contentWidth := max(width-m.viewport.Style.GetHorizontalFrameSize(), 0)
	m.viewport.SetContent(Table(m.entries, m.profile, contentWidth))
	m.ready = true
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading preview..."
	}

	header := titleStyle.Render(m.title) + " " + sourceStyle.Render("("+m.source+")") + "\n" +
		sourceStyle.Render(fmt.Sprintf("%d entries", len(m.entries)))

	help := helpStyle.Render(fmt.Sprintf("↑/↓ scroll • %s %s • %s %s • %s %s • %3.f%%",
		m.keys.Top.Help().Key, m.keys.Top.Help().Desc,
		m.keys.Bottom.Help().Key, m.keys.Bottom.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc,
		m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), help)
}

// Run starts the preview on the alternate screen and blocks until it quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("error running preview: %v", err)
	}
	return nil
}
