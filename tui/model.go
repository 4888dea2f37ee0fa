package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termgrid"
	"github.com/young1lin/termgrid/internal/config"
	"github.com/young1lin/termgrid/internal/dirlist"
	"github.com/young1lin/termgrid/internal/store"
)

const (
	// cellGap is the separator width between grid columns
	cellGap = 2
	// recentLimit is how many visited directories the panel shows
	recentLimit = 10
	// recentPanelWidth is the width reserved for the recent panel
	recentPanelWidth = 32
)

// Model represents the browser state
type Model struct {
	// Where we are
	path    string
	entries []dirlist.Entry
	names   []string

	// Grid layout
	grid      *termgrid.Grid
	direction termgrid.Direction
	width     int
	oneColumn bool

	// Selection
	cursor int

	// Listing options
	showHidden bool
	classify   bool
	dirsFirst  bool

	// Recent panel
	db         *store.DB
	recent     []store.VisitRecord
	showRecent bool

	// State
	ready    bool
	quitting bool
	err      error

	fs dirlist.FileSystem

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Title    lipgloss.Style
	Path     lipgloss.Style
	Dir      lipgloss.Style
	File     lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style

	// Recent panel styles
	RecentBorder lipgloss.Style
	RecentHeader lipgloss.Style
	RecentItem   lipgloss.Style
	RecentCount  lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Path = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.Dir = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75"))

	styles.File = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(primaryColor)

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Recent panel styles
	styles.RecentBorder = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(secondaryColor).
		Width(recentPanelWidth - 2).
		Padding(0, 1)

	styles.RecentHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.RecentItem = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.RecentCount = lipgloss.NewStyle().
		Foreground(lipgloss.Color("242"))

	return styles
}

// NewModel creates a browser rooted at path. db may be nil, in which
// case the recent panel is unavailable.
func NewModel(path string, cfg *config.Config, db *store.DB) Model {
	return Model{
		path:       path,
		direction:  cfg.Direction(),
		width:      80,
		showHidden: cfg.Listing.ShowHidden,
		classify:   cfg.Listing.Classify,
		dirsFirst:  cfg.Listing.DirsFirst,
		db:         db,
		fs:         dirlist.OSFileSystem{},
		styles:     DefaultStyles(),
	}
}

// Init loads the starting directory
func (m Model) Init() tea.Cmd {
	return m.loadDirCmd(m.path)
}

// refit lays the current entries out again for the current width and
// direction. When the widest name alone exceeds the width the browser
// falls back to a single column instead of failing.
func (m *Model) refit() {
	m.names = dirlist.Names(m.entries, m.classify)

	grid := termgrid.NewEmpty(m.direction, termgrid.Spaces(cellGap))
	for _, name := range m.names {
		grid.Add(termgrid.NewCell(name))
	}

	m.oneColumn = false
	if err := grid.FitIntoWidth(m.gridWidth()); err != nil {
		grid.FitIntoColumns(1)
		m.oneColumn = true
	}
	m.grid = grid

	if m.cursor >= len(m.names) {
		m.cursor = len(m.names) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// gridWidth is the width left for the listing once the recent panel has
// taken its share
func (m Model) gridWidth() int {
	width := m.width
	if m.showRecent {
		width -= recentPanelWidth + 2
	}
	if width < 1 {
		width = 1
	}
	return width
}
