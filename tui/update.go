package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/termgrid"
	"github.com/young1lin/termgrid/internal/dirlist"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.refit()
		return m, nil

	case DirLoadedMsg:
		m.path = msg.Path
		m.entries = msg.Entries
		m.cursor = 0
		m.ready = true
		m.err = nil
		m.refit()
		return m, m.visitCmd(msg.Path)

	case DirErrorMsg:
		m.err = msg.Err
		return m, nil

	case RecentLoadedMsg:
		m.recent = msg.Records
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1, 0)
		return m, nil

	case "down", "j":
		m.moveCursor(1, 0)
		return m, nil

	case "left", "h":
		m.moveCursor(0, -1)
		return m, nil

	case "right", "l":
		m.moveCursor(0, 1)
		return m, nil

	case "enter":
		if entry, ok := m.selectedEntry(); ok && entry.IsDir {
			return m, m.loadDirCmd(filepath.Join(m.path, entry.Name))
		}
		return m, nil

	case "backspace":
		parent := filepath.Dir(m.path)
		if parent != m.path {
			return m, m.loadDirCmd(parent)
		}
		return m, nil

	case "d":
		if m.direction == termgrid.TopToBottom {
			m.direction = termgrid.LeftToRight
		} else {
			m.direction = termgrid.TopToBottom
		}
		m.refit()
		return m, nil

	case ".":
		m.showHidden = !m.showHidden
		return m, m.loadDirCmd(m.path)

	case "r":
		if m.db != nil {
			m.showRecent = !m.showRecent
			m.refit()
		}
		return m, nil
	}

	return m, nil
}

// moveCursor moves the selection by whole grid positions, using the
// same row and column mapping the renderer uses. Moves that would land
// outside the arrangement are ignored.
func (m *Model) moveCursor(dRow, dCol int) {
	if m.grid == nil || len(m.entries) == 0 {
		return
	}
	row, col := m.grid.PositionOf(m.cursor)
	if idx := m.grid.IndexAt(row+dRow, col+dCol); idx >= 0 {
		m.cursor = idx
	}
}

// selectedEntry returns the entry under the cursor
func (m Model) selectedEntry() (dirlist.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return dirlist.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// loadDirCmd reads a directory in the background
func (m Model) loadDirCmd(path string) tea.Cmd {
	fsys := m.fs
	opts := dirlist.Options{
		ShowHidden: m.showHidden,
		Classify:   m.classify,
		DirsFirst:  m.dirsFirst,
	}
	return func() tea.Msg {
		entries, err := dirlist.List(fsys, path, opts)
		if err != nil {
			return DirErrorMsg{Path: path, Err: err}
		}
		return DirLoadedMsg{Path: path, Entries: entries}
	}
}

// visitCmd records the visit and refreshes the recent panel. Store
// failures never interrupt browsing.
func (m Model) visitCmd(path string) tea.Cmd {
	db := m.db
	if db == nil {
		return nil
	}
	return func() tea.Msg {
		_ = db.RecordVisit(path)
		records, err := db.TopDirs(recentLimit)
		if err != nil {
			return nil
		}
		return RecentLoadedMsg{Records: records}
	}
}
