package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termgrid/internal/textwidth"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		if m.err != nil {
			return m.renderError()
		}
		return m.styles.Muted.Render("Reading directory...")
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if m.err != nil {
		// A later listing failed; keep showing the previous one
		sections = append(sections, m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	sections = append(sections, m.renderGrid())
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.showRecent {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderRecent(), "  ", content)
	}
	return content
}

// renderHeader renders the current path and entry count
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("columnate")
	path := m.styles.Path.Render(m.path)
	count := m.styles.Muted.Render(fmt.Sprintf("%d entries", len(m.entries)))
	layout := m.styles.Muted.Render(m.direction.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", path, "  ", count, "  ", layout) + "\n"
}

// renderGrid renders the entries in the computed arrangement, walking
// the same positions the plain renderer would and styling each cell
func (m Model) renderGrid() string {
	if len(m.names) == 0 {
		return m.styles.Muted.Render("(empty directory)")
	}
	if m.grid == nil {
		return ""
	}

	widths := m.grid.ColumnWidths()
	var b strings.Builder
	for row := 0; row < m.grid.RowCount(); row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < len(widths); col++ {
			idx := m.grid.IndexAt(row, col)
			if idx < 0 {
				break
			}
			b.WriteString(m.renderCell(idx, widths[col]))
			if m.grid.IndexAt(row, col+1) >= 0 {
				b.WriteString(strings.Repeat(" ", cellGap))
			}
		}
	}
	return b.String()
}

// renderCell renders one entry padded to its column width
func (m Model) renderCell(idx, colWidth int) string {
	name := textwidth.PadRight(m.names[idx], colWidth)
	switch {
	case idx == m.cursor:
		return m.styles.Selected.Render(name)
	case m.entries[idx].IsDir:
		return m.styles.Dir.Render(name)
	default:
		return m.styles.File.Render(name)
	}
}

// renderFooter renders the help line
func (m Model) renderFooter() string {
	help := "arrows/hjkl: move | enter: open | backspace: up | d: direction | .: hidden | q: quit"
	if m.db != nil {
		help = "arrows/hjkl: move | enter: open | backspace: up | d: direction | .: hidden | r: recent | q: quit"
	}

	footer := m.styles.Muted.Render(help)
	if m.oneColumn {
		note := m.styles.Muted.Render("width too narrow for a grid, showing one column")
		footer = note + "\n" + footer
	}
	return "\n" + footer
}

// renderError renders the startup failure screen
func (m Model) renderError() string {
	errorText := m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	helpText := m.styles.Muted.Render("q: quit")
	return errorText + "\n\n" + helpText
}

// renderRecent renders the visited-directories panel
func (m Model) renderRecent() string {
	header := m.styles.RecentHeader.Render("Recent")
	lines := []string{header, ""}

	if len(m.recent) == 0 {
		lines = append(lines, m.styles.RecentCount.Render("(no visits yet)"))
	}
	for _, rec := range m.recent {
		count := m.styles.RecentCount.Render(fmt.Sprintf("%3d", rec.Visits))
		dir := m.styles.RecentItem.Render(truncatePath(rec.Dir, recentPanelWidth-10))
		lines = append(lines, count+" "+dir)
	}

	return m.styles.RecentBorder.Render(strings.Join(lines, "\n"))
}

// truncatePath shortens a path from the left so its tail stays visible
func truncatePath(path string, width int) string {
	if textwidth.StringWidth(path) <= width {
		return path
	}

	runes := []rune(path)
	for len(runes) > 1 {
		runes = runes[1:]
		if textwidth.StringWidth(string(runes))+2 <= width {
			return ".." + string(runes)
		}
	}
	return ".."
}
