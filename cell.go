package termgrid

import "github.com/young1lin/termgrid/internal/textwidth"

// Alignment selects which side of its column a cell's contents stick to.
type Alignment int

const (
	// AlignLeft pads cells on the right. This is the default.
	AlignLeft Alignment = iota
	// AlignRight pads cells on the left.
	AlignRight
)

// Cell is one entry in the grid.
type Cell struct {
	// Contents is the text to display.
	Contents string

	// Width is the display width of Contents in terminal cells. It is
	// authoritative: the layout never re-measures Contents, so strings
	// carrying ANSI escapes can be used by supplying their visible width.
	Width int

	// Alignment selects the side of the column the contents stick to.
	Alignment Alignment
}

// NewCell measures s and returns a left-aligned cell.
func NewCell(s string) Cell {
	return Cell{Contents: s, Width: textwidth.StringWidth(s)}
}

// Cells builds cells from plain strings, measuring each one.
func Cells(ss ...string) []Cell {
	cells := make([]Cell, len(ss))
	for i, s := range ss {
		cells[i] = NewCell(s)
	}
	return cells
}
