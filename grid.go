// Package termgrid arranges text cells into a grid of columns sized to
// fit a maximum display width, the way ls lays out file names.
//
// A Grid takes cells with known display widths, a flow direction and a
// column separator, and finds the arrangement with the fewest rows whose
// total width fits the budget. Rendering walks that arrangement and emits
// padded, separator-joined, newline-terminated rows. Layout cannot succeed
// when a single cell is wider than the budget; that one case is reported
// as ErrDoesNotFit and the fallback choice is left to the caller.
package termgrid

import (
	"errors"
	"fmt"
)

// ErrDoesNotFit reports that the widest cell exceeds the maximum width, so
// no arrangement can fit it. Callers wanting ls-style degradation can fall
// back to FitIntoColumns(1).
var ErrDoesNotFit = errors.New("does not fit")

// GridOptions configures a grid built with New.
type GridOptions struct {
	// Direction is the order cells flow into the grid.
	Direction Direction

	// Filling separates adjacent columns. A nil Filling means
	// Spaces(DefaultSeparatorSize).
	Filling Filling

	// Width is the maximum display width the arrangement may use.
	Width int
}

// Grid arranges cells into columns.
//
// Build one eagerly with New, or start empty with NewEmpty, Add cells and
// fit afterwards. After a successful fit the grid is safe for concurrent
// reads; Add invalidates the fit and is not safe to race with readers.
type Grid struct {
	options         GridOptions
	cells           []Cell
	widestCellWidth int
	dims            *dimensions
}

// New arranges cells within opts.Width and returns the fitted grid. It
// returns ErrDoesNotFit when the widest cell exceeds opts.Width.
func New(cells []Cell, opts GridOptions) (*Grid, error) {
	g := NewEmpty(opts.Direction, opts.Filling)
	g.options.Width = opts.Width
	g.cells = make([]Cell, 0, len(cells))
	for _, cell := range cells {
		g.Add(cell)
	}
	if err := g.FitIntoWidth(opts.Width); err != nil {
		return nil, err
	}
	return g, nil
}

// NewEmpty returns a grid with no cells for incremental use. Add cells,
// then call FitIntoWidth or FitIntoColumns to compute an arrangement.
func NewEmpty(direction Direction, filling Filling) *Grid {
	if filling == nil {
		filling = Spaces(DefaultSeparatorSize)
	}
	return &Grid{options: GridOptions{Direction: direction, Filling: filling}}
}

// Add appends one cell, dropping any previously computed arrangement.
func (g *Grid) Add(cell Cell) {
	g.cells = append(g.cells, cell)
	if cell.Width > g.widestCellWidth {
		g.widestCellWidth = cell.Width
	}
	g.dims = nil
}

// Len returns the number of cells added so far.
func (g *Grid) Len() int { return len(g.cells) }

// FitIntoWidth computes the arrangement with the fewest rows fitting
// within maxWidth. It returns ErrDoesNotFit when the widest cell alone
// exceeds maxWidth, leaving any previous arrangement in place.
func (g *Grid) FitIntoWidth(maxWidth int) error {
	dims, ok := g.widthDimensions(maxWidth)
	if !ok {
		widest := g.widestCell()
		return fmt.Errorf("cell %q is %d cells wide, more than the maximum width %d: %w",
			widest.Contents, widest.Width, maxWidth, ErrDoesNotFit)
	}
	g.dims = &dims
	return nil
}

// FitIntoColumns arranges the cells into exactly numColumns columns with
// no width constraint. Column counts below one are treated as one. Unlike
// FitIntoWidth it cannot fail, which makes FitIntoColumns(1) the usual
// fallback when a width fit reports ErrDoesNotFit.
func (g *Grid) FitIntoColumns(numColumns int) {
	if numColumns < 1 {
		numColumns = 1
	}
	if len(g.cells) == 0 {
		g.dims = &dimensions{numLines: 0}
		return
	}
	dims := g.columnWidths(divCeil(len(g.cells), numColumns), numColumns)
	g.dims = &dims
}

// RowCount returns the number of rows in the computed arrangement. It is
// zero before any fit and for a grid with no cells.
func (g *Grid) RowCount() int {
	if g.dims == nil {
		return 0
	}
	return g.dims.numLines
}

// ColumnWidths returns a copy of the computed column widths.
func (g *Grid) ColumnWidths() []int {
	if g.dims == nil || len(g.dims.widths) == 0 {
		return nil
	}
	widths := make([]int, len(g.dims.widths))
	copy(widths, g.dims.widths)
	return widths
}

// Width returns the total display width of the computed arrangement,
// separators included, or zero before any fit.
func (g *Grid) Width() int {
	if g.dims == nil {
		return 0
	}
	return g.dims.totalWidth(g.options.Filling.separatorWidth())
}

// Complete reports whether every column of the computed arrangement holds
// at least one cell. Arrangements from FitIntoWidth are always complete;
// FitIntoColumns can allot more columns than the cells reach.
func (g *Grid) Complete() bool {
	if g.dims == nil {
		return false
	}
	numColumns := len(g.dims.widths)
	return numColumns == 0 || g.usedColumns() == numColumns
}

// IndexAt returns the index of the cell shown at row and col of the
// computed arrangement, or -1 when that position holds no cell.
func (g *Grid) IndexAt(row, col int) int {
	if g.dims == nil || row < 0 || col < 0 || row >= g.dims.numLines || col >= len(g.dims.widths) {
		return -1
	}
	var idx int
	if g.options.Direction == TopToBottom {
		idx = col*g.dims.numLines + row
	} else {
		idx = row*len(g.dims.widths) + col
	}
	if idx >= len(g.cells) {
		return -1
	}
	return idx
}

// PositionOf returns the row and column where cell i appears in the
// computed arrangement. It is the inverse of IndexAt for valid indices.
func (g *Grid) PositionOf(i int) (row, col int) {
	if g.dims == nil || g.dims.numLines == 0 || i < 0 || i >= len(g.cells) {
		return 0, 0
	}
	if g.options.Direction == TopToBottom {
		return i % g.dims.numLines, i / g.dims.numLines
	}
	numColumns := len(g.dims.widths)
	return i / numColumns, i % numColumns
}

func (g *Grid) usedColumns() int {
	numColumns := len(g.dims.widths)
	if len(g.cells) == 0 || numColumns == 0 {
		return 0
	}
	if g.options.Direction == TopToBottom {
		used := divCeil(len(g.cells), g.dims.numLines)
		if used > numColumns {
			used = numColumns
		}
		return used
	}
	if len(g.cells) < numColumns {
		return len(g.cells)
	}
	return numColumns
}

func (g *Grid) widestCell() Cell {
	widest := Cell{Width: -1}
	for _, cell := range g.cells {
		if cell.Width > widest.Width {
			widest = cell
		}
	}
	return widest
}
