package termgrid

import "sort"

// dimensions is a computed arrangement: a line count plus one width per
// column. The column count is the length of widths.
type dimensions struct {
	numLines int
	widths   []int
}

// totalWidth is the display width of one full line of the arrangement,
// separators included.
func (d dimensions) totalWidth(separatorWidth int) int {
	total := 0
	for _, w := range d.widths {
		total += w
	}
	if n := len(d.widths); n > 1 {
		total += separatorWidth * (n - 1)
	}
	return total
}

// columnWidths computes per-column widths for the cells laid out over
// numLines lines and numColumns columns in the grid's direction. Each
// column is as wide as the widest cell mapped to it.
func (g *Grid) columnWidths(numLines, numColumns int) dimensions {
	widths := make([]int, numColumns)
	for i, cell := range g.cells {
		var col int
		if g.options.Direction == TopToBottom {
			col = i / numLines
		} else {
			col = i % numColumns
		}
		if cell.Width > widths[col] {
			widths[col] = cell.Width
		}
	}
	return dimensions{numLines: numLines, widths: widths}
}

// theoreticalMaxNumLines is an upper bound on the line count the optimal
// arrangement can need. It packs the widest cells side by side until the
// budget runs out: if k cells fit on one line that way, some arrangement
// with ceil(N/k) lines fits too, so nothing beyond that is worth trying.
// The caller has already checked that the widest cell fits on its own.
func (g *Grid) theoreticalMaxNumLines(maxWidth int) int {
	sepWidth := g.options.Filling.separatorWidth()

	widths := make([]int, len(g.cells))
	for i, cell := range g.cells {
		widths[i] = cell.Width
	}
	sort.Sort(sort.Reverse(sort.IntSlice(widths)))

	numCols := 0
	rowWidth := 0
	for _, w := range widths {
		if rowWidth+w > maxWidth {
			return divCeil(len(g.cells), numCols)
		}
		numCols++
		rowWidth += w + sepWidth
	}
	return 1
}

// widthDimensions finds the arrangement with the fewest lines whose total
// width fits within maxWidth. It reports false when the widest cell alone
// exceeds the budget, the one case no arrangement can satisfy.
func (g *Grid) widthDimensions(maxWidth int) (dimensions, bool) {
	if len(g.cells) == 0 {
		return dimensions{numLines: 0}, true
	}
	if g.widestCellWidth > maxWidth {
		return dimensions{}, false
	}
	if len(g.cells) == 1 {
		return dimensions{numLines: 1, widths: []int{g.cells[0].Width}}, true
	}

	sepWidth := g.options.Filling.separatorWidth()

	maxNumLines := g.theoreticalMaxNumLines(maxWidth)
	if maxNumLines == 1 {
		return g.columnWidths(1, len(g.cells)), true
	}

	// Line counts are tried smallest first, so the first fit is the
	// optimum. Fitting is not monotonic in the line count: a wide cell
	// can land in a shared column at one count and alone at another, so
	// a failed candidate says nothing about the ones after it.
	for numLines := 1; numLines < maxNumLines; numLines++ {
		numColumns := divCeil(len(g.cells), numLines)
		if sepWidth*(numColumns-1) > maxWidth {
			// The separators alone overflow the budget.
			continue
		}
		dims := g.columnWidths(numLines, numColumns)
		if dims.totalWidth(sepWidth) <= maxWidth {
			return dims, true
		}
	}
	return g.columnWidths(maxNumLines, divCeil(len(g.cells), maxNumLines)), true
}

func divCeil(a, b int) int {
	n := a / b
	if a%b != 0 {
		n++
	}
	return n
}
