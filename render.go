package termgrid

import (
	"io"
	"strings"
)

// String renders the computed arrangement as newline-terminated rows. A
// grid with no cells, or one that has not been fitted yet, renders as the
// empty string with no terminator.
func (g *Grid) String() string {
	var b strings.Builder
	g.render(&b)
	return b.String()
}

// WriteTo renders the grid to w. It implements io.WriterTo.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

func (g *Grid) render(b *strings.Builder) {
	if g.dims == nil || g.dims.numLines == 0 {
		return
	}
	numColumns := len(g.dims.widths)
	for row := 0; row < g.dims.numLines; row++ {
		cursor := 0
		for col := 0; col < numColumns; col++ {
			idx := g.IndexAt(row, col)
			if idx < 0 {
				break
			}
			cell := g.cells[idx]
			padding := g.dims.widths[col] - cell.Width
			if padding < 0 {
				// Caller-supplied widths are authoritative, so a cell
				// edited after fitting can overflow its column.
				padding = 0
			}
			last := g.IndexAt(row, col+1) < 0
			switch {
			case cell.Alignment == AlignRight:
				writeSpaces(b, padding)
				b.WriteString(cell.Contents)
				cursor += padding + cell.Width
				if !last {
					cursor = g.options.Filling.emit(b, cursor, 0)
				}
			case last:
				// The row's final cell carries no trailing padding.
				b.WriteString(cell.Contents)
			default:
				b.WriteString(cell.Contents)
				cursor += cell.Width
				cursor = g.options.Filling.emit(b, cursor, padding)
			}
		}
		b.WriteByte('\n')
	}
}
