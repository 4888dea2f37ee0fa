package termgrid

// Direction determines the order cells flow into the grid.
type Direction int

const (
	// LeftToRight fills rows first: consecutive cells are neighbours on
	// the same row, like words in text.
	LeftToRight Direction = iota
	// TopToBottom fills columns first: consecutive cells are stacked in
	// the same column, like ls output.
	TopToBottom
)

func (d Direction) String() string {
	if d == TopToBottom {
		return "top-to-bottom"
	}
	return "left-to-right"
}
