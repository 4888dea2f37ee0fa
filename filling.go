package termgrid

import (
	"strings"

	"github.com/young1lin/termgrid/internal/textwidth"
)

const (
	// DefaultSeparatorSize is the separator width used when a grid is
	// built without an explicit filling.
	DefaultSeparatorSize = 2

	// SpacesInTab is the conventional distance between tab stops.
	SpacesInTab = 8
)

// Filling is the separator emitted between adjacent grid columns.
//
// A filling contributes a fixed width while planning dimensions and an
// emission routine while rendering. The built-in kinds are Spaces, Text
// and Tabs.
type Filling interface {
	// separatorWidth is the planning-time width of one separator.
	separatorWidth() int

	// emit writes a cell's trailing padding followed by one separator,
	// given the display column the cursor sits at, and returns the new
	// cursor position.
	emit(b *strings.Builder, cursor, padding int) int
}

// Spaces separates columns with a fixed run of space characters.
type Spaces int

func (s Spaces) separatorWidth() int { return int(s) }

func (s Spaces) emit(b *strings.Builder, cursor, padding int) int {
	writeSpaces(b, padding+int(s))
	return cursor + padding + int(s)
}

// Text separates columns with a literal string, for example " | ".
type Text string

func (t Text) separatorWidth() int { return textwidth.StringWidth(string(t)) }

func (t Text) emit(b *strings.Builder, cursor, padding int) int {
	writeSpaces(b, padding)
	b.WriteString(string(t))
	return cursor + padding + t.separatorWidth()
}

// Tabs separates columns with tab characters.
//
// Spaces is the visual gap to produce and the width the planner accounts
// for. Rendering emits one tab per tab stop of TabSize cells lying inside
// the gap, then spaces for the remainder, so the emitted bytes vary with
// cursor position while the visual result stays aligned. A TabSize of
// zero or less emits spaces only.
type Tabs struct {
	Spaces  int
	TabSize int
}

func (t Tabs) separatorWidth() int { return t.Spaces }

func (t Tabs) emit(b *strings.Builder, cursor, padding int) int {
	target := cursor + padding + t.Spaces
	if t.TabSize > 0 {
		for next := tabStopAfter(cursor, t.TabSize); next <= target; next = tabStopAfter(cursor, t.TabSize) {
			b.WriteByte('\t')
			cursor = next
		}
	}
	writeSpaces(b, target-cursor)
	return target
}

// tabStopAfter returns the first tab stop strictly past column c.
func tabStopAfter(c, tabSize int) int {
	return (c/tabSize + 1) * tabSize
}

func writeSpaces(b *strings.Builder, n int) {
	if n > 0 {
		b.WriteString(strings.Repeat(" ", n))
	}
}
