// Package textwidth measures the terminal display width of plain text.
//
// Width is counted in character cells, not bytes or runes. East Asian wide
// characters occupy two cells, combining marks occupy none, and multi-rune
// grapheme clusters (emoji ZWJ sequences, flags, skin tones) occupy the
// width of a single glyph.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StringWidth returns the number of terminal cells needed to print s.
// The string is split into grapheme clusters and each cluster contributes
// the width of its first non-zero-width rune, so a ZWJ emoji sequence
// counts as one glyph rather than the sum of its parts.
func StringWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		var cw int
		for _, r := range g.Runes() {
			cw = runewidth.RuneWidth(r)
			if cw > 0 {
				break
			}
		}
		width += cw
	}
	return width
}

// PadRight pads s with spaces on the right up to width cells.
// Strings already at or past width are returned unchanged.
func PadRight(s string, width int) string {
	current := StringWidth(s)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}
