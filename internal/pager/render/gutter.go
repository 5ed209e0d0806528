package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mna/glance/internal/pager/document"
	"github.com/mna/glance/internal/pager/gitstat"
	"github.com/mna/glance/internal/pager/highlight"
)

// gutterWidth returns the column width of the line-number gutter for a
// document with lineCount lines, or 0 when line numbers are off: one
// change-glyph column, the digit count of the largest line number, and one
// trailing space.
func gutterWidth(showLineNumbers bool, lineCount int) int {
	if !showLineNumbers {
		return 0
	}
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	return digits + 2
}

// changeGlyph returns the single-character git-status marker drawn in the
// leftmost gutter column, and the theme color it should use.
func changeGlyph(kind document.ChangeMap, line int, theme highlight.Theme) (rune, tcell.Color) {
	switch kind[line] {
	case gitstat.Added:
		return '+', tcell.ColorGreen
	case gitstat.Modified:
		return '~', tcell.ColorYellow
	case gitstat.DeletedBefore:
		return '-', tcell.ColorRed
	default:
		return ' ', tcell.ColorDefault
	}
}

// drawGutter renders the change-glyph column plus the right-aligned line
// number for display line i (0-based) at screen row y, starting at column
// x. It returns the number of columns consumed.
func drawGutter(s *Screen, x, y, width int, lineNo int, changes document.ChangeMap, theme highlight.Theme) int {
	if width == 0 {
		return 0
	}
	glyph, color := changeGlyph(changes, lineNo, theme)
	s.SetCell(x, y, glyph, tcell.StyleDefault.Foreground(color))

	numWidth := width - 2
	text := fmt.Sprintf("%*d", numWidth, lineNo+1)
	style := tcell.StyleDefault.Foreground(tcellColor(theme.LineNumberFg))
	for i, r := range []rune(text) {
		s.SetCell(x+1+i, y, r, style)
	}
	return width
}
