package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mna/glance/internal/pager/document"
	"github.com/mna/glance/internal/pager/highlight"
	"github.com/mna/glance/internal/pager/overlay"
	"github.com/mna/glance/internal/pager/search"
	"github.com/mna/glance/internal/pager/state"
	"github.com/mna/glance/internal/width"
)

// drawContent fills the content rows [y0, y0+height) with the active
// document's lines starting at the current scroll position, dispatching to
// the binary/hex, diff, or ordinary text rendering path.
func drawContent(s *Screen, x0, y0, width, height int, st *state.AppState, theme highlight.Theme) {
	doc := st.ActiveDocument()
	gw := gutterWidth(st.VP.ShowLineNumbers, doc.DisplayLineCount())
	contentX := x0 + gw
	contentWidth := width - gw
	if contentWidth < 0 {
		contentWidth = 0
	}

	top := st.VP.TopLine
	if st.Filter != nil {
		top = st.Filter.TopFilterIdx
	}

	// One lexer per frame, fed lines top-to-bottom in window order, so
	// cross-line state (an unterminated block comment) carries correctly
	// across the whole visible window instead of resetting every row. State
	// is still lost above the window's first line, the one tradeoff the
	// stateful design accepts.
	var lexer *highlight.Lexer
	if !doc.IsBinary() && !doc.IsDiff() {
		syntax := st.Highlighter.DetectSyntax(doc.Path())
		lexer = st.Highlighter.NewLineLexer(syntax)
	}

	for row := 0; row < height; row++ {
		y := y0 + row
		displayLine := top + row
		lineNo := displayLine
		if st.Filter != nil {
			if displayLine >= len(st.Filter.Lines) {
				clearRow(s, x0, y, width)
				continue
			}
			lineNo = st.Filter.Lines[displayLine]
		}

		switch {
		case doc.IsBinary():
			drawHexRow(s, contentX, y, contentWidth, doc, lineNo, theme)
		case doc.IsDiff():
			drawDiffRow(s, contentX, y, contentWidth, st, doc, lineNo, theme)
		default:
			drawTextRow(s, contentX, y, contentWidth, st, doc, lineNo, lexer, theme)
		}

		if gw > 0 {
			if lineNo >= 0 && lineNo < doc.DisplayLineCount() {
				drawGutter(s, x0, y, gw, lineNo, doc.Changes(), theme)
			} else {
				clearRow(s, x0, y, gw)
			}
		}
	}
}

func clearRow(s *Screen, x, y, width int) {
	for i := 0; i < width; i++ {
		s.SetCell(x+i, y, ' ', tcell.StyleDefault)
	}
}

func drawHexRow(s *Screen, x, y, width int, doc *document.Document, lineNo int, theme highlight.Theme) {
	line, ok := doc.HexLine(lineNo)
	if !ok {
		clearRow(s, x, y, width)
		return
	}
	style := tcell.StyleDefault.Foreground(tcellColor(theme.Foreground[highlight.Plain]))
	drawClipped(s, x, y, width, style, line)
}

// drawDiffRow renders one rendered diff-text line, coloring whole lines by
// their leading +/-/@@ marker rather than running the syntax lexer: a diff
// document's "syntax" is the patch format itself.
func drawDiffRow(s *Screen, x, y, width int, st *state.AppState, doc *document.Document, lineNo int, theme highlight.Theme) {
	line, ok := doc.GetLine(lineNo)
	if !ok {
		clearRow(s, x, y, width)
		return
	}
	var color tcell.Color
	switch {
	case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
		color = tcell.ColorWhite
	case strings.HasPrefix(line, "@@"):
		color = tcell.ColorTeal
	case strings.HasPrefix(line, "+"):
		color = tcell.ColorGreen
	case strings.HasPrefix(line, "-"):
		color = tcell.ColorRed
	default:
		color = tcellColor(theme.Foreground[highlight.Plain])
	}
	drawClipped(s, x, y, width, tcell.StyleDefault.Foreground(color), line)
}

func drawTextRow(s *Screen, x, y, rowWidth int, st *state.AppState, doc *document.Document, lineNo int, lexer *highlight.Lexer, theme highlight.Theme) {
	line, ok := doc.GetLine(lineNo)
	if !ok {
		clearRow(s, x, y, rowWidth)
		return
	}

	spans := st.Highlighter.Highlight(lexer, line)

	ranges := overlayRangesFor(st, lineNo, len(line))
	spans2 := overlay.Compose(line, spans, ranges)

	col := x
	limit := x + rowWidth
	var ruler width.Ruler
	skipCols := st.VP.LeftCol
	tabstop := st.Config.TabWidth
	if tabstop <= 0 {
		tabstop = 4
	}

	for _, sp := range spans2 {
		text := line[sp.Start:sp.End]
		style := tcell.StyleDefault.Foreground(tcellColor(st.Highlighter.ColorFor(sp.Syntax)))
		if sp.Overlay != overlay.None {
			style = overlayStyle(theme, sp.Overlay)
		}
		col = drawRunWithOffset(s, col, y, limit, &ruler, &skipCols, tabstop, style, text)
	}
	for ; col < limit; col++ {
		s.SetCell(col, y, ' ', tcell.StyleDefault)
	}
}

// drawRunWithOffset draws text starting at screen column col, expanding
// tabs to the next tabstop-aligned column and honoring double-width
// runes via ruler, skipping the leading *skipCols display columns to
// implement horizontal scroll. It stops once col reaches limit.
func drawRunWithOffset(s *Screen, col, y, limit int, ruler *width.Ruler, skipCols *int, tabstop int, style tcell.Style, text string) int {
	for _, r := range text {
		before := ruler.Width()
		after := ruler.Measure(r)
		if r == '\t' {
			after = before + tabstop - before%tabstop
		}
		cellWidth := after - before
		if cellWidth < 1 {
			cellWidth = 1
		}

		for i := 0; i < cellWidth; i++ {
			if *skipCols > 0 {
				*skipCols--
				continue
			}
			if col >= limit {
				return col
			}
			ch := r
			if i > 0 || r == '\t' {
				ch = ' '
			}
			s.SetCell(col, y, ch, style)
			col++
		}
	}
	return col
}

func drawClipped(s *Screen, x, y, width int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= width {
			break
		}
		s.SetCell(x+col, y, r, style)
		col++
	}
	for ; col < width; col++ {
		s.SetCell(x+col, y, ' ', style)
	}
}

func overlayStyle(theme highlight.Theme, k overlay.Kind) tcell.Style {
	switch k {
	case overlay.Selection:
		return tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcellColor(theme.Foreground[highlight.Plain]))
	case overlay.CommittedMatch:
		return tcell.StyleDefault.Background(tcellColor(theme.SearchMatchBg)).Foreground(tcellColor(theme.SearchMatchFg))
	case overlay.PreviewMatch:
		return tcell.StyleDefault.Background(tcellColor(theme.PreviewMatchBg))
	default:
		return tcell.StyleDefault
	}
}

// overlayRangesFor builds the committed/preview search and visual-selection
// overlay ranges touching lineNo, in ascending priority order (order does
// not matter to Compose, which resolves priority itself).
func overlayRangesFor(st *state.AppState, lineNo, lineLen int) []overlay.Range {
	var ranges []overlay.Range
	for _, m := range st.SearchEngine.Matches {
		if m.Line == lineNo {
			ranges = append(ranges, matchRange(m, overlay.CommittedMatch))
		}
	}
	for _, m := range st.SearchEngine.Preview {
		if m.Line == lineNo {
			ranges = append(ranges, matchRange(m, overlay.PreviewMatch))
		}
	}
	if vm, ok := st.Mode.(state.VisualMode); ok {
		lo, hi := vm.Anchor, vm.Cursor
		if lo > hi {
			lo, hi = hi, lo
		}
		if lineNo >= lo && lineNo <= hi {
			ranges = append(ranges, overlay.Range{Start: 0, End: lineLen, Kind: overlay.Selection})
		}
	}
	return ranges
}

func matchRange(m search.Match, kind overlay.Kind) overlay.Range {
	return overlay.Range{Start: m.Start, End: m.End, Kind: kind}
}
