package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mna/glance/internal/pager/highlight"
	"github.com/mna/glance/internal/pager/state"
)

// drawStatusBar renders the bottom-but-one row: document label, position,
// and search progress/count when a search is active or has run.
func drawStatusBar(s *Screen, y, width int, st *state.AppState, theme highlight.Theme) {
	style := tcell.StyleDefault.Foreground(tcellColor(theme.StatusBarFg)).Background(tcellColor(theme.StatusBarBg))
	for x := 0; x < width; x++ {
		s.SetCell(x, y, ' ', style)
	}

	doc := st.ActiveDocument()
	left := tabLabel(doc)
	if doc.IsBinary() {
		left += " [binary]"
	} else if doc.IsDiff() {
		left += " [diff]"
	}

	right := statusRight(st)

	drawText(s, 1, y, style, left)
	if x := width - len(right) - 1; x > len(left)+2 {
		drawText(s, x, y, style, right)
	}
}

func statusRight(st *state.AppState) string {
	eng := st.SearchEngine
	if eng.Scanning {
		return fmt.Sprintf("searching… %d matches", len(eng.Matches))
	}
	if len(eng.Matches) > 0 {
		return fmt.Sprintf("match %d/%d", eng.Current+1, len(eng.Matches))
	}
	total := st.ActiveDocument().DisplayLineCount()
	if total == 0 {
		return "0/0"
	}
	pct := (st.VP.TopLine + st.VP.ContentHeight) * 100 / total
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("%d%%", pct)
}

// drawInputBar renders the bottom row: the live command/search/filter
// buffer while one of those modes is active, else the last status message.
func drawInputBar(s *Screen, y, width int, st *state.AppState, theme highlight.Theme) {
	style := tcell.StyleDefault
	for x := 0; x < width; x++ {
		s.SetCell(x, y, ' ', style)
	}

	var text string
	switch m := st.Mode.(type) {
	case state.SearchInputMode:
		prefix := "/"
		if !m.Forward {
			prefix = "?"
		}
		text = prefix + m.Buffer
	case state.CommandInputMode:
		text = ":" + m.Buffer
	case state.FilterInputMode:
		text = "filter: " + m.Buffer
	default:
		text = st.StatusMessage
	}
	drawText(s, 0, y, style, text)
}

func drawText(s *Screen, x, y int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		s.SetCell(x+col, y, r, style)
		col++
	}
}
