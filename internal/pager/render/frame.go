package render

import "github.com/mna/glance/internal/pager/state"

// rows reserved below the content region: status bar + input bar.
const chromeRows = 2

// Draw composes one full frame: tab bar (when more than one document is
// open), the content region, the status bar, and the input bar. The caller
// is responsible for Clear/Show around this call and for calling
// st.SetDimensions with the content height this function assumes.
func Draw(s *Screen, st *state.AppState) {
	width, height := s.Size()
	theme := st.Highlighter.Theme()

	y := 0
	if len(st.Documents) > 1 {
		drawTabBar(s, y, width, st.Documents, st.Active, theme)
		y++
	}

	contentHeight := height - y - chromeRows
	if contentHeight < 0 {
		contentHeight = 0
	}
	drawContent(s, 0, y, width, contentHeight, st, theme)
	y += contentHeight

	drawStatusBar(s, y, width, st, theme)
	y++
	drawInputBar(s, y, width, st, theme)
}

// ContentHeight computes the content region's row budget for the given
// terminal height and document count, mirroring Draw's layout math so the
// caller can call st.SetDimensions before the first Draw.
func ContentHeight(termHeight int, multiDoc bool) int {
	h := termHeight - chromeRows
	if multiDoc {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}
