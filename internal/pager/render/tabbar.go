package render

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mna/glance/internal/pager/document"
	"github.com/mna/glance/internal/pager/highlight"
)

// tabLabel returns the short display name for a document's tab: the base
// name of its path, or "(stdin)" for a document with no backing path.
func tabLabel(d *document.Document) string {
	if d.Path() == "" {
		return "(stdin)"
	}
	return filepath.Base(d.Path())
}

// drawTabBar renders the multi-document chrome across row y, active tab
// highlighted, left-truncating with an ellipsis when the labels overflow
// width. A single-document session draws nothing: the tab bar only earns
// its row when there is a choice to show.
func drawTabBar(s *Screen, y, width int, docs []*document.Document, active int, theme highlight.Theme) {
	if len(docs) < 2 {
		return
	}

	normal := tcell.StyleDefault.Foreground(tcellColor(theme.LineNumberFg))
	selected := tcell.StyleDefault.Foreground(tcellColor(theme.StatusBarFg)).Background(tcellColor(theme.StatusBarBg)).Bold(true)

	var cells []struct {
		r     rune
		style tcell.Style
	}
	for i, d := range docs {
		style := normal
		if i == active {
			style = selected
		}
		label := " " + tabLabel(d) + " "
		for _, r := range label {
			cells = append(cells, struct {
				r     rune
				style tcell.Style
			}{r, style})
		}
	}

	if len(cells) > width {
		cells = cells[len(cells)-width+1:]
		cells = append([]struct {
			r     rune
			style tcell.Style
		}{{'…', normal}}, cells...)
	}

	for x := 0; x < width; x++ {
		if x < len(cells) {
			s.SetCell(x, y, cells[x].r, cells[x].style)
		} else {
			s.SetCell(x, y, ' ', normal)
		}
	}
}
