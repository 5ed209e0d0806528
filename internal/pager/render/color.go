package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mna/glance/internal/pager/highlight"
)

func tcellColor(c highlight.Color) tcell.Color {
	if c == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c))
}

func styleFor(theme highlight.Theme, syntax highlight.TokenKind) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(theme.Foreground[syntax]))
}
