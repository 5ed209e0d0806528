package state

import (
	"fmt"

	"github.com/mna/glance/internal/pager/clip"
	"github.com/mna/glance/internal/pager/keymap"
)

// completePendingKey finishes a two-key Normal-mode sequence (m<c> or
// '<c>) using spec as the mark character.
func (s *AppState) completePendingKey(spec keymap.Spec) {
	pending := s.PendingKey
	s.PendingKey = keymap.ActionNone
	if spec.Rune == 0 {
		return
	}
	switch pending {
	case keymap.BeginSetMark:
		s.Marks[spec.Rune] = s.currentScroll()
	case keymap.BeginJumpMark:
		if top, ok := s.Marks[spec.Rune]; ok {
			s.setScroll(top)
		}
	}
}

func (s *AppState) currentScroll() int {
	if s.Filter != nil {
		return s.Filter.TopFilterIdx
	}
	return s.VP.TopLine
}

func (s *AppState) setScroll(top int) {
	if s.Filter != nil {
		s.Filter.TopFilterIdx = top
	} else {
		s.VP.TopLine = top
	}
	s.clampScroll()
}

// yankVisual joins the lines spanning the visual selection with "\n" and
// hands them to the clipboard collaborator, then returns to Normal mode.
func (s *AppState) yankVisual(m VisualMode) {
	lo, hi := m.Anchor, m.Cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	doc := s.ActiveDocument()
	var joined string
	for i := lo; i <= hi; i++ {
		line, ok := doc.GetLine(i)
		if !ok {
			continue
		}
		if i > lo {
			joined += "\n"
		}
		joined += line
	}
	s.Mode = NormalMode{}
	if err := clip.Copy(joined); err != nil {
		s.StatusMessage = err.Error()
		return
	}
	s.StatusMessage = fmt.Sprintf("Yanked %d lines", hi-lo+1)
}
