package state

import (
	"github.com/mna/glance/internal/pager/keymap"
	"github.com/mna/glance/internal/pager/search"
)

// HandleKey is the single entry point for a decoded key event. When Mode is
// not NormalMode, only the mode-specific handler runs and keymap lookup is
// skipped entirely, per the resolver's mode-gated contract.
func (s *AppState) HandleKey(spec keymap.Spec) {
	switch m := s.Mode.(type) {
	case NormalMode:
		s.handleNormalKey(spec)
	case SearchInputMode:
		s.handleSearchInput(m, spec)
	case CommandInputMode:
		s.handleCommandInput(m, spec)
	case FilterInputMode:
		s.handleFilterInput(m, spec)
	case FollowMode:
		s.handleFollowKey(spec)
	case VisualMode:
		s.handleVisualKey(m, spec)
	}
}

func (s *AppState) handleNormalKey(spec keymap.Spec) {
	if s.PendingKey != keymap.ActionNone {
		s.completePendingKey(spec)
		return
	}

	if action, ok := s.Keymap.IsPendingPrefix(spec); ok {
		s.PendingKey = action
		return
	}

	action, ok := s.Keymap.Resolve(spec)
	if !ok {
		return
	}
	s.ApplyAction(action)
}

// ApplyAction executes one resolved Normal-mode action.
func (s *AppState) ApplyAction(action keymap.Action) {
	switch action {
	case keymap.Quit:
		s.Quit = true
	case keymap.ScrollDown:
		s.scrollBy(1)
	case keymap.ScrollUp:
		s.scrollBy(-1)
	case keymap.HalfPageDown:
		s.scrollBy(halfPage(s.VP.ContentHeight))
	case keymap.HalfPageUp:
		s.scrollBy(-halfPage(s.VP.ContentHeight))
	case keymap.FullPageDown:
		s.scrollBy(s.VP.ContentHeight)
	case keymap.FullPageUp:
		s.scrollBy(-s.VP.ContentHeight)
	case keymap.GotoTop:
		s.gotoTop()
	case keymap.GotoBottom:
		s.gotoBottom()
	case keymap.ScrollRight:
		s.scrollHorizontalBy(1)
	case keymap.ScrollLeft:
		s.scrollHorizontalBy(-1)
	case keymap.ToggleLineNumbers:
		s.VP.ShowLineNumbers = !s.VP.ShowLineNumbers
	case keymap.ToggleWrap:
		s.VP.WrapLines = !s.VP.WrapLines
	case keymap.EnterSearchForward:
		s.Mode = SearchInputMode{Forward: true}
	case keymap.EnterSearchBackward:
		s.Mode = SearchInputMode{Forward: false}
	case keymap.NextMatch:
		s.gotoMatch(s.SearchEngine.NextMatch())
	case keymap.PrevMatch:
		s.gotoMatch(s.SearchEngine.PrevMatch())
	case keymap.EnterCommand:
		s.Mode = CommandInputMode{}
	case keymap.EnterFilter:
		s.Mode = FilterInputMode{}
	case keymap.EnterVisual:
		s.Mode = VisualMode{Anchor: s.VP.TopLine, Cursor: s.VP.TopLine}
	case keymap.EnterFollow:
		s.Mode = FollowMode{}
		s.gotoBottom()
	case keymap.PrevBuffer:
		s.switchBuffer(-1)
	case keymap.NextBuffer:
		s.switchBuffer(1)
	}
}

func halfPage(h int) int {
	n := h / 2
	if n < 1 {
		n = 1
	}
	return n
}

func (s *AppState) switchBuffer(delta int) {
	n := len(s.Documents)
	if n == 0 {
		return
	}
	s.Active = ((s.Active+delta)%n + n) % n
	s.Filter = nil
	s.VP.TopLine = 0
	s.VP.LeftCol = 0
	s.clampScroll()
}

func (s *AppState) gotoMatch(m search.Match, ok bool) {
	if !ok {
		return
	}
	s.centerOn(m.Line)
}

func (s *AppState) centerOn(line int) {
	half := s.VP.ContentHeight / 2
	top := line - half
	if top < 0 {
		top = 0
	}
	s.VP.TopLine = top
	s.clampScroll()
}
