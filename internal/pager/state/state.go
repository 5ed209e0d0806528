// Package state implements the viewport and mode state machine: the single
// piece of mutable data the UI goroutine owns, and the operations that
// mutate it in response to key events, search results, and watcher
// notifications.
package state

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mna/glance/internal/pager/config"
	"github.com/mna/glance/internal/pager/document"
	"github.com/mna/glance/internal/pager/glog"
	"github.com/mna/glance/internal/pager/highlight"
	"github.com/mna/glance/internal/pager/keymap"
	"github.com/mna/glance/internal/pager/search"
	"github.com/mna/glance/internal/pager/watch"
)

// Viewport is the scroll and sizing state for the active document.
type Viewport struct {
	TopLine         int
	LeftCol         int
	ContentHeight   int
	ContentWidth    int
	ShowLineNumbers bool
	WrapLines       bool
}

// Filter is the active line filter, if any: Lines holds the sorted
// original-document line indices that matched at apply time.
type Filter struct {
	Query        string
	Lines        []int
	TopFilterIdx int
}

// AppState is the application's entire mutable state.
type AppState struct {
	Documents []*document.Document
	Active    int

	VP Viewport

	Mode Mode

	Marks      map[rune]int
	PendingKey keymap.Action

	Filter *Filter

	SearchEngine *search.Engine
	searchCancel context.CancelFunc
	searchCh     <-chan search.Batch

	Keymap      *keymap.Resolver
	Config      config.Config
	Highlighter *highlight.Highlighter
	Logger      *glog.Logger
	Watcher     *watch.Watcher

	StatusMessage string
	Quit          bool
}

// New builds an AppState with the first document active and every
// transient field at its zero/empty value.
func New(docs []*document.Document, cfg config.Config, km *keymap.Resolver, hl *highlight.Highlighter, logger *glog.Logger) *AppState {
	return &AppState{
		Documents: docs,
		Active:    0,
		VP: Viewport{
			ShowLineNumbers: cfg.LineNums,
			WrapLines:       cfg.Wrap,
		},
		Mode:         NormalMode{},
		Marks:        map[rune]int{},
		PendingKey:   keymap.ActionNone,
		SearchEngine: &search.Engine{Forward: true},
		Keymap:       km,
		Config:       cfg,
		Highlighter:  hl,
		Logger:       logger,
	}
}

// ActiveDocument returns the currently active document.
func (s *AppState) ActiveDocument() *document.Document {
	return s.Documents[s.Active]
}

// displayLineCount returns the filtered line count when a filter is
// active, else the active document's display line count.
func (s *AppState) displayLineCount() int {
	if s.Filter != nil {
		return len(s.Filter.Lines)
	}
	return s.ActiveDocument().DisplayLineCount()
}

// maxTopLine returns the greatest legal TopLine (or TopFilterIdx) value.
func (s *AppState) maxTopLine() int {
	n := s.displayLineCount() - s.VP.ContentHeight
	if n < 0 {
		n = 0
	}
	return n
}

// clampScroll enforces 0 <= top <= max_top on the active scroll position
// (TopLine normally, Filter.TopFilterIdx when a filter is active).
func (s *AppState) clampScroll() {
	max := s.maxTopLine()
	if s.Filter != nil {
		if s.Filter.TopFilterIdx < 0 {
			s.Filter.TopFilterIdx = 0
		}
		if s.Filter.TopFilterIdx > max {
			s.Filter.TopFilterIdx = max
		}
		return
	}
	if s.VP.TopLine < 0 {
		s.VP.TopLine = 0
	}
	if s.VP.TopLine > max {
		s.VP.TopLine = max
	}
}

// scrollBy moves the active scroll position by delta lines, clamping.
func (s *AppState) scrollBy(delta int) {
	if s.Filter != nil {
		s.Filter.TopFilterIdx += delta
	} else {
		s.VP.TopLine += delta
	}
	s.clampScroll()
}

// gotoTop moves the active scroll position to 0.
func (s *AppState) gotoTop() {
	if s.Filter != nil {
		s.Filter.TopFilterIdx = 0
	} else {
		s.VP.TopLine = 0
	}
}

// gotoBottom moves the active scroll position to maxTopLine.
func (s *AppState) gotoBottom() {
	max := s.maxTopLine()
	if s.Filter != nil {
		s.Filter.TopFilterIdx = max
	} else {
		s.VP.TopLine = max
	}
}

// scrollHorizontalBy adjusts LeftCol, clamped to [0, +inf), and is a no-op
// when line wrap is enabled (wrapped content has no horizontal scroll).
func (s *AppState) scrollHorizontalBy(delta int) {
	if s.VP.WrapLines {
		return
	}
	s.VP.LeftCol += delta
	if s.VP.LeftCol < 0 {
		s.VP.LeftCol = 0
	}
}

// SetDimensions updates ContentHeight/ContentWidth at the start of a frame
// and re-clamps scroll, since a terminal resize can shrink the viewport
// below the current scroll position.
func (s *AppState) SetDimensions(height, width int) {
	s.VP.ContentHeight = height
	s.VP.ContentWidth = width
	s.clampScroll()
}

// compilePattern compiles pattern with the configured smart-case
// rule, wrapping compile errors into StatusMessage instead of propagating
// them, per the "no error is ever a panic on otherwise-valid user input"
// policy.
func (s *AppState) compilePattern(pattern string) (*regexp.Regexp, bool) {
	re, err := search.CompileSmartCase(pattern, s.Config.SmartCase)
	if err != nil {
		s.StatusMessage = fmt.Sprintf("invalid pattern: %v", err)
		return nil, false
	}
	return re, true
}
