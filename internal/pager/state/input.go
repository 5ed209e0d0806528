package state

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mna/glance/internal/pager/keymap"
	"github.com/mna/glance/internal/pager/search"
)

// appendRune appends r to buffer, used by every …Input mode for printable
// keys.
func appendRune(buffer string, r rune) string {
	return buffer + string(r)
}

// backspaceAtBoundary removes the last complete rune of buffer, never
// leaving a partial UTF-8 code point.
func backspaceAtBoundary(buffer string) string {
	if buffer == "" {
		return buffer
	}
	_, size := utf8.DecodeLastRuneInString(buffer)
	return buffer[:len(buffer)-size]
}

func (s *AppState) handleSearchInput(m SearchInputMode, spec keymap.Spec) {
	switch {
	case spec.Name == "esc":
		s.Mode = NormalMode{}
		s.SearchEngine.ClearPreview()
	case spec.Name == "enter":
		s.executeSearch(m.Buffer, m.Forward)
	case spec.Name == "backspace":
		m.Buffer = backspaceAtBoundary(m.Buffer)
		s.Mode = m
		s.updatePreview(m.Buffer)
	case spec.Rune != 0:
		m.Buffer = appendRune(m.Buffer, spec.Rune)
		s.Mode = m
		s.updatePreview(m.Buffer)
	}
}

func (s *AppState) updatePreview(query string) {
	if query == "" {
		s.SearchEngine.ClearPreview()
		return
	}
	re, ok := s.compilePattern(query)
	if !ok {
		return
	}
	doc := s.ActiveDocument()
	first := s.VP.TopLine
	last := first + s.VP.ContentHeight - 1
	if last >= doc.LineCount() {
		last = doc.LineCount() - 1
	}
	if last < first {
		s.SearchEngine.ClearPreview()
		return
	}
	matches := search.ScanLines(doc.GetLine, re, first, last)
	s.SearchEngine.SetPreview(matches)
}

func (s *AppState) handleCommandInput(m CommandInputMode, spec keymap.Spec) {
	switch {
	case spec.Name == "esc":
		s.Mode = NormalMode{}
	case spec.Name == "enter":
		s.Mode = NormalMode{}
		s.runCommand(m.Buffer)
	case spec.Name == "backspace":
		m.Buffer = backspaceAtBoundary(m.Buffer)
		s.Mode = m
	case spec.Rune != 0:
		m.Buffer = appendRune(m.Buffer, spec.Rune)
		s.Mode = m
	}
}

func (s *AppState) runCommand(cmd string) {
	cmd = strings.TrimSpace(cmd)
	switch {
	case cmd == "q" || cmd == "quit":
		s.Quit = true
	case cmd == "n" || cmd == "next":
		s.gotoMatch(s.SearchEngine.NextMatch())
	case cmd == "p" || cmd == "prev":
		s.gotoMatch(s.SearchEngine.PrevMatch())
	case isAllDigits(cmd):
		n, _ := strconv.Atoi(cmd)
		s.gotoLineNumber(n)
	default:
		s.StatusMessage = "unknown command: " + cmd
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GotoLine jumps to 1-based line n at startup, backing the -N flag.
func (s *AppState) GotoLine(n int) {
	s.gotoLineNumber(n)
}

// gotoLineNumber jumps to 1-based line n, clamped to [1, display_line_count].
func (s *AppState) gotoLineNumber(n int) {
	max := s.displayLineCount()
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	if n < 1 {
		return
	}
	if s.Filter != nil {
		s.Filter.TopFilterIdx = n - 1
	} else {
		s.VP.TopLine = n - 1
	}
	s.clampScroll()
}

func (s *AppState) handleFilterInput(m FilterInputMode, spec keymap.Spec) {
	switch {
	case spec.Name == "esc":
		s.Mode = NormalMode{}
	case spec.Name == "enter":
		s.Mode = NormalMode{}
		s.applyFilter(m.Buffer)
	case spec.Name == "backspace":
		m.Buffer = backspaceAtBoundary(m.Buffer)
		s.Mode = m
	case spec.Rune != 0:
		m.Buffer = appendRune(m.Buffer, spec.Rune)
		s.Mode = m
	}
}

// applyFilter computes the sorted list of original-document line indices
// matching pattern and enters filtered navigation. An empty pattern clears
// any active filter.
func (s *AppState) applyFilter(pattern string) {
	if pattern == "" {
		s.Filter = nil
		return
	}
	re, ok := s.compilePattern(pattern)
	if !ok {
		return
	}
	doc := s.ActiveDocument()
	var lines []int
	for i := 0; i < doc.LineCount(); i++ {
		line, ok := doc.GetLine(i)
		if ok && re.MatchString(line) {
			lines = append(lines, i)
		}
	}
	s.Filter = &Filter{Query: pattern, Lines: lines}
}

func (s *AppState) handleFollowKey(spec keymap.Spec) {
	if spec.Name == "esc" || spec.Rune == 'q' {
		s.Mode = NormalMode{}
	}
}

func (s *AppState) handleVisualKey(m VisualMode, spec keymap.Spec) {
	switch {
	case spec.Name == "esc" || spec.Rune == 'q':
		s.Mode = NormalMode{}
	case spec.Rune == 'y':
		s.yankVisual(m)
	case spec.Name == "down" || spec.Rune == 'j':
		m.Cursor = clampLine(m.Cursor+1, s.ActiveDocument().LineCount())
		s.Mode = m
	case spec.Name == "up" || spec.Rune == 'k':
		m.Cursor = clampLine(m.Cursor-1, s.ActiveDocument().LineCount())
		s.Mode = m
	}
}

func clampLine(i, count int) int {
	if i < 0 {
		return 0
	}
	if count > 0 && i >= count {
		return count - 1
	}
	return i
}
