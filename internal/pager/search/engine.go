package search

import "regexp"

// Engine holds one document's search state: the compiled pattern, the
// committed and preview match lists, and the navigation cursor. It knows
// nothing about channels or goroutines — StartBackground and the caller's
// event loop own that; Engine is pure state plus the operations the
// specification enumerates on it.
type Engine struct {
	Pattern  *regexp.Regexp
	Query    string
	Forward  bool
	Matches  []Match
	Preview  []Match
	Current  int
	Scanning bool
}

// SetPreview replaces the preview match list wholesale, as required on
// every keystroke in search-input mode.
func (e *Engine) SetPreview(matches []Match) { e.Preview = matches }

// ClearPreview empties the preview list, used when the query becomes empty.
func (e *Engine) ClearPreview() { e.Preview = nil }

// BeginCommitted resets committed state ahead of launching a background
// scan: clears preview and prior matches and marks scanning in progress.
func (e *Engine) BeginCommitted(re *regexp.Regexp, query string, forward bool) {
	e.Pattern = re
	e.Query = query
	e.Forward = forward
	e.Preview = nil
	e.Matches = nil
	e.Current = 0
	e.Scanning = true
}

// AppendBatch appends new_matches (already in ascending order) to the
// committed match list and, when done is true, clears the scanning flag.
func (e *Engine) AppendBatch(b Batch) {
	e.Matches = append(e.Matches, b.NewMatches...)
	if b.Done {
		e.Scanning = false
	}
}

// NextMatch advances Current by one match in the search's recorded
// direction, wrapping silently, and returns the match now at Current. The
// second return is false when there are no committed matches at all.
func (e *Engine) NextMatch() (Match, bool) {
	return e.step(e.Forward)
}

// PrevMatch advances Current by one match against the search's recorded
// direction, wrapping silently.
func (e *Engine) PrevMatch() (Match, bool) {
	return e.step(!e.Forward)
}

func (e *Engine) step(forward bool) (Match, bool) {
	n := len(e.Matches)
	if n == 0 {
		return Match{}, false
	}
	if forward {
		e.Current = (e.Current + 1) % n
	} else {
		e.Current = (e.Current - 1 + n) % n
	}
	return e.Matches[e.Current], true
}

// CurrentMatch returns the match at Current, if any.
func (e *Engine) CurrentMatch() (Match, bool) {
	if e.Current < 0 || e.Current >= len(e.Matches) {
		return Match{}, false
	}
	return e.Matches[e.Current], true
}
