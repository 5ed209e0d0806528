package state

import (
	"context"

	"github.com/mna/glance/internal/pager/search"
)

// PreCommitSearch commits pattern as the initial search at startup,
// backing the -p flag, without requiring the user to type it into
// search-input mode first.
func (s *AppState) PreCommitSearch(pattern string) {
	s.executeSearch(pattern, true)
}

// executeSearch commits the search input buffer: compiles the pattern,
// resets committed state, and launches the background full-document scan.
// Starting a new search cancels any previous worker's context and replaces
// the receiver and cancel function, so the old worker's late results are
// never drained again.
func (s *AppState) executeSearch(query string, forward bool) {
	s.Mode = NormalMode{}
	if query == "" {
		return
	}
	re, ok := s.compilePattern(query)
	if !ok {
		return
	}

	if s.searchCancel != nil {
		s.searchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.searchCancel = cancel

	s.SearchEngine.BeginCommitted(re, query, forward)
	snapshot := s.ActiveDocument().TextSnapshot()
	s.searchCh = search.StartBackground(ctx, snapshot, re)
}

// DrainSearch consumes every batch currently buffered on the active search
// channel without blocking, appending new matches in the order the worker
// sent them (already ascending by (line, byte_start)). The first non-empty
// batch centers the viewport on its first match. Called once per UI tick,
// after DrainWatcher per the fixed per-tick drain order: watcher events,
// then search batches, then input events.
func (s *AppState) DrainSearch() {
	if s.searchCh == nil {
		return
	}
	first := len(s.SearchEngine.Matches) == 0
	for {
		select {
		case b, ok := <-s.searchCh:
			if !ok {
				s.searchCh = nil
				return
			}
			s.SearchEngine.AppendBatch(b)
			if first && len(b.NewMatches) > 0 {
				s.centerOn(b.NewMatches[0].Line)
				first = false
			}
		default:
			return
		}
	}
}

// DrainWatcher consumes every pending watcher notification. In follow
// mode, a change triggers a reload of the active document and another
// jump-to-bottom; outside follow mode, notifications are simply dropped
// (the gutter's change markers refresh lazily on the next manual reload
// path, which this core does not expose outside follow mode).
func (s *AppState) DrainWatcher() {
	if s.Watcher == nil {
		return
	}
	var changed bool
	for {
		select {
		case <-s.Watcher.Events:
			changed = true
		default:
			goto done
		}
	}
done:
	if !changed {
		return
	}
	if _, ok := s.Mode.(FollowMode); !ok {
		return
	}
	if err := s.ActiveDocument().Reload(); err != nil {
		s.StatusMessage = err.Error()
		return
	}
	s.gotoBottom()
}
