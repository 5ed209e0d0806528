// Package search implements smart-case pattern compilation, synchronous
// viewport preview scanning, and an asynchronous full-document scan that
// streams batched results back to the single UI goroutine over a channel,
// grounded on the one-shot background-task shape of a compile job: a
// goroutine that runs once, reports through a channel, and is simply
// abandoned rather than joined on cancellation.
package search

// Match is one regex match: the 0-based line it was found on and its
// half-open byte range within that line's text.
type Match struct {
	Line  int
	Start int
	End   int
}

// Less orders matches by (Line, Start), the order committed search results
// must always observe.
func Less(a, b Match) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Start < b.Start
}
