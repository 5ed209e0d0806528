// Package overlay composes one line's syntax-highlighted spans with zero or
// more highlight ranges (selection, committed search, preview search) into
// a single gap-free, non-overlapping, boundary-safe span sequence.
package overlay

import (
	"sort"

	"github.com/mna/glance/internal/pager/highlight"
	"github.com/rivo/uniseg"
)

// Kind stacks by priority: Selection beats CommittedMatch beats
// PreviewMatch beats no overlay at all (syntax only).
type Kind int

const (
	None Kind = iota
	PreviewMatch
	CommittedMatch
	Selection
)

// Range is one highlight range to overlay onto a line, as a half-open byte
// range plus its priority Kind.
type Range struct {
	Start, End int
	Kind       Kind
}

// Span is one output span: a byte range with both its syntax TokenKind and
// the (possibly None) overlay Kind that wins at that position.
type Span struct {
	Start, End int
	Syntax     highlight.TokenKind
	Overlay    Kind
}

// Compose merges syntax (must be gap-free and cover [0, lineLen)) with
// ranges into a gap-free, non-overlapping Span sequence. Every output
// boundary falls on a grapheme-cluster boundary of line, never inside a
// multi-byte UTF-8 code point: overlay ranges are snapped outward to the
// nearest enclosing grapheme boundary before composition, per the
// "never split inside a code point" invariant.
func Compose(line string, syntax highlight.StyledSpans, ranges []Range) []Span {
	lineLen := len(line)
	if lineLen == 0 {
		return nil
	}

	boundaries := graphemeBoundaries(line)
	snapped := make([]Range, len(ranges))
	for i, r := range ranges {
		snapped[i] = Range{
			Start: snapFloor(boundaries, r.Start),
			End:   snapCeil(boundaries, r.End, lineLen),
			Kind:  r.Kind,
		}
	}

	cuts := map[int]bool{0: true, lineLen: true}
	for _, s := range syntax {
		cuts[s.Start] = true
		cuts[s.End] = true
	}
	for _, r := range snapped {
		cuts[r.Start] = true
		cuts[r.End] = true
	}

	points := make([]int, 0, len(cuts))
	for p := range cuts {
		points = append(points, p)
	}
	sort.Ints(points)

	out := make([]Span, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		start, end := points[i], points[i+1]
		out = append(out, Span{
			Start:   start,
			End:     end,
			Syntax:  syntaxAt(syntax, start),
			Overlay: overlayAt(snapped, start),
		})
	}
	return mergeAdjacentSpans(out)
}

func syntaxAt(spans highlight.StyledSpans, pos int) highlight.TokenKind {
	for _, s := range spans {
		if pos >= s.Start && pos < s.End {
			return s.Kind
		}
	}
	return highlight.Plain
}

func overlayAt(ranges []Range, pos int) Kind {
	best := None
	for _, r := range ranges {
		if pos >= r.Start && pos < r.End && r.Kind > best {
			best = r.Kind
		}
	}
	return best
}

func mergeAdjacentSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return spans
	}
	out := make([]Span, 0, len(spans))
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.Start == cur.End && s.Syntax == cur.Syntax && s.Overlay == cur.Overlay {
			cur.End = s.End
			continue
		}
		out = append(out, cur)
		cur = s
	}
	return append(out, cur)
}

// graphemeBoundaries returns every grapheme-cluster boundary offset in
// line, from 0 through len(line) inclusive.
func graphemeBoundaries(line string) []int {
	bounds := []int{0}
	pos := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		bounds = append(bounds, pos)
		rest = next
		state = newState
	}
	return bounds
}

// snapFloor returns the greatest boundary <= pos.
func snapFloor(boundaries []int, pos int) int {
	best := boundaries[0]
	for _, b := range boundaries {
		if b <= pos {
			best = b
		} else {
			break
		}
	}
	return best
}

// snapCeil returns the least boundary >= pos, capped at lineLen.
func snapCeil(boundaries []int, pos, lineLen int) int {
	for _, b := range boundaries {
		if b >= pos {
			return b
		}
	}
	return lineLen
}
