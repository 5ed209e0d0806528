package highlight

import (
	"strings"
	"unicode/utf8"
)

// Lexer carries state across a sequence of highlight calls for one document
// window: whether we are inside an unterminated block comment when a new
// line begins. Feeding lines out of order, or starting mid-document, yields
// visually correct results for that window but may mis-colorize a multi-line
// comment opened above the window's first line; callers wanting exactness
// should start a fresh Lexer at line 0 (see the renderer's per-window
// restart).
type Lexer struct {
	syntax        Syntax
	inBlockComment bool
}

// NewLexer returns a lexer for syntax, starting outside any multi-line
// construct.
func NewLexer(syntax Syntax) *Lexer {
	return &Lexer{syntax: syntax}
}

// runeReader walks one line by rune, tracking byte offset and a settable
// mark so a run of same-kind bytes can be captured as [mark, offset).
type runeReader struct {
	data []byte
	pos  int
	mark int
}

func (rr *runeReader) atEOF() bool { return rr.pos >= len(rr.data) }

func (rr *runeReader) peekByte() byte {
	if rr.atEOF() {
		return 0
	}
	return rr.data[rr.pos]
}

func (rr *runeReader) advanceRune() int {
	if rr.atEOF() {
		return 0
	}
	_, size := utf8.DecodeRune(rr.data[rr.pos:])
	rr.pos += size
	return size
}

func (rr *runeReader) setMark() { rr.mark = rr.pos }

func (rr *runeReader) hasPrefix(s string) bool {
	return strings.HasPrefix(string(rr.data[rr.pos:]), s)
}

// Highlight tokenizes one line of text, consuming and updating l's
// cross-line block-comment state, and returns a gap-free, non-overlapping
// StyledSpans covering the whole line.
func (l *Lexer) Highlight(line string) StyledSpans {
	rr := &runeReader{data: []byte(line)}
	var spans StyledSpans

	flush := func(kind TokenKind) {
		if rr.mark < rr.pos {
			spans = append(spans, Span{Start: rr.mark, End: rr.pos, Kind: kind})
		}
		rr.setMark()
	}

	if l.inBlockComment {
		l.scanBlockCommentBody(rr)
		flush(Comment)
	}

	for !rr.atEOF() {
		rr.setMark()

		switch {
		case l.syntax.LineComment != "" && rr.hasPrefix(l.syntax.LineComment):
			rr.pos = len(rr.data)
			flush(Comment)

		case l.syntax.BlockOpen != "" && rr.hasPrefix(l.syntax.BlockOpen):
			rr.pos += len(l.syntax.BlockOpen)
			l.inBlockComment = true
			l.scanBlockCommentBody(rr)
			flush(Comment)

		case strings.ContainsRune(l.syntax.QuoteChars, rune(rr.peekByte())):
			scanQuoted(rr)
			flush(String)

		case isDigitByte(rr.peekByte()):
			for !rr.atEOF() && isWordByte(rr.peekByte()) {
				rr.advanceRune()
			}
			flush(Number)

		case isWordStartByte(rr.peekByte()):
			for !rr.atEOF() && isWordByte(rr.peekByte()) {
				rr.advanceRune()
			}
			word := string(rr.data[rr.mark:rr.pos])
			switch {
			case l.syntax.Keywords[word]:
				flush(Keyword)
			case l.syntax.Types[word]:
				flush(Type)
			default:
				flush(Plain)
			}

		default:
			rr.advanceRune()
			flush(Plain)
		}
	}

	return mergeAdjacent(spans)
}

// scanBlockCommentBody advances rr past the block comment close marker (if
// found on this line) or to end of line, clearing l.inBlockComment only
// when the close marker was found.
func (l *Lexer) scanBlockCommentBody(rr *runeReader) {
	close := l.syntax.BlockClose
	for !rr.atEOF() {
		if close != "" && rr.hasPrefix(close) {
			rr.pos += len(close)
			l.inBlockComment = false
			return
		}
		rr.advanceRune()
	}
}

// scanQuoted advances rr past a quoted string literal starting at the
// current position, honoring backslash escapes, stopping at end of line if
// the closing quote never appears (an unterminated string highlights to end
// of line, which is the conservative and visually correct behavior for a
// pager that re-lexes every window independently).
func scanQuoted(rr *runeReader) {
	quote := rr.peekByte()
	rr.advanceRune()
	for !rr.atEOF() {
		b := rr.peekByte()
		if b == '\\' {
			rr.advanceRune()
			if !rr.atEOF() {
				rr.advanceRune()
			}
			continue
		}
		rr.advanceRune()
		if b == quote {
			return
		}
	}
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isWordStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= utf8.RuneSelf
}

func isWordByte(b byte) bool {
	return isWordStartByte(b) || isDigitByte(b)
}

// mergeAdjacent coalesces consecutive same-kind spans, which naturally
// arise when the default case emits one Span per rune.
func mergeAdjacent(spans StyledSpans) StyledSpans {
	if len(spans) == 0 {
		return spans
	}
	out := make(StyledSpans, 0, len(spans))
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.Kind == cur.Kind && s.Start == cur.End {
			cur.End = s.End
			continue
		}
		out = append(out, cur)
		cur = s
	}
	out = append(out, cur)
	return out
}
