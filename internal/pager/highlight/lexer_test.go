package highlight_test

import (
	"testing"

	"github.com/mna/glance/internal/pager/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanText(line string, s highlight.Span) string { return line[s.Start:s.End] }

func TestHighlight_GoKeywordAndString(t *testing.T) {
	t.Parallel()
	syntax := highlight.DetectSyntax("main.go")
	lexer := highlight.NewLexer(syntax)

	line := `func main() { x := "hi" }`
	spans := lexer.Highlight(line)
	require.NotEmpty(t, spans)

	var foundKeyword, foundString bool
	for _, s := range spans {
		switch {
		case s.Kind == highlight.Keyword && spanText(line, s) == "func":
			foundKeyword = true
		case s.Kind == highlight.String && spanText(line, s) == `"hi"`:
			foundString = true
		}
	}
	assert.True(t, foundKeyword)
	assert.True(t, foundString)
}

func TestHighlight_LineComment(t *testing.T) {
	t.Parallel()
	syntax := highlight.DetectSyntax("main.go")
	lexer := highlight.NewLexer(syntax)

	line := `x := 1 // trailing comment`
	spans := lexer.Highlight(line)

	last := spans[len(spans)-1]
	assert.Equal(t, highlight.Comment, last.Kind)
	assert.Equal(t, "// trailing comment", spanText(line, last))
}

func TestHighlight_BlockCommentSpansLines(t *testing.T) {
	t.Parallel()
	syntax := highlight.DetectSyntax("main.go")
	lexer := highlight.NewLexer(syntax)

	spans1 := lexer.Highlight(`x := 1 /* start of`)
	last := spans1[len(spans1)-1]
	assert.Equal(t, highlight.Comment, last.Kind)

	spans2 := lexer.Highlight(`a multi-line comment */ y := 2`)
	require.NotEmpty(t, spans2)
	assert.Equal(t, highlight.Comment, spans2[0].Kind)

	var sawPlainAfterClose bool
	for _, s := range spans2 {
		if s.Kind != highlight.Comment {
			sawPlainAfterClose = true
		}
	}
	assert.True(t, sawPlainAfterClose)
}

func TestHighlight_UnknownExtensionIsPlain(t *testing.T) {
	t.Parallel()
	syntax := highlight.DetectSyntax("notes.xyz")
	lexer := highlight.NewLexer(syntax)

	spans := lexer.Highlight("anything at all")
	for _, s := range spans {
		assert.Equal(t, highlight.Plain, s.Kind)
	}
}

func TestHighlight_SpansCoverWholeLineNoGaps(t *testing.T) {
	t.Parallel()
	syntax := highlight.DetectSyntax("main.rs")
	lexer := highlight.NewLexer(syntax)

	line := `let s = "a\"b"; // done`
	spans := lexer.Highlight(line)
	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, len(line), spans[len(spans)-1].End)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start)
	}
}

func TestRegistry_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	reg := highlight.NewRegistry("")
	theme, found := reg.Theme("not-a-real-theme")
	assert.False(t, found)
	assert.Equal(t, highlight.DefaultThemeName, theme.Name)
}

func TestRegistry_KnownPresets(t *testing.T) {
	t.Parallel()
	reg := highlight.NewRegistry("")
	for _, name := range []string{"monokai", "dracula", "nord", "catppuccin-mocha"} {
		theme, found := reg.Theme(name)
		assert.True(t, found, name)
		assert.Equal(t, name, theme.Name)
	}
}
