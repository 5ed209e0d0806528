package overlay_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mna/glance/internal/pager/highlight"
	"github.com/mna/glance/internal/pager/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_NoOverlaysPassesSyntaxThrough(t *testing.T) {
	t.Parallel()
	line := "func main() {}"
	syntax := highlight.StyledSpans{
		{Start: 0, End: 4, Kind: highlight.Keyword},
		{Start: 4, End: len(line), Kind: highlight.Plain},
	}
	spans := overlay.Compose(line, syntax, nil)
	require.NotEmpty(t, spans)
	assert.Equal(t, highlight.Keyword, spans[0].Syntax)
	assert.Equal(t, overlay.None, spans[0].Overlay)
}

func TestCompose_OverlayWinsOverSyntax(t *testing.T) {
	t.Parallel()
	line := "hello world"
	syntax := highlight.StyledSpans{{Start: 0, End: len(line), Kind: highlight.Plain}}
	ranges := []overlay.Range{{Start: 6, End: 11, Kind: overlay.CommittedMatch}}

	spans := overlay.Compose(line, syntax, ranges)

	var sawOverlay bool
	for _, s := range spans {
		if s.Start >= 6 && s.End <= 11 {
			assert.Equal(t, overlay.CommittedMatch, s.Overlay)
			sawOverlay = true
		}
	}
	assert.True(t, sawOverlay)
}

func TestCompose_PriorityStacking(t *testing.T) {
	t.Parallel()
	line := "abcdefghij"
	syntax := highlight.StyledSpans{{Start: 0, End: len(line), Kind: highlight.Plain}}
	ranges := []overlay.Range{
		{Start: 2, End: 8, Kind: overlay.PreviewMatch},
		{Start: 4, End: 6, Kind: overlay.Selection},
	}

	spans := overlay.Compose(line, syntax, ranges)

	for _, s := range spans {
		if s.Start >= 4 && s.End <= 6 {
			assert.Equal(t, overlay.Selection, s.Overlay)
		}
	}
}

func TestCompose_SpansCoverWholeLineNoGaps(t *testing.T) {
	t.Parallel()
	line := "some line of text"
	syntax := highlight.StyledSpans{
		{Start: 0, End: 4, Kind: highlight.Keyword},
		{Start: 4, End: len(line), Kind: highlight.Plain},
	}
	ranges := []overlay.Range{{Start: 5, End: 9, Kind: overlay.PreviewMatch}}

	spans := overlay.Compose(line, syntax, ranges)
	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, len(line), spans[len(spans)-1].End)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].End, spans[i].Start)
	}
}

func TestCompose_EmptyLine(t *testing.T) {
	t.Parallel()
	spans := overlay.Compose("", nil, nil)
	assert.Empty(t, spans)
}

// TestCompose_ExactSpanSequence pins down the whole output sequence rather
// than spot-checking individual spans: cmp.Diff surfaces exactly which
// span in the sequence drifted, which a field-by-field assert does not.
func TestCompose_ExactSpanSequence(t *testing.T) {
	t.Parallel()
	line := "abcdef"
	syntax := highlight.StyledSpans{
		{Start: 0, End: 3, Kind: highlight.Keyword},
		{Start: 3, End: 6, Kind: highlight.Plain},
	}
	ranges := []overlay.Range{{Start: 2, End: 4, Kind: overlay.CommittedMatch}}

	got := overlay.Compose(line, syntax, ranges)
	want := []overlay.Span{
		{Start: 0, End: 2, Syntax: highlight.Keyword, Overlay: overlay.None},
		{Start: 2, End: 3, Syntax: highlight.Keyword, Overlay: overlay.CommittedMatch},
		{Start: 3, End: 4, Syntax: highlight.Plain, Overlay: overlay.CommittedMatch},
		{Start: 4, End: 6, Syntax: highlight.Plain, Overlay: overlay.None},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compose span sequence mismatch (-want +got):\n%s", diff)
	}
}
