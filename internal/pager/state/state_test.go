package state_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mna/glance/internal/pager/config"
	"github.com/mna/glance/internal/pager/document"
	"github.com/mna/glance/internal/pager/highlight"
	"github.com/mna/glance/internal/pager/keymap"
	"github.com/mna/glance/internal/pager/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, content string, height int) *state.AppState {
	t.Helper()
	doc, err := document.FromStdin(strings.NewReader(content))
	require.NoError(t, err)

	hl, _ := highlight.New("monokai", "")
	km := keymap.New(nil)
	cfg := config.Defaults()
	s := state.New([]*document.Document{doc}, cfg, km, hl, nil)
	s.SetDimensions(height, 80)
	return s
}

func lines(n int, text string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestScrollClamping(t *testing.T) {
	t.Parallel()
	s := newTestState(t, lines(10, "line"), 4)

	s.ApplyAction(keymap.GotoBottom)
	assert.LessOrEqual(t, s.VP.TopLine, 10)
	assert.GreaterOrEqual(t, s.VP.TopLine, 0)

	s.ApplyAction(keymap.ScrollDown)
	top1 := s.VP.TopLine
	s.ApplyAction(keymap.ScrollUp)
	assert.Equal(t, top1-1, s.VP.TopLine)
}

func TestScrollDownUpRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestState(t, lines(50, "line"), 10)
	s.ApplyAction(keymap.ScrollDown)
	s.ApplyAction(keymap.ScrollDown)
	s.ApplyAction(keymap.ScrollDown)
	start := s.VP.TopLine
	s.ApplyAction(keymap.ScrollUp)
	s.ApplyAction(keymap.ScrollUp)
	s.ApplyAction(keymap.ScrollUp)
	assert.Equal(t, start-3, s.VP.TopLine)
}

func TestMarkAndJump(t *testing.T) {
	t.Parallel()
	s := newTestState(t, lines(100, "line"), 5)

	s.ApplyAction(keymap.GotoBottom)
	bottom := s.VP.TopLine
	require.Greater(t, bottom, 0)

	s.HandleKey(keymap.Spec{Rune: 'm'})
	s.HandleKey(keymap.Spec{Rune: 'a'})

	s.ApplyAction(keymap.GotoTop)
	assert.Equal(t, 0, s.VP.TopLine)

	s.HandleKey(keymap.Spec{Rune: '\''})
	s.HandleKey(keymap.Spec{Rune: 'a'})
	assert.Equal(t, bottom, s.VP.TopLine)
}

func TestFilterApplyAndClear(t *testing.T) {
	t.Parallel()
	s := newTestState(t, "alpha\nBETA\nalpha again\ngamma\n", 10)

	s.ApplyAction(keymap.EnterFilter)
	for _, r := range "alpha" {
		s.HandleKey(keymap.Spec{Rune: r})
	}
	s.HandleKey(keymap.Spec{Name: "enter"})

	require.NotNil(t, s.Filter)
	assert.Equal(t, []int{0, 2}, s.Filter.Lines)

	s.ApplyAction(keymap.EnterFilter)
	s.HandleKey(keymap.Spec{Name: "enter"})
	assert.Nil(t, s.Filter)
}

func TestCommandGotoLine(t *testing.T) {
	t.Parallel()
	s := newTestState(t, lines(100, "line"), 5)

	s.ApplyAction(keymap.EnterCommand)
	for _, r := range "42" {
		s.HandleKey(keymap.Spec{Rune: r})
	}
	s.HandleKey(keymap.Spec{Name: "enter"})

	assert.Equal(t, 41, s.VP.TopLine)
}

func TestSearchCommittedOrderedAndNavigable(t *testing.T) {
	t.Parallel()
	s := newTestState(t, lines(30, "hit")+lines(10, "miss"), 5)

	s.ApplyAction(keymap.EnterSearchForward)
	for _, r := range "hit" {
		s.HandleKey(keymap.Spec{Rune: r})
	}
	s.HandleKey(keymap.Spec{Name: "enter"})

	require.Eventually(t, func() bool {
		s.DrainSearch()
		return !s.SearchEngine.Scanning
	}, time.Second, time.Millisecond)

	require.Len(t, s.SearchEngine.Matches, 30)
	for i := 1; i < len(s.SearchEngine.Matches); i++ {
		a, b := s.SearchEngine.Matches[i-1], s.SearchEngine.Matches[i]
		assert.True(t, a.Line < b.Line || (a.Line == b.Line && a.Start < b.Start))
	}

	s.ApplyAction(keymap.NextMatch)
	assert.Equal(t, 1, s.SearchEngine.Current)
	s.ApplyAction(keymap.PrevMatch)
	s.ApplyAction(keymap.PrevMatch)
	assert.Equal(t, 29, s.SearchEngine.Current)
}

func TestVisualYankReturnsToNormal(t *testing.T) {
	t.Parallel()
	s := newTestState(t, lines(20, "line"), 5)

	s.ApplyAction(keymap.EnterVisual)
	s.HandleKey(keymap.Spec{Rune: 'j'})
	s.HandleKey(keymap.Spec{Rune: 'j'})
	s.HandleKey(keymap.Spec{Rune: 'y'})

	_, isNormal := s.Mode.(interface{})
	_ = isNormal
	assert.IsType(t, state.NormalMode{}, s.Mode)
}

func TestSwitchBufferWraps(t *testing.T) {
	t.Parallel()
	docA, err := document.FromStdin(strings.NewReader("a\n"))
	require.NoError(t, err)
	docB, err := document.FromStdin(strings.NewReader("b\n"))
	require.NoError(t, err)

	hl, _ := highlight.New("monokai", "")
	km := keymap.New(nil)
	s := state.New([]*document.Document{docA, docB}, config.Defaults(), km, hl, nil)
	s.SetDimensions(5, 80)

	s.ApplyAction(keymap.NextBuffer)
	assert.Equal(t, 1, s.Active)
	s.ApplyAction(keymap.NextBuffer)
	assert.Equal(t, 0, s.Active)
	s.ApplyAction(keymap.PrevBuffer)
	assert.Equal(t, 1, s.Active)
}
