package keymap_test

import (
	"testing"

	"github.com/mna/glance/internal/pager/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_PlainAndModifiers(t *testing.T) {
	t.Parallel()

	s, err := keymap.ParseSpec("g")
	require.NoError(t, err)
	assert.Equal(t, 'g', s.Rune)

	s, err = keymap.ParseSpec("ctrl+d")
	require.NoError(t, err)
	assert.Equal(t, 'd', s.Rune)
	assert.True(t, s.Ctrl)

	s, err = keymap.ParseSpec("shift+tab")
	require.NoError(t, err)
	assert.Equal(t, "tab", s.Name)
	assert.True(t, s.Shift)

	s, err = keymap.ParseSpec("pgdn")
	require.NoError(t, err)
	assert.Equal(t, "pgdn", s.Name)
}

func TestParseSpec_Invalid(t *testing.T) {
	t.Parallel()
	_, err := keymap.ParseSpec("notakey")
	assert.Error(t, err)
}

func TestResolver_DefaultBindings(t *testing.T) {
	t.Parallel()
	r := keymap.New(nil)

	a, ok := r.Resolve(keymap.Spec{Rune: 'q'})
	require.True(t, ok)
	assert.Equal(t, keymap.Quit, a)

	a, ok = r.Resolve(keymap.Spec{Name: "down"})
	require.True(t, ok)
	assert.Equal(t, keymap.ScrollDown, a)
}

func TestResolver_OverrideWins(t *testing.T) {
	t.Parallel()
	r := keymap.New(map[keymap.Action]keymap.Spec{
		keymap.Quit: {Rune: 'x'},
	})

	_, ok := r.Resolve(keymap.Spec{Rune: 'q'})
	assert.False(t, ok)

	a, ok := r.Resolve(keymap.Spec{Rune: 'x'})
	require.True(t, ok)
	assert.Equal(t, keymap.Quit, a)
}

func TestResolver_SecondaryAlwaysAvailable(t *testing.T) {
	t.Parallel()
	r := keymap.New(map[keymap.Action]keymap.Spec{
		keymap.Quit: {Rune: 'z'},
	})

	a, ok := r.Resolve(keymap.Spec{Rune: 'c', Ctrl: true})
	require.True(t, ok)
	assert.Equal(t, keymap.Quit, a)
}

func TestResolver_PendingMarkPrefix(t *testing.T) {
	t.Parallel()
	r := keymap.New(nil)

	a, ok := r.IsPendingPrefix(keymap.Spec{Rune: 'm'})
	require.True(t, ok)
	assert.Equal(t, keymap.BeginSetMark, a)

	_, ok = r.IsPendingPrefix(keymap.Spec{Rune: 'z'})
	assert.False(t, ok)
}
