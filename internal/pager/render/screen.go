// Package render composes the tab bar, gutter, content region, status bar,
// and input bar into terminal cells via gdamore/tcell, and translates
// tcell's key events into the keymap.Spec shape the state machine expects.
package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mna/glance/internal/pager/keymap"
)

// Screen wraps a tcell.Screen and funnels its events through a channel so
// NextKey can wait on it against a 200ms poll timeout; the event loop
// drains the watcher and search channels between those waits.
type Screen struct {
	tc     tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// PollTimeout is the event loop's only blocking timeout.
const PollTimeout = 200 * time.Millisecond

// NewScreen initializes a tcell terminal screen.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(tc)
}

// newScreen wraps an already-constructed tcell.Screen (real or, in tests, a
// tcell.SimulationScreen) and starts its event pump.
func newScreen(tc tcell.Screen) (*Screen, error) {
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.EnableMouse()

	s := &Screen{tc: tc, events: make(chan tcell.Event, 8), quit: make(chan struct{})}
	go s.pump()
	return s, nil
}

func (s *Screen) pump() {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close tears down terminal state.
func (s *Screen) Close() {
	close(s.quit)
	s.tc.Fini()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) { return s.tc.Size() }

// NextKey waits up to PollTimeout for the next key event, translating it
// into a keymap.Spec. ok is false on timeout (no key arrived) or when the
// event was a resize/mouse event the caller should just re-render for.
func (s *Screen) NextKey() (spec keymap.Spec, ok bool, timedOut bool) {
	select {
	case ev := <-s.events:
		switch e := ev.(type) {
		case *tcell.EventKey:
			return translateKey(e), true, false
		case *tcell.EventResize:
			s.tc.Sync()
			return keymap.Spec{}, false, false
		default:
			return keymap.Spec{}, false, false
		}
	case <-time.After(PollTimeout):
		return keymap.Spec{}, false, true
	}
}

func translateKey(e *tcell.EventKey) keymap.Spec {
	mod := e.Modifiers()
	spec := keymap.Spec{
		Ctrl:  mod&tcell.ModCtrl != 0,
		Alt:   mod&tcell.ModAlt != 0,
		Shift: mod&tcell.ModShift != 0,
	}
	switch e.Key() {
	case tcell.KeyRune:
		spec.Rune = e.Rune()
	case tcell.KeyEnter:
		spec.Name = "enter"
	case tcell.KeyTab:
		spec.Name = "tab"
	case tcell.KeyEsc:
		spec.Name = "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		spec.Name = "backspace"
	case tcell.KeyUp:
		spec.Name = "up"
	case tcell.KeyDown:
		spec.Name = "down"
	case tcell.KeyLeft:
		spec.Name = "left"
	case tcell.KeyRight:
		spec.Name = "right"
	case tcell.KeyHome:
		spec.Name = "home"
	case tcell.KeyEnd:
		spec.Name = "end"
	case tcell.KeyPgUp:
		spec.Name = "pgup"
	case tcell.KeyPgDn:
		spec.Name = "pgdn"
	case tcell.KeyCtrlC:
		spec.Ctrl = true
		spec.Rune = 'c'
	default:
		spec.Rune = e.Rune()
	}
	return spec
}

// Clear clears the screen ahead of a fresh frame.
func (s *Screen) Clear() { s.tc.Clear() }

// Show flushes the frame to the terminal.
func (s *Screen) Show() { s.tc.Show() }

// SetCell draws one cell.
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, nil, style)
}
