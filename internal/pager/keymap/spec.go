package keymap

import (
	"fmt"
	"strings"

	"github.com/mna/glance/internal/pager/glanceerr"
)

// Spec is a parsed key specification: a key plus its modifiers. Named keys
// (Enter, Tab, ...) are represented with Name set and Rune zero.
type Spec struct {
	Rune  rune
	Name  string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// key builds the canonical lookup key for a Spec, used as a map key by the
// resolver.
func (s Spec) key() string {
	var b strings.Builder
	if s.Ctrl {
		b.WriteString("ctrl+")
	}
	if s.Alt {
		b.WriteString("alt+")
	}
	if s.Shift {
		b.WriteString("shift+")
	}
	if s.Name != "" {
		b.WriteString(s.Name)
	} else {
		b.WriteRune(s.Rune)
	}
	return b.String()
}

var namedKeys = map[string]string{
	"space": "space", "enter": "enter", "tab": "tab", "esc": "esc",
	"backspace": "backspace", "up": "up", "down": "down", "left": "left",
	"right": "right", "home": "home", "end": "end",
	"pgup": "pgup", "pagedown": "pgdn", "pgdn": "pgdn", "pageup": "pgup",
}

// ParseSpec parses a human key specification such as "ctrl+d", "G",
// "shift+tab", or "pgdn" into a Spec. An unrecognized specification is
// reported as glanceerr.BadKeySpec, not a panic, per the load-time error
// contract for configuration.
func ParseSpec(s string) (Spec, error) {
	orig := s
	var out Spec
	for {
		lower := strings.ToLower(s)
		switch {
		case strings.HasPrefix(lower, "ctrl+"):
			out.Ctrl = true
			s = s[len("ctrl+"):]
		case strings.HasPrefix(lower, "alt+"):
			out.Alt = true
			s = s[len("alt+"):]
		case strings.HasPrefix(lower, "shift+"):
			out.Shift = true
			s = s[len("shift+"):]
		default:
			goto base
		}
	}
base:
	if name, ok := namedKeys[strings.ToLower(s)]; ok {
		out.Name = name
		return out, nil
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return Spec{}, glanceerr.New(glanceerr.BadKeySpec, "parse key spec "+orig,
			fmt.Errorf("expected a single character or named key, got %q", s))
	}
	// Uppercase letters carry the shift modifier implicitly via the rune
	// value itself (a terminal reports shift+g as 'G', never as 'g' plus a
	// separate modifier bit), so Shift is not set here: doing so would make
	// Spec{Rune: 'G'} and a parsed "shift+g" resolve to different keys.
	out.Rune = runes[0]
	return out, nil
}
