// Package keymap parses key specifications and resolves terminal key events
// into normal-mode actions through a primary (user-overridable) and
// secondary (fixed) layer.
package keymap

// Action is one normal-mode command the mode machine understands.
type Action int

const (
	ActionNone Action = iota
	Quit
	ScrollDown
	ScrollUp
	HalfPageDown
	HalfPageUp
	FullPageDown
	FullPageUp
	GotoTop
	GotoBottom
	ScrollRight
	ScrollLeft
	ToggleLineNumbers
	ToggleWrap
	EnterSearchForward
	EnterSearchBackward
	NextMatch
	PrevMatch
	EnterCommand
	EnterFilter
	EnterVisual
	EnterFollow
	PrevBuffer
	NextBuffer
	BeginSetMark
	BeginJumpMark
)

// defaultBindings is the built-in primary layer, overridden entry-by-entry
// by any [keys] section the configuration collaborator supplies.
func defaultBindings() map[Action]Spec {
	return map[Action]Spec{
		Quit:                {Rune: 'q'},
		ScrollDown:           {Rune: 'j'},
		ScrollUp:             {Rune: 'k'},
		HalfPageDown:         {Rune: 'd', Ctrl: true},
		HalfPageUp:           {Rune: 'u', Ctrl: true},
		FullPageDown:         {Rune: 'f', Ctrl: true},
		FullPageUp:           {Rune: 'b', Ctrl: true},
		GotoTop:              {Rune: 'g'},
		GotoBottom:           {Rune: 'G'},
		ScrollRight:          {Rune: 'l'},
		ScrollLeft:           {Rune: 'h'},
		ToggleLineNumbers:    {Rune: 'n'},
		ToggleWrap:           {Rune: 'w'},
		EnterSearchForward:   {Rune: '/'},
		EnterSearchBackward:  {Rune: '?'},
		NextMatch:            {Rune: 'n', Ctrl: true},
		PrevMatch:            {Rune: 'N'},
		EnterCommand:         {Rune: ':'},
		EnterFilter:          {Rune: '&'},
		EnterVisual:          {Rune: 'v'},
		EnterFollow:          {Rune: 'F'},
		PrevBuffer:           {Rune: '[', Ctrl: true},
		NextBuffer:           {Rune: ']', Ctrl: true},
		BeginSetMark:         {Rune: 'm'},
		BeginJumpMark:        {Rune: '\''},
	}
}

// actionNames maps a configuration [keys] table name to its Action, the
// inverse of what a user writes in config.toml.
var actionNames = map[string]Action{
	"quit":                  Quit,
	"scroll_down":           ScrollDown,
	"scroll_up":             ScrollUp,
	"half_page_down":        HalfPageDown,
	"half_page_up":          HalfPageUp,
	"full_page_down":        FullPageDown,
	"full_page_up":          FullPageUp,
	"goto_top":              GotoTop,
	"goto_bottom":           GotoBottom,
	"scroll_right":          ScrollRight,
	"scroll_left":           ScrollLeft,
	"toggle_line_numbers":   ToggleLineNumbers,
	"toggle_wrap":           ToggleWrap,
	"search_forward":        EnterSearchForward,
	"search_backward":       EnterSearchBackward,
	"next_match":            NextMatch,
	"prev_match":            PrevMatch,
	"command":               EnterCommand,
	"filter":                EnterFilter,
	"visual":                EnterVisual,
	"follow":                EnterFollow,
	"prev_buffer":           PrevBuffer,
	"next_buffer":           NextBuffer,
}

// ActionByName resolves a [keys] table entry name to its Action, for
// building the override map config.Config.Keys feeds to New.
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}
