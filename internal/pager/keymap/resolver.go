package keymap

import "github.com/mna/glance/internal/trie"

// binding pairs one key Spec with the Action it triggers; unlike a map
// keyed by Action, a slice lets more than one Spec alias the same Action.
type binding struct {
	spec   Spec
	action Action
}

// secondaryBindings is the fixed, non-overridable alias layer: it
// guarantees baseline usability (arrows, paging, Ctrl-C) even if a user's
// primary map is misconfigured into something unusable.
func secondaryBindings() []binding {
	return []binding{
		{Spec{Name: "down"}, ScrollDown},
		{Spec{Name: "enter"}, ScrollDown},
		{Spec{Name: "up"}, ScrollUp},
		{Spec{Name: "left"}, ScrollLeft},
		{Spec{Name: "right"}, ScrollRight},
		{Spec{Name: "pgdn"}, FullPageDown},
		{Spec{Name: "pgup"}, FullPageUp},
		{Spec{Name: "home"}, GotoTop},
		{Spec{Name: "end"}, GotoBottom},
		{Spec{Rune: 'c', Ctrl: true}, Quit},
	}
}

// Resolver holds the two lookup layers (spec key -> action) plus a trie of
// the pending two-key prefixes ("m", "'") that must be completed by an
// arbitrary following mark character.
type Resolver struct {
	primary   map[string]Action
	secondary map[string]Action
	pending   trie.Trie[Action]
}

// New builds a Resolver from the built-in defaults overlaid with overrides
// (action -> user key spec). An override whose spec fails to parse is
// reported by the caller before reaching here (cmd/glance parses specs
// with ParseSpec up front); New itself never fails.
func New(overrides map[Action]Spec) *Resolver {
	primary := defaultBindings()
	for action, spec := range overrides {
		primary[action] = spec
	}

	r := &Resolver{
		primary:   map[string]Action{},
		secondary: map[string]Action{},
	}
	for action, spec := range primary {
		r.primary[spec.key()] = action
	}
	for _, b := range secondaryBindings() {
		r.secondary[b.spec.key()] = b.action
	}
	r.pending.Insert(Spec{Rune: 'm'}.key(), BeginSetMark)
	r.pending.Insert(Spec{Rune: '\''}.key(), BeginJumpMark)
	return r
}

// Resolve looks up spec's action: primary layer first, then secondary.
// ActionNone, false is returned when neither layer binds it.
func (r *Resolver) Resolve(spec Spec) (Action, bool) {
	key := spec.key()
	if a, ok := r.primary[key]; ok {
		return a, true
	}
	if a, ok := r.secondary[key]; ok {
		return a, true
	}
	return ActionNone, false
}

// IsPendingPrefix reports whether spec begins one of the two-key mark
// sequences, via the trie's longest-prefix lookup: a match exactly equal to
// spec's key means this key, alone, starts a pending sequence.
func (r *Resolver) IsPendingPrefix(spec Spec) (Action, bool) {
	key := spec.key()
	prefix, action := r.pending.Get(key)
	if prefix != key {
		return ActionNone, false
	}
	return action, true
}
