package highlight

// Highlighter is the document-facing entry point: resolve a theme once at
// startup, then for each open document ask for a syntax handle and a fresh
// stateful lexer.
type Highlighter struct {
	registry *Registry
	theme    Theme
	disabled bool
}

// New resolves themeName against a registry built from themesDir (see
// NewRegistry) and returns a Highlighter bound to it, plus whether the
// theme name fell back to the default (ThemeMissing, reported by the
// caller into status_message rather than treated as fatal).
func New(themeName, themesDir string) (*Highlighter, bool) {
	reg := NewRegistry(themesDir)
	theme, found := reg.Theme(themeName)
	return &Highlighter{registry: reg, theme: theme}, !found
}

// Disabled returns a Highlighter that tokenizes nothing: DetectSyntax still
// works so the gutter's language-specific concerns stay well-defined, but
// every Highlight call returns a single Plain span covering the line. This
// backs --no-syntax and --plain.
func Disabled(themeName, themesDir string) *Highlighter {
	h, _ := New(themeName, themesDir)
	h.disabled = true
	return h
}

// Theme returns the active theme, for status bar and gutter color lookups.
func (h *Highlighter) Theme() Theme { return h.theme }

// DetectSyntax resolves the syntax handle for logicalPath.
func (h *Highlighter) DetectSyntax(logicalPath string) Syntax {
	return DetectSyntax(logicalPath)
}

// NewLineLexer returns a fresh stateful lexer for syntax. The caller must
// feed it lines in order from the start of the window it will cover.
func (h *Highlighter) NewLineLexer(syntax Syntax) *Lexer {
	return NewLexer(syntax)
}

// Highlight turns one line into styled spans using lexer's carried state.
// When the highlighter is disabled, it returns a single Plain span and
// leaves lexer untouched.
func (h *Highlighter) Highlight(lexer *Lexer, line string) StyledSpans {
	if h.disabled {
		if line == "" {
			return nil
		}
		return StyledSpans{{Start: 0, End: len(line), Kind: Plain}}
	}
	return lexer.Highlight(line)
}

// ColorFor resolves the on-screen foreground color for a token kind under
// the active theme.
func (h *Highlighter) ColorFor(k TokenKind) Color {
	return h.theme.colorFor(k)
}
