package highlight

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Color is a "#rrggbb" hex string, matching the config file's color syntax.
type Color string

// Theme maps every TokenKind to a foreground color, plus a handful of named
// UI colors used outside of token spans.
type Theme struct {
	Name string

	Foreground map[TokenKind]Color

	StatusBarFg    Color
	StatusBarBg    Color
	SearchMatchFg  Color
	SearchMatchBg  Color
	PreviewMatchBg Color
	LineNumberFg   Color
}

func (t Theme) colorFor(k TokenKind) Color {
	if c, ok := t.Foreground[k]; ok {
		return c
	}
	return t.Foreground[Plain]
}

// Registry holds every loaded theme, keyed by lowercase name.
type Registry struct {
	themes map[string]Theme
}

// DefaultThemeName is used when a requested theme is unknown.
const DefaultThemeName = "monokai"

// NewRegistry builds a registry seeded with the four compiled-in presets,
// then overlays every *.tmTheme file found in themesDir (if non-empty and
// readable), named by its filename stem.
func NewRegistry(themesDir string) *Registry {
	r := &Registry{themes: map[string]Theme{}}
	for _, t := range builtinPresets() {
		r.themes[strings.ToLower(t.Name)] = t
	}
	if themesDir != "" {
		r.loadUserThemes(themesDir)
	}
	return r
}

// Theme resolves a theme by name (case-insensitive), falling back to
// DefaultThemeName and reporting ThemeMissing via the bool return when the
// requested name was not found.
func (r *Registry) Theme(name string) (Theme, bool) {
	if name == "" {
		name = DefaultThemeName
	}
	if t, ok := r.themes[strings.ToLower(name)]; ok {
		return t, true
	}
	return r.themes[DefaultThemeName], false
}

// loadUserThemes walks dir with a doublestar glob rather than a flat
// os.ReadDir so themes may be organized in subdirectories (e.g. a
// "dark/"/"light/" split), matching how theme packs are distributed.
func (r *Registry) loadUserThemes(dir string) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*.tmTheme")
	if err != nil {
		return
	}
	for _, rel := range matches {
		stem := strings.TrimSuffix(filepath.Base(rel), ".tmTheme")
		t, err := loadTmTheme(filepath.Join(dir, rel), stem)
		if err != nil {
			continue
		}
		r.themes[strings.ToLower(stem)] = t
	}
}

// loadTmTheme reads a minimal subset of the TextMate .tmTheme plist format,
// line by line: a <string> line following a "foreground" key sets the Plain
// foreground, and one following a "background" key sets StatusBarBg. Keys
// are matched anywhere in the file, without regard to dict nesting or
// scope, and the last occurrence wins. The theme's name is the file stem;
// the plist's own "name" key is ignored. This is not a full plist parser:
// every other syntax color keeps its built-in default.
func loadTmTheme(path, stem string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()

	t := Theme{Name: stem, Foreground: defaultForegrounds()}

	sc := bufio.NewScanner(f)
	var lastKey string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "<key>") {
			lastKey = strings.TrimSuffix(strings.TrimPrefix(line, "<key>"), "</key>")
			continue
		}
		if !strings.HasPrefix(line, "<string>") {
			continue
		}
		val := strings.TrimSuffix(strings.TrimPrefix(line, "<string>"), "</string>")
		switch lastKey {
		case "foreground":
			t.Foreground[Plain] = Color(normalizeHex(val))
		case "background":
			t.StatusBarBg = Color(normalizeHex(val))
		}
	}
	if err := sc.Err(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 7 {
		s = s[:7]
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// ParseHexColor validates a "#rrggbb" string.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("highlight: invalid color %q", s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return "", fmt.Errorf("highlight: invalid color %q: %w", s, err)
	}
	return Color(s), nil
}
