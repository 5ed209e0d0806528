// Package config resolves the pager's configuration from a TOML file
// merged with command-line overrides, the way holo-build's package
// descriptor parser decodes its TOML manifest: a file struct decoded
// wholesale with toml.Decode, every field optional and defaulted.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mna/glance/internal/pager/glanceerr"
)

// fileConfig mirrors the on-disk TOML shape: every field is a pointer or a
// zero-valued optional so an absent key is distinguishable from an
// explicit false/zero, letting mergeFile only override what was actually set.
type fileConfig struct {
	General *generalSection `toml:"general"`
	Colors  *colorsSection  `toml:"colors"`
	Keys    map[string]string `toml:"keys"`
}

type generalSection struct {
	Theme     *string `toml:"theme"`
	ThemesDir *string `toml:"themes_dir"`
	LineNums  *bool   `toml:"line_numbers"`
	Wrap      *bool   `toml:"wrap"`
	TabWidth  *int    `toml:"tab_width"`
	Mouse     *bool   `toml:"mouse"`
	SmartCase *bool   `toml:"smart_case"`
}

type colorsSection struct {
	StatusBar  *string `toml:"status_bar"`
	SearchMatch *string `toml:"search_match"`
	LineNumber *string `toml:"line_number"`
}

// Config is the fully resolved configuration the core consumes: every field
// has a concrete value, defaults already applied.
type Config struct {
	Theme     string
	ThemesDir string
	LineNums  bool
	Wrap      bool
	TabWidth  int
	Mouse     bool
	SmartCase bool

	StatusBarColor   string
	SearchMatchColor string
	LineNumberColor  string

	// Keys maps an action name (as used in the [keys] table, e.g. "quit",
	// "scroll_down") to a user-chosen key specification string. Parsing
	// into keymap.Spec happens in the caller, which knows the action enum.
	Keys map[string]string
}

// Defaults returns the built-in configuration, used as the base that a
// loaded file and then CLI flags are merged on top of.
func Defaults() Config {
	return Config{
		Theme:            "monokai",
		ThemesDir:        defaultThemesDir(),
		LineNums:         false,
		Wrap:             false,
		TabWidth:         4,
		Mouse:            false,
		SmartCase:        true,
		StatusBarColor:   "#f8f8f2",
		SearchMatchColor: "#e6db74",
		LineNumberColor:  "#75715e",
		Keys:             map[string]string{},
	}
}

// Load reads and decodes the TOML file at path, merging it onto Defaults().
// A missing file is not an error: it simply yields the defaults, since the
// specification treats "no config file" as a normal, unconfigured start.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, glanceerr.New(glanceerr.IO, "read config "+path, err)
	}

	var fc fileConfig
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return cfg, glanceerr.New(glanceerr.IO, "parse config "+path, err)
	}

	cfg.mergeFile(fc)
	return cfg, nil
}

func (c *Config) mergeFile(fc fileConfig) {
	if fc.General != nil {
		g := fc.General
		setString(&c.Theme, g.Theme)
		setString(&c.ThemesDir, g.ThemesDir)
		setBool(&c.LineNums, g.LineNums)
		setBool(&c.Wrap, g.Wrap)
		setInt(&c.TabWidth, g.TabWidth)
		setBool(&c.Mouse, g.Mouse)
		setBool(&c.SmartCase, g.SmartCase)
	}
	if fc.Colors != nil {
		setString(&c.StatusBarColor, fc.Colors.StatusBar)
		setString(&c.SearchMatchColor, fc.Colors.SearchMatch)
		setString(&c.LineNumberColor, fc.Colors.LineNumber)
	}
	for action, spec := range fc.Keys {
		c.Keys[action] = spec
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func defaultThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/glance/themes"
}

// DefaultConfigPath returns the default TOML config location,
// ~/.config/glance/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/glance/config.toml"
}
