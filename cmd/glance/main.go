// Command glance is a terminal pager: a less-style viewer for text, diffs,
// and binary files, with search, filtering, syntax highlighting, and
// multi-buffer navigation.
package main

import (
	"fmt"
	"os"

	"github.com/mna/glance/internal/pager/config"
	"github.com/mna/glance/internal/pager/diffdoc"
	"github.com/mna/glance/internal/pager/document"
	"github.com/mna/glance/internal/pager/glanceerr"
	"github.com/mna/glance/internal/pager/glog"
	"github.com/mna/glance/internal/pager/highlight"
	"github.com/mna/glance/internal/pager/keymap"
	"github.com/mna/glance/internal/pager/render"
	"github.com/mna/glance/internal/pager/state"
	"github.com/mna/glance/internal/pager/watch"
	"github.com/ogier/pflag"
)

// BuildVersion is stamped at release build time via -ldflags; it stays
// "dev" for a plain `go build`.
var BuildVersion = "dev"

func main() {
	os.Exit(run())
}

// Exit codes: 0 clean, 1 usage/load error, 2 runtime/terminal error, per
// the teacher's own convention of reserving 2 for failures past the point
// a package was actually being built (here: past the point a screen was
// actually opened).
func run() int {
	var (
		flagTheme    = pflag.StringP("theme", "t", "", "color theme name")
		flagNoSyntax = pflag.Bool("no-syntax", false, "disable syntax highlighting")
		flagPlain    = pflag.Bool("plain", false, "disable syntax highlighting and the line-number gutter")
		flagLineNums = pflag.BoolP("line-numbers", "n", false, "show line numbers")
		flagFollow   = pflag.BoolP("follow", "f", false, "enter follow mode after opening")
		flagGotoLine = pflag.IntP("goto-line", "N", 0, "open at line N (1-based)")
		flagSearch   = pflag.StringP("search", "p", "", "pre-commit a search pattern on startup")
		flagWrap     = pflag.BoolP("wrap", "w", false, "wrap long lines instead of horizontal scroll")
		flagTabWidth = pflag.Int("tab-width", 0, "tab display width in columns (0 = use config default)")
		flagDiff     = pflag.String("diff", "", "compare two files: --diff=old.txt,new.txt")
		flagConfig   = pflag.String("config", "", "path to config.toml (default ~/.config/glance/config.toml)")
		flagNoConfig = pflag.Bool("no-config", false, "ignore any config file and CLI-default everything")
		flagLogFile  = pflag.String("log-file", "", "path to a debug log file")
		flagLogLevel = pflag.String("log-level", "info", "debug, info, warn, or error")
		flagVersion  = pflag.Bool("version", false, "print the version and exit")
	)
	pflag.Parse()

	if *flagVersion {
		fmt.Println("glance " + BuildVersion)
		return 0
	}

	cfg, err := loadConfig(*flagConfig, *flagNoConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	applyFlagOverrides(&cfg, *flagTheme, *flagLineNums, *flagWrap, *flagTabWidth)
	if *flagPlain {
		cfg.LineNums = false
	}

	logger, closeLogger := buildLogger(*flagLogFile, *flagLogLevel)
	defer closeLogger()

	docs, watchPaths, err := loadDocuments(pflag.Args(), *flagDiff)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeAll(docs)

	hl := buildHighlighter(cfg, *flagNoSyntax, *flagPlain)

	km, err := buildKeymap(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	st := state.New(docs, cfg, km, hl, logger)

	var w *watch.Watcher
	if len(watchPaths) > 0 {
		w, err = watch.New(watchPaths...)
		if err == nil {
			st.Watcher = w
			defer w.Close()
		}
	}

	screen, err := render.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer screen.Close()

	width, height := screen.Size()
	st.SetDimensions(render.ContentHeight(height, len(st.Documents) > 1), width)
	applyStartupActions(st, *flagGotoLine, *flagSearch, *flagFollow)

	runLoop(screen, st)
	return 0
}

// applyStartupActions wires the -N, -p, and -f flags into the state machine
// before the first frame is drawn, in that order: a pre-commit search
// re-centers the viewport on its first match, which a startup -N jump
// should not then override.
func applyStartupActions(st *state.AppState, gotoLine int, searchPattern string, follow bool) {
	if gotoLine > 0 {
		st.GotoLine(gotoLine)
	}
	if searchPattern != "" {
		st.PreCommitSearch(searchPattern)
	}
	if follow {
		st.ApplyAction(keymap.EnterFollow)
	}
}

func loadConfig(path string, noConfig bool) (config.Config, error) {
	if noConfig {
		return config.Defaults(), nil
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

func applyFlagOverrides(cfg *config.Config, theme string, lineNums, wrap bool, tabWidth int) {
	if theme != "" {
		cfg.Theme = theme
	}
	if lineNums {
		cfg.LineNums = true
	}
	if wrap {
		cfg.Wrap = true
	}
	if tabWidth > 0 {
		cfg.TabWidth = tabWidth
	}
}

func buildLogger(path string, level string) (*glog.Logger, func()) {
	lvl := glog.ParseLevel(level)
	if path == "" {
		return glog.Nop(), func() {}
	}
	logger, err := glog.Open(path, lvl)
	if err != nil {
		return glog.Nop(), func() {}
	}
	return logger, func() { logger.Close() }
}

func buildHighlighter(cfg config.Config, noSyntax, plain bool) *highlight.Highlighter {
	if plain {
		return highlight.Disabled(cfg.Theme, cfg.ThemesDir)
	}
	if noSyntax {
		return highlight.Disabled(cfg.Theme, cfg.ThemesDir)
	}
	hl, _ := highlight.New(cfg.Theme, cfg.ThemesDir)
	return hl
}

func buildKeymap(cfg config.Config) (*keymap.Resolver, error) {
	overrides := map[keymap.Action]keymap.Spec{}
	for name, specStr := range cfg.Keys {
		action, ok := keymap.ActionByName(name)
		if !ok {
			continue
		}
		spec, err := keymap.ParseSpec(specStr)
		if err != nil {
			return nil, err
		}
		overrides[action] = spec
	}
	return keymap.New(overrides), nil
}

// loadDocuments opens every positional path (or stdin when none is given)
// as a Document, or synthesizes a single diff Document when diffSpec is
// set. It returns the filesystem paths worth watching for follow mode
// (stdin and synthetic diffs are never watched).
func loadDocuments(paths []string, diffSpec string) ([]*document.Document, []string, error) {
	if diffSpec != "" {
		old, new_, err := splitDiffSpec(diffSpec)
		if err != nil {
			return nil, nil, err
		}
		d, err := diffdoc.Build(old, new_)
		if err != nil {
			return nil, nil, err
		}
		return []*document.Document{d}, nil, nil
	}

	if len(paths) == 0 {
		d, err := document.FromStdin(os.Stdin)
		if err != nil {
			return nil, nil, err
		}
		return []*document.Document{d}, nil, nil
	}

	docs := make([]*document.Document, 0, len(paths))
	watchPaths := make([]string, 0, len(paths))
	for _, p := range paths {
		d, err := document.FromPath(p)
		if err != nil {
			for _, opened := range docs {
				opened.Close()
			}
			return nil, nil, err
		}
		docs = append(docs, d)
		watchPaths = append(watchPaths, p)
	}
	return docs, watchPaths, nil
}

func splitDiffSpec(spec string) (old, new_ string, err error) {
	for i, r := range spec {
		if r == ',' {
			return spec[:i], spec[i+1:], nil
		}
	}
	return "", "", glanceerr.New(glanceerr.IO, "parse --diff", fmt.Errorf("expected OLD,NEW, got %q", spec))
}

func closeAll(docs []*document.Document) {
	for _, d := range docs {
		d.Close()
	}
}

func runLoop(screen *render.Screen, st *state.AppState) {
	width, height := screen.Size()
	st.SetDimensions(render.ContentHeight(height, len(st.Documents) > 1), width)

	for !st.Quit {
		st.DrainWatcher()
		st.DrainSearch()

		screen.Clear()
		render.Draw(screen, st)
		screen.Show()

		spec, ok, timedOut := screen.NextKey()
		if timedOut {
			continue
		}
		w, h := screen.Size()
		st.SetDimensions(render.ContentHeight(h, len(st.Documents) > 1), w)
		if !ok {
			continue
		}
		st.HandleKey(spec)
	}
}
