package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/example/scribble/internal/appstate"
	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/dialogs"
	"github.com/example/scribble/internal/notify"
	"github.com/example/scribble/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	loadAlerts  bool
	themeName   string
	brushSize   int
	errorPolicy string
	logLevel    string
	activeTheme *theme.Theme
	policy      appstate.ErrorPolicy

	// runEditor opens the window; replaced in tests.
	runEditor func(*appstate.AppState)
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		log.WithError(err).Warn("failed to load config, using defaults")
		cfg = config.New()
	}

	r := &root{
		fs:        flag.NewFlagSet("scribble", flag.ContinueOnError),
		program:   "scribble",
		notifier:  notify.New(notify.LoadPreferences()),
		config:    cfg,
		runEditor: func(a *appstate.AppState) { a.Run() },
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.loadAlerts, "notify-load", cfg.Notify.Load, "show a desktop notification after loading an image")
	r.fs.IntVar(&r.brushSize, "brush-size", cfg.BrushSize, "half-width in pixels of the square brush")
	r.fs.StringVar(&r.errorPolicy, "error-policy", cfg.ErrorPolicy, "how failed load/save commands are reported (ignore, log, dialog)")
	r.fs.StringVar(&r.logLevel, "log-level", "info", "log verbosity (debug, info, warn, error)")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, high_contrast)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if ok, err := parseFlags(r.fs, args); !ok {
		return err
	}
	if err := setupLogging(r.logLevel); err != nil {
		return err
	}
	policy, err := appstate.ParseErrorPolicy(r.errorPolicy)
	if err != nil {
		return err
	}
	r.policy = policy
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventLoad, r.loadAlerts)
	r.activeTheme = r.resolveTheme()

	if r.fs.NArg() < 1 {
		return r.edit("", nil)
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "convert":
		cmd, err = parseConvertCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the theme from the flag, SCRIBBLE_THEME, then the config file.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SCRIBBLE_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}

	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			log.WithError(err).WithField("theme", name).Warn("failed to load theme, using default")
		}
		return theme.Default()
	}
	return t
}

// editorOptions builds the window configuration shared by every command that opens the editor.
func (r *root) editorOptions(file string) []appstate.Option {
	return []appstate.Option{
		appstate.WithTheme(r.activeTheme),
		appstate.WithBrushSize(r.brushSize),
		appstate.WithCanvasSize(r.config.Width, r.config.Height),
		appstate.WithErrorPolicy(r.policy),
		appstate.WithDialogs(dialogs.Native{StartDir: r.config.SaveDir}),
		appstate.WithNotifier(r.notifier),
		appstate.WithFile(file),
		appstate.WithTitle(windowTitle(titleOptions{File: file})),
	}
}

func (r *root) edit(file string, opts []appstate.Option) error {
	st := appstate.New(append(r.editorOptions(file), opts...)...)
	log.WithField("file", file).Debug("opening editor")
	r.runEditor(st)
	return nil
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	fd := os.Stderr.Fd()
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		FullTimestamp: true,
	})
	return nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		log.WithError(err).Error(r.program)
		os.Exit(1)
	}
}
