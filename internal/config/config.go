package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/scribble/internal/theme"
)

// Defaults for the editor window. Width and height size the canvas area below the menu bar.
const (
	DefaultWidth       = 800
	DefaultHeight      = 500
	DefaultBrushSize   = 3
	DefaultErrorPolicy = "log"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Load bool
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	SaveDir     string
	BrushSize   int
	ErrorPolicy string
	Width       int
	Height      int
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:       "", // Default to empty to allow fallback to Env/Default
		BrushSize:   DefaultBrushSize,
		ErrorPolicy: DefaultErrorPolicy,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Themes:      make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "brush_size = %d\n", c.BrushSize)
	fmt.Fprintf(&sb, "error_policy = %s\n", c.ErrorPolicy)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
