package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/drawings
brush_size = 5
error_policy = Dialog
width = 640
height = "480"

[notify]
save = true
load = false

[theme.my_custom_theme]
Background = #111111
Ink = red
`
	cfg, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "my_custom_theme", cfg.Theme)
	assert.Equal(t, "/tmp/drawings", cfg.SaveDir)
	assert.Equal(t, 5, cfg.BrushSize)
	assert.Equal(t, "dialog", cfg.ErrorPolicy)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.True(t, cfg.Notify.Save)
	assert.False(t, cfg.Notify.Load)

	th, ok := cfg.Themes["my_custom_theme"]
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x11, 0x11, 0x11, 0xFF}, th.Background)
	assert.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, th.Ink)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"brush_size = 0":                   "brush_size must be positive",
		"width = wide":                     "invalid integer for key width",
		"[notify]\nsave = maybe":           "invalid boolean for key save",
		"[theme.x]\nInk = #GGGGGG":         "error in section [theme.x]",
		"[theme.x]\nMenuBackground = #123": "invalid color for key MenuBackground",
	}
	for input, want := range tests {
		_, err := Parse(strings.NewReader(input))
		assert.ErrorContains(t, err, want, input)
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/drawings
brush_size = 2
error_policy = ignore

[notify]
save = true
load = true

[theme.custom]
Name = custom
Background = #000000
Ink = #FFFFFF80
`
	cfg, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	require.NoError(t, err)

	assert.Equal(t, cfg.Theme, cfg2.Theme)
	assert.Equal(t, cfg.SaveDir, cfg2.SaveDir)
	assert.Equal(t, cfg.BrushSize, cfg2.BrushSize)
	assert.Equal(t, cfg.ErrorPolicy, cfg2.ErrorPolicy)
	assert.Equal(t, cfg.Width, cfg2.Width)
	assert.Equal(t, cfg.Notify, cfg2.Notify)

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	require.NotNil(t, t1)
	require.NotNil(t, t2)
	assert.Equal(t, t1, t2)
}

func TestLoaderOverridePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rc")
	require.NoError(t, os.WriteFile(path, []byte("brush_size = 7\n"), 0o644))

	l := NewLoader("1.0.0", path)
	assert.Equal(t, path, l.GetConfigPath())
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.BrushSize)
}

func TestLoaderNoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := NewLoader("1.0.0", filepath.Join(t.TempDir(), "missing.rc"))
	assert.Empty(t, l.GetConfigPath())
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}
