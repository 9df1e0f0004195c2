package theme

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
# comment
Name: Mine
Ink: #112233
menubackground: navy
ButtonBorder: #01020380
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Mine", th.Name)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0xFF}, th.Ink)
	assert.Equal(t, color.RGBA{0, 0, 0x80, 0xFF}, th.MenuBackground)
	assert.Equal(t, color.RGBA{1, 2, 3, 0x80}, th.ButtonBorder)
	assert.Equal(t, Default().Background, th.Background, "missing keys keep defaults")
}

func TestParseInvalidColor(t *testing.T) {
	_, err := Parse(strings.NewReader("Ink: #12"))
	assert.ErrorContains(t, err, "invalid color for key Ink")

	_, err = Parse(strings.NewReader("Ink: notacolour"))
	assert.Error(t, err)
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAB, 0xCD, 0xEF, 0x10}} {
		got, err := ParseColor(FormatColor(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestFields(t *testing.T) {
	fields := Fields(Default())
	require.NotEmpty(t, fields)
	assert.Equal(t, "Background", fields[0].Name)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, fields[0].Color)
	assert.Equal(t, "Ink", fields[1].Name)
}

func TestLoaderEmbedded(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"default", "dark", "high_contrast"} {
		th, err := l.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, th.Name)
	}
	th, err := l.Load("high_contrast")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, th.Ink)

	th, err = l.Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), th)
}

func TestLoaderSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sepia.theme"), []byte("Ink: #704214\n"), 0o644))

	l := &Loader{ConfigDir: dir}
	th, err := l.Load("sepia")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x70, 0x42, 0x14, 0xFF}, th.Ink)

	th, err = l.Load(filepath.Join(dir, "sepia.theme"))
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x70, 0x42, 0x14, 0xFF}, th.Ink)

	_, err = l.Load("nope")
	assert.ErrorContains(t, err, "not found")
}
