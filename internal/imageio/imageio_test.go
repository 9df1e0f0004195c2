package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/example/scribble/internal/canvas"
)

func TestRoundTrip(t *testing.T) {
	painted := []image.Point{{0, 0}, {3, 4}, {9, 9}, {5, 0}}
	c := canvas.New(canvas.WithPixels(painted))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c, image.Pt(10, 10)))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.ElementsMatch(t, painted, Classify(img))
}

func TestRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, canvas.New(), image.Pt(8, 6)))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, Classify(img))
}

func TestEncodeSizeAndColours(t *testing.T) {
	c := canvas.New(canvas.WithPixels([]image.Point{{1, 1}, {40, 40}}))
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c, image.Pt(7, 5)))

	raw := buf.Bytes()
	require.Greater(t, len(raw), 26)
	assert.Equal(t, byte(8), raw[24], "bit depth")
	assert.Equal(t, byte(2), raw[25], "colour type should be RGB without alpha")

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 7, 5), img.Bounds())
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if x == 1 && y == 1 {
				assert.Equal(t, [4]uint32{0, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
				continue
			}
			assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a}, "pixel (%d,%d)", x, y)
		}
	}
}

func TestEncodeEmptyViewport(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, canvas.New(), image.Pt(0, 10))
	assert.ErrorIs(t, err, ErrEmptyViewport)
	assert.Zero(t, buf.Len())
}

func TestClassify(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})       // black
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 254})       // nearly opaque
	img.SetNRGBA(2, 0, color.NRGBA{200, 127, 200, 255}) // one dark channel
	img.SetNRGBA(3, 0, color.NRGBA{128, 128, 128, 255}) // threshold is exclusive
	img.SetNRGBA(4, 0, color.NRGBA{0, 0, 0, 0})         // transparent
	img.SetNRGBA(5, 0, color.NRGBA{255, 255, 255, 255}) // white

	assert.ElementsMatch(t, []image.Point{{0, 0}, {2, 0}}, Classify(img))
}

func TestClassifySemiTransparentPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 128})
	src.SetNRGBA(1, 1, color.NRGBA{10, 10, 10, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{1, 1}}, Classify(img))
}

func TestClassifyOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 22))
	img.SetRGBA(11, 21, color.RGBA{0, 0, 0, 255})
	assert.Equal(t, []image.Point{{1, 1}}, Classify(img))
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	src.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{2, 1}}, Classify(img))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.ErrorContains(t, err, "decode image")
}

func TestEnsurePNGExt(t *testing.T) {
	tests := map[string]string{
		"drawing":         "drawing.png",
		"drawing.png":     "drawing.png",
		"drawing.PNG":     "drawing.PNG",
		"drawing.Png":     "drawing.Png",
		"drawing.jpg":     "drawing.jpg.png",
		"dir/archive.png": "dir/archive.png",
		"png":             "png.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, EnsurePNGExt(in), in)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	painted := []image.Point{{2, 2}, {3, 2}, {0, 4}}
	c := canvas.New(canvas.WithPixels(painted))

	written, err := SaveFile(filepath.Join(dir, "sketch"), c, image.Pt(5, 5))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sketch.png"), written)

	got, err := LoadFile(written)
	require.NoError(t, err)
	assert.ElementsMatch(t, painted, got)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("junk"), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "load "+bad)
}

func TestSaveFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	_, err := SaveFile(filepath.Join(dir, "no", "such", "dir", "x.png"), canvas.New(), image.Pt(2, 2))
	assert.Error(t, err)
}
