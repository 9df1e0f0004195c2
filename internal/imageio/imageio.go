// Package imageio converts between canvas pixel sets and image files.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
)

// Ext is the suffix appended to saved file names.
const Ext = ".png"

// darkThreshold is the 8-bit channel value below which a pixel counts as ink.
const darkThreshold = 128

// ErrEmptyViewport is returned when asked to save an image with no area.
var ErrEmptyViewport = errors.New("imageio: viewport has no area")

// Renderer draws a pixel set onto an image.
type Renderer interface {
	Render(dst draw.Image, bg, fg color.Color)
}

// Decode reads a PNG, GIF, JPEG or BMP image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Classify returns the coordinates of img that count as painted: fully opaque
// pixels with at least one colour channel below 128. Coordinates are relative
// to the image origin.
func Classify(img image.Image) []image.Point {
	b := img.Bounds()
	var out []image.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a != 0xffff {
				continue
			}
			if r>>8 < darkThreshold || g>>8 < darkThreshold || bl>>8 < darkThreshold {
				out = append(out, image.Pt(x-b.Min.X, y-b.Min.Y))
			}
		}
	}
	return out
}

// Flatten renders src at size with painted pixels black on white. The result
// is fully opaque.
func Flatten(src Renderer, size image.Point) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyViewport, size.X, size.Y)
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	src.Render(img, color.White, color.Black)
	return img, nil
}

// Encode writes src as a size.X by size.Y PNG. An opaque RGBA source makes the
// encoder emit 8-bit RGB without an alpha channel.
func Encode(w io.Writer, src Renderer, size image.Point) error {
	img, err := Flatten(src, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EnsurePNGExt appends Ext unless path already ends with it, ignoring case.
// Names such as "drawing.PNG" are left unchanged.
func EnsurePNGExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), Ext) {
		return path
	}
	return path + Ext
}

// LoadFile decodes path and returns its painted coordinates.
func LoadFile(path string) ([]image.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Classify(img), nil
}

// SaveFile writes src as PNG to path, adding the extension when missing, and
// returns the name actually written.
func SaveFile(path string, src Renderer, size image.Point) (string, error) {
	path = EnsurePNGExt(path)
	img, err := Flatten(src, size)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return "", fmt.Errorf("save %s: encode png: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("save %s: closing file: %w", path, err)
	}
	return path, nil
}
