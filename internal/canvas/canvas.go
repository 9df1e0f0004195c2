// Package canvas holds the painted pixel set behind the drawing surface.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// DefaultBrushSize is the half-width of the square a single drag sample paints.
const DefaultBrushSize = 3

// Canvas tracks which pixels are painted. Every other pixel is background.
// It is owned by the UI goroutine and is not safe for concurrent use.
type Canvas struct {
	pixels    map[image.Point]struct{}
	brushSize int
	redraw    func()
}

// Option modifies a Canvas during creation.
type Option func(*Canvas)

// WithBrushSize sets the brush half-width. Values below one fall back to DefaultBrushSize.
func WithBrushSize(n int) Option { return func(c *Canvas) { c.brushSize = n } }

// WithPixels seeds the canvas with painted pixels.
func WithPixels(pts []image.Point) Option {
	return func(c *Canvas) {
		for _, p := range pts {
			c.pixels[p] = struct{}{}
		}
	}
}

// WithRedraw registers the callback used to request a repaint after mutations.
func WithRedraw(fn func()) Option { return func(c *Canvas) { c.redraw = fn } }

// New creates an empty Canvas with the provided options.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		pixels:    make(map[image.Point]struct{}),
		brushSize: DefaultBrushSize,
	}
	for _, o := range opts {
		o(c)
	}
	if c.brushSize < 1 {
		c.brushSize = DefaultBrushSize
	}
	return c
}

// BrushSize returns the brush half-width fixed at construction.
func (c *Canvas) BrushSize() int { return c.brushSize }

// Len reports how many pixels are painted.
func (c *Canvas) Len() int { return len(c.pixels) }

// Clear removes every painted pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.requestRedraw()
}

// AddPixels marks pts as painted.
func (c *Canvas) AddPixels(pts []image.Point) {
	for _, p := range pts {
		c.pixels[p] = struct{}{}
	}
	c.requestRedraw()
}

// RemovePixels marks pts as background.
func (c *Canvas) RemovePixels(pts []image.Point) {
	for _, p := range pts {
		delete(c.pixels, p)
	}
	c.requestRedraw()
}

// Replace swaps the painted set for pts with a single repaint request.
func (c *Canvas) Replace(pts []image.Point) {
	clear(c.pixels)
	for _, p := range pts {
		c.pixels[p] = struct{}{}
	}
	c.requestRedraw()
}

// IsPixel reports whether p is painted.
func (c *Canvas) IsPixel(p image.Point) bool {
	_, ok := c.pixels[p]
	return ok
}

// Pixels returns the painted coordinates in no particular order.
func (c *Canvas) Pixels() []image.Point {
	out := make([]image.Point, 0, len(c.pixels))
	for p := range c.pixels {
		out = append(out, p)
	}
	return out
}

// PixelsAround returns the brush footprint for center. The square is
// half-open: x in [center.X-b, center.X+b) and likewise for y, so it holds
// exactly (2b)² points and is not centred on center.
func (c *Canvas) PixelsAround(center image.Point) []image.Point {
	b := c.brushSize
	out := make([]image.Point, 0, 4*b*b)
	for x := center.X - b; x < center.X+b; x++ {
		for y := center.Y - b; y < center.Y+b; y++ {
			out = append(out, image.Pt(x, y))
		}
	}
	return out
}

// Render fills dst with bg and marks each painted pixel inside dst's bounds with fg.
func (c *Canvas) Render(dst draw.Image, bg, fg color.Color) {
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{bg}, image.Point{}, draw.Src)
	for p := range c.pixels {
		if p.In(bounds) {
			dst.Set(p.X, p.Y, fg)
		}
	}
}

func (c *Canvas) requestRedraw() {
	if c.redraw != nil {
		c.redraw()
	}
}
