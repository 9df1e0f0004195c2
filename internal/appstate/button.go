package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/scribble/internal/theme"
)

const (
	menuHeight    = 24
	buttonPadding = 8
	buttonGap     = 2
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// MenuButton is a labelled entry in the menu bar.
type MenuButton struct {
	label  string
	theme  *theme.Theme
	action func()
	rect   image.Rectangle
}

func (b *MenuButton) Draw(dst *image.RGBA, state ButtonState) {
	col := b.theme.ButtonBackground
	switch state {
	case StateHover:
		col = b.theme.ButtonBackgroundHover
	case StatePressed:
		col = b.theme.ButtonBackgroundPress
	}
	draw.Draw(dst, b.rect, &image.Uniform{col}, image.Point{}, draw.Src)
	drawRect(dst, b.rect, b.theme.ButtonBorder, 1)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(b.theme.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+buttonPadding/2, b.rect.Min.Y+(menuHeight+basicfont.Face7x13.Ascent)/2-1)}
	d.DrawString(b.label)
}

func (b *MenuButton) Rect() image.Rectangle { return b.rect }

func (b *MenuButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *MenuButton) Activate() {
	if b.action != nil {
		b.action()
	}
}

// labelWidth is the pixel width of a button sized to fit label.
func labelWidth(label string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(label).Ceil() + buttonPadding
}

// layoutMenu places buttons left to right along the top of the window.
func layoutMenu(buttons []*CacheButton) {
	x := buttonGap
	for _, b := range buttons {
		w := labelWidth(b.Button.(*MenuButton).label)
		b.SetRect(image.Rect(x, buttonGap, x+w, menuHeight-buttonGap))
		x += w + buttonGap
	}
}

// buttonAt returns the index of the button under p or -1.
func buttonAt(buttons []*CacheButton, p image.Point) int {
	for i, b := range buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

func drawMenu(dst *image.RGBA, width int, t *theme.Theme, buttons []*CacheButton, hover, pressed int) {
	draw.Draw(dst, image.Rect(0, 0, width, menuHeight), &image.Uniform{t.MenuBackground}, image.Point{}, draw.Src)
	for i, b := range buttons {
		state := StateDefault
		switch i {
		case pressed:
			state = StatePressed
		case hover:
			state = StateHover
		}
		b.Draw(dst, state)
	}
}

func drawRect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	for i := 0; i < thick; i++ {
		r := rect.Inset(i)
		draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), &image.Uniform{col}, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), &image.Uniform{col}, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), &image.Uniform{col}, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), &image.Uniform{col}, image.Point{}, draw.Src)
	}
}
