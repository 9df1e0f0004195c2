// Package appstate runs the editor window: a menu bar over a canvas that
// the primary button paints on and the secondary button erases.
package appstate

import (
	"image"
	"image/draw"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/scribble/internal/canvas"
	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/gesture"
	"github.com/example/scribble/internal/notify"
	"github.com/example/scribble/internal/theme"
)

// AppState holds the editor's canvas and the window state around it.
// Everything except NotifyImageChanged must be called from the event loop.
type AppState struct {
	canvas   *canvas.Canvas
	gesture  gesture.Gesture
	dialogs  Dialogs
	notifier *notify.Notifier
	theme    *theme.Theme
	policy   ErrorPolicy
	handlers map[Command]func() error

	title     string
	file      string
	brushSize int
	pixels    []image.Point

	window   image.Point // whole window, menu bar included
	viewport image.Point // canvas area below the menu bar
	frame    *image.RGBA

	buttons []*CacheButton
	hover   int
	pressed int

	updateCh chan struct{}
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithCanvasSize sets the initial canvas viewport in pixels.
func WithCanvasSize(width, height int) Option {
	return func(a *AppState) {
		if width > 0 && height > 0 {
			a.viewport = image.Pt(width, height)
		}
	}
}

// WithBrushSize sets the brush half-width used for painting and erasing.
func WithBrushSize(n int) Option { return func(a *AppState) { a.brushSize = n } }

// WithPixels starts the editor with pts already painted.
func WithPixels(pts []image.Point) Option { return func(a *AppState) { a.pixels = pts } }

// WithFile records the file the initial drawing came from.
func WithFile(path string) Option { return func(a *AppState) { a.file = path } }

// WithTheme sets the window colours.
func WithTheme(t *theme.Theme) Option {
	return func(a *AppState) {
		if t != nil {
			a.theme = t
		}
	}
}

// WithDialogs sets the file and error dialogs used by the menu commands.
func WithDialogs(d Dialogs) Option { return func(a *AppState) { a.dialogs = d } }

// WithErrorPolicy sets how failed commands are reported.
func WithErrorPolicy(p ErrorPolicy) Option { return func(a *AppState) { a.policy = p } }

// WithNotifier sets the desktop notifier for save and load.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.title = title } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		theme:     theme.Default(),
		policy:    PolicyLog,
		title:     "Scribble",
		brushSize: canvas.DefaultBrushSize,
		viewport:  image.Pt(config.DefaultWidth, config.DefaultHeight),
		hover:     -1,
		pressed:   -1,
		updateCh:  make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	a.canvas = canvas.New(
		canvas.WithBrushSize(a.brushSize),
		canvas.WithPixels(a.pixels),
		canvas.WithRedraw(a.NotifyImageChanged),
	)
	a.pixels = nil
	a.window = a.viewport.Add(image.Pt(0, menuHeight))
	a.handlers = map[Command]func() error{
		CommandNew:  a.newImage,
		CommandLoad: a.loadImage,
		CommandSave: a.saveImage,
	}
	for _, cmd := range Commands {
		a.buttons = append(a.buttons, &CacheButton{Button: &MenuButton{
			label:  cmd.String(),
			theme:  a.theme,
			action: func() { _ = a.Execute(cmd) },
		}})
	}
	layoutMenu(a.buttons)
	return a
}

// Canvas returns the drawing being edited.
func (a *AppState) Canvas() *canvas.Canvas { return a.canvas }

// File returns the path last loaded or saved, or "" for an unsaved drawing.
func (a *AppState) File() string { return a.file }

// Viewport returns the size of the canvas area, which is also the size of saved images.
func (a *AppState) Viewport() image.Point { return a.viewport }

// NotifyImageChanged requests a repaint of the UI. It is safe to call from any goroutine.
func (a *AppState) NotifyImageChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

// Resize records a new window size. The menu bar keeps its height and the
// canvas viewport takes the rest.
func (a *AppState) Resize(e size.Event) {
	a.window = image.Pt(max(e.WidthPx, 0), max(e.HeightPx, 0))
	a.viewport = image.Pt(a.window.X, max(a.window.Y-menuHeight, 0))
}

// Pointer handles a mouse event in window coordinates.
func (a *AppState) Pointer(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	if a.gesture.State() == gesture.Idle && p.Y < menuHeight {
		a.pointerMenu(p, e)
		return
	}
	a.setHover(-1)

	cp := p.Sub(image.Pt(0, menuHeight))
	switch e.Direction {
	case mouse.DirPress:
		a.gesture.Press(e.Button)
	case mouse.DirRelease:
		a.gesture.Release()
	case mouse.DirNone:
		switch a.gesture.Move() {
		case gesture.ActionPaint:
			a.canvas.AddPixels(a.canvas.PixelsAround(cp))
		case gesture.ActionErase:
			a.canvas.RemovePixels(a.canvas.PixelsAround(cp))
		}
	}
}

func (a *AppState) pointerMenu(p image.Point, e mouse.Event) {
	idx := buttonAt(a.buttons, p)
	a.setHover(idx)
	switch {
	case e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft && idx >= 0:
		a.pressed = idx
		a.NotifyImageChanged()
		a.buttons[idx].Activate()
		a.pressed = -1
		a.NotifyImageChanged()
	case e.Direction == mouse.DirRelease:
		a.gesture.Release()
	}
}

func (a *AppState) setHover(idx int) {
	if a.hover != idx {
		a.hover = idx
		a.NotifyImageChanged()
	}
}

// drawFrame renders the menu bar and the canvas into dst, which covers the window.
func (a *AppState) drawFrame(dst *image.RGBA) {
	if a.frame == nil || a.frame.Bounds().Size() != a.viewport {
		a.frame = image.NewRGBA(image.Rectangle{Max: a.viewport})
	}
	a.canvas.Render(a.frame, a.theme.Background, a.theme.Ink)
	draw.Draw(dst, a.frame.Bounds().Add(image.Pt(0, menuHeight)), a.frame, image.Point{}, draw.Src)
	drawMenu(dst, a.window.X, a.theme, a.buttons, a.hover, a.pressed)
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main opens the editor window on s and processes events until it closes.
func (a *AppState) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: a.window.X, Height: a.window.Y, Title: a.title})
	if err != nil {
		log.WithError(err).Fatal("new window")
	}
	defer w.Release()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	var buf screen.Buffer
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			a.Resize(e)
			w.Send(paint.Event{})
		case paint.Event:
			buf = a.paint(s, w, buf)
		case mouse.Event:
			a.Pointer(e)
		case error:
			log.WithError(e).Error("window event")
		}
	}
}

// paint draws a frame into buf, replacing it when the window size changed,
// and returns the buffer to reuse next time.
func (a *AppState) paint(s screen.Screen, w screen.Window, buf screen.Buffer) screen.Buffer {
	if a.window.X <= 0 || a.window.Y <= 0 {
		return buf
	}
	if buf == nil || buf.Size() != a.window {
		if buf != nil {
			buf.Release()
		}
		nb, err := s.NewBuffer(a.window)
		if err != nil {
			log.WithError(err).Error("new buffer")
			return nil
		}
		buf = nb
	}
	a.drawFrame(buf.RGBA())
	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
	return buf
}
