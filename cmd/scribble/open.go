package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/example/scribble/internal/appstate"
	"github.com/example/scribble/internal/imageio"
)

// openCmd starts the editor with an existing image on the canvas.
type openCmd struct {
	file          string
	fromClipboard bool
	*root
	fs *flag.FlagSet
}

func (o *openCmd) FlagSet() *flag.FlagSet {
	return o.fs
}

func (o *openCmd) Program() string {
	return o.root.program + " open"
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	o := &openCmd{root: r, fs: fs}
	fs.Usage = usageFunc(o)
	fs.StringVar(&o.file, "file", "", "image file to load onto the canvas")
	fs.BoolVar(&o.fromClipboard, "from-clipboard", false, "load the image from the clipboard")
	fs.BoolVar(&o.fromClipboard, "from-clip", false, "load the image from the clipboard (alias)")
	if ok, err := parseFlags(fs, args); !ok {
		if err == nil {
			err = flag.ErrHelp
		}
		return nil, err
	}
	if o.file == "" && fs.NArg() > 0 {
		o.file = fs.Arg(0)
	}
	if o.file == "" && !o.fromClipboard {
		return nil, &UsageError{of: o}
	}
	if o.file != "" && o.fromClipboard {
		return nil, fmt.Errorf("-file and -from-clipboard cannot be combined")
	}
	return o, nil
}

func (o *openCmd) Run() error {
	var (
		pts []image.Point
		err error
	)
	if o.fromClipboard {
		pts, err = pixelsFromClipboard()
	} else {
		pts, err = imageio.LoadFile(o.file)
	}
	if err != nil {
		return err
	}
	if o.file != "" {
		o.root.notifier.Load(o.file)
	}
	return o.root.edit(o.file, []appstate.Option{appstate.WithPixels(pts)})
}

func pixelsFromClipboard() ([]image.Point, error) {
	img, err := readClipboardFn()
	if err != nil {
		return nil, fmt.Errorf("read clipboard image: %w", err)
	}
	return imageio.Classify(img), nil
}
