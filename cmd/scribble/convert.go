package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/example/scribble/internal/canvas"
	"github.com/example/scribble/internal/clipboard"
	"github.com/example/scribble/internal/imageio"
)

var (
	readClipboardFn  = clipboard.ReadImage
	writeClipboardFn = clipboard.WriteImage
)

// convertCmd loads an image the way the editor does and saves it without opening a window,
// leaving only black ink on white.
type convertCmd struct {
	file          string
	output        string
	width         int
	height        int
	fromClipboard bool
	toClipboard   bool
	*root
	fs *flag.FlagSet
}

func (c *convertCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *convertCmd) Program() string {
	return c.root.program + " convert"
}

func parseConvertCmd(args []string, r *root) (*convertCmd, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	c := &convertCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "image file to read")
	fs.StringVar(&c.output, "output", "", "PNG file to write; .png is appended when missing")
	fs.IntVar(&c.width, "width", 0, "output width in pixels (default: input width)")
	fs.IntVar(&c.height, "height", 0, "output height in pixels (default: input height)")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&c.fromClipboard, "from-clip", false, "read the input image from the clipboard (alias)")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	if ok, err := parseFlags(fs, args); !ok {
		if err == nil {
			err = flag.ErrHelp
		}
		return nil, err
	}
	switch {
	case c.file == "" && !c.fromClipboard:
		return nil, &UsageError{of: c}
	case c.file != "" && c.fromClipboard:
		return nil, fmt.Errorf("-file and -from-clipboard cannot be combined")
	case c.output == "" && !c.toClipboard:
		return nil, fmt.Errorf("an -output file or -to-clipboard is required")
	case c.width < 0 || c.height < 0:
		return nil, fmt.Errorf("-width and -height must not be negative")
	}
	return c, nil
}

func (c *convertCmd) Run() error {
	src, err := c.input()
	if err != nil {
		return err
	}
	pts := imageio.Classify(src)
	drawing := canvas.New(canvas.WithPixels(pts))

	size := src.Bounds().Size()
	if c.width > 0 {
		size.X = c.width
	}
	if c.height > 0 {
		size.Y = c.height
	}
	entry := log.WithField("pixels", drawing.Len()).WithField("size", size)

	if c.output != "" {
		written, err := imageio.SaveFile(c.output, drawing, size)
		if err != nil {
			return err
		}
		entry.WithField("file", written).Info("converted image")
		c.root.notifier.Save(written)
	}
	if c.toClipboard {
		img, err := imageio.Flatten(drawing, size)
		if err != nil {
			return err
		}
		if err := writeClipboardFn(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		entry.Info("copied image to clipboard")
	}
	return nil
}

func (c *convertCmd) input() (image.Image, error) {
	if c.fromClipboard {
		img, err := readClipboardFn()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	}
	f, err := os.Open(c.file)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.file, err)
	}
	defer f.Close()
	img, err := imageio.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.file, err)
	}
	return img, nil
}
