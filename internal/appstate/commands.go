package appstate

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/example/scribble/internal/dialogs"
	"github.com/example/scribble/internal/imageio"
)

// Command is an entry of the editor's menu.
type Command int

const (
	CommandNew Command = iota
	CommandLoad
	CommandSave
)

// Commands lists the menu entries in display order.
var Commands = []Command{CommandNew, CommandLoad, CommandSave}

// String returns the menu label.
func (c Command) String() string {
	switch c {
	case CommandNew:
		return "New Image"
	case CommandLoad:
		return "Load Image"
	case CommandSave:
		return "Save Image"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ErrorPolicy decides how failed commands are reported.
type ErrorPolicy int

const (
	// PolicyIgnore drops failures silently.
	PolicyIgnore ErrorPolicy = iota
	// PolicyLog writes failures to the log.
	PolicyLog
	// PolicyDialog logs failures and shows them in an error dialog.
	PolicyDialog
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyDialog:
		return "dialog"
	default:
		return "log"
	}
}

// ParseErrorPolicy converts a configuration value into an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return PolicyIgnore, nil
	case "", "log":
		return PolicyLog, nil
	case "dialog":
		return PolicyDialog, nil
	}
	return PolicyLog, fmt.Errorf("unknown error policy %q (want ignore, log or dialog)", s)
}

// Dialogs is the modal UI the file commands block on.
type Dialogs interface {
	OpenImage() (string, error)
	SaveImage() (string, error)
	ShowError(err error)
}

var errNoDialogs = errors.New("no file dialogs available")

// Execute runs cmd and reports any failure according to the error policy.
// Cancelling a file dialog is not a failure and yields nil.
func (a *AppState) Execute(cmd Command) error {
	fn, ok := a.handlers[cmd]
	if !ok {
		return fmt.Errorf("unknown command %v", cmd)
	}
	err := fn()
	if errors.Is(err, dialogs.ErrCancelled) {
		log.WithField("command", cmd).Debug("cancelled")
		return nil
	}
	if err != nil {
		a.report(cmd, err)
	}
	return err
}

func (a *AppState) report(cmd Command, err error) {
	switch a.policy {
	case PolicyIgnore:
		return
	case PolicyDialog:
		log.WithError(err).WithField("command", cmd).Error("command failed")
		if a.dialogs != nil {
			a.dialogs.ShowError(err)
		}
	default:
		log.WithError(err).WithField("command", cmd).Error("command failed")
	}
}

func (a *AppState) newImage() error {
	a.canvas.Clear()
	a.file = ""
	return nil
}

// loadImage decodes and classifies the chosen file before touching the
// canvas, so a failed load leaves the drawing as it was.
func (a *AppState) loadImage() error {
	if a.dialogs == nil {
		return errNoDialogs
	}
	path, err := a.dialogs.OpenImage()
	if err != nil {
		return err
	}
	pts, err := imageio.LoadFile(path)
	if err != nil {
		return err
	}
	a.canvas.Replace(pts)
	a.file = path
	log.WithField("file", path).WithField("pixels", len(pts)).Info("loaded image")
	a.notifier.Load(path)
	return nil
}

// saveImage writes the visible viewport, painted pixels black on white.
func (a *AppState) saveImage() error {
	if a.dialogs == nil {
		return errNoDialogs
	}
	path, err := a.dialogs.SaveImage()
	if err != nil {
		return err
	}
	written, err := imageio.SaveFile(path, a.canvas, a.viewport)
	if err != nil {
		return err
	}
	a.file = written
	log.WithField("file", written).WithField("size", a.viewport).Info("saved image")
	a.notifier.Save(written)
	return nil
}
