// Package dialogs opens the platform's native file and message dialogs.
package dialogs

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user dismisses a file dialog.
var ErrCancelled = dialog.ErrCancelled

// Native shows dialogs through the operating system toolkit. The calls block
// until the user responds.
type Native struct {
	// StartDir is the directory file dialogs open in. Empty means the toolkit default.
	StartDir string
}

// OpenImage asks for an image file to load.
func (n Native) OpenImage() (string, error) {
	b := dialog.File().
		Title("Load Image").
		Filter("Images", "png", "gif", "jpg", "jpeg", "bmp").
		Filter("All files", "*")
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return pick(b.Load())
}

// SaveImage asks for the file to save the drawing to.
func (n Native) SaveImage() (string, error) {
	b := dialog.File().
		Title("Save Image").
		Filter("PNG image", "png")
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return pick(b.Save())
}

// ShowError reports err in a modal message box.
func (n Native) ShowError(err error) {
	dialog.Message("%v", err).Title("Scribble").Error()
}

func pick(path string, err error) (string, error) {
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("file dialog: %w", err)
	}
	if path == "" {
		return "", ErrCancelled
	}
	return path, nil
}
