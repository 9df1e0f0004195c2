package theme

import (
	"image/color"
)

// Theme defines the colours used to draw the editor window.
type Theme struct {
	Name string

	// Canvas
	Background color.RGBA // Unpainted canvas pixels
	Ink        color.RGBA // Painted pixels while editing; saved files always use black

	// Menu bar
	MenuBackground        color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
}

// Default returns the hardcoded default theme: blue ink on white.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{255, 255, 255, 255},
		Ink:                   color.RGBA{0, 0, 255, 255},
		MenuBackground:        color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
	}
}
