// Package ui implements the board widget on top of Ebitengine: it delivers
// pointer events to the ground components, coalesces their redraw requests,
// and composes the square, figurine, and promotion layers into the frame.
package ui

import "image/color"

// Theme defines the color scheme for the board.
type Theme struct {
	Name           string
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the classic tan and brown board.
func DefaultTheme() *Theme {
	return &Theme{
		Name:           "classic",
		LightSquare:    color.RGBA{240, 217, 181, 255},
		DarkSquare:     color.RGBA{181, 136, 99, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

// BlueTheme returns a cooler palette.
func BlueTheme() *Theme {
	return &Theme{
		Name:           "blue",
		LightSquare:    color.RGBA{222, 227, 230, 255},
		DarkSquare:     color.RGBA{140, 162, 173, 255},
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		Background:     color.RGBA{30, 34, 42, 255},
	}
}

// ThemeByName resolves a preference string to a theme, defaulting to the
// classic board for unknown names.
func ThemeByName(name string) *Theme {
	switch name {
	case "blue":
		return BlueTheme()
	default:
		return DefaultTheme()
	}
}
