// Package colorutil provides shared color utilities for the viewer.
package colorutil

import "image/color"

// Common overlay and chrome colors used throughout the application.
var (
	Black     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray = color.NRGBA{R: 216, G: 216, B: 216, A: 255}
	Cyan      = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta   = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	Green     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow    = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.NRGBA{R: 255, G: 64, B: 64, A: 255}
)

// WithAlpha returns the color with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
