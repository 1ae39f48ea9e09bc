package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CamViewTheme darkens the chrome around the display so the camera
// colors dominate the window.
type CamViewTheme struct{}

var _ fyne.Theme = (*CamViewTheme)(nil)

func (t *CamViewTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x14, G: 0x14, B: 0x1A, A: 0xFF}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x2F, G: 0x6F, B: 0xBF, A: 0xFF}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x2F, G: 0x6F, B: 0xBF, A: 0x80}
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *CamViewTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CamViewTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CamViewTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
