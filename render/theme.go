package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MainTheme wraps a base theme and pins the light/dark variant, so the user's
// toggle wins over the system setting.
type MainTheme struct {
	fyne.Theme
	Dark bool
}

// NewMainTheme returns the app theme in the requested variant.
func NewMainTheme(dark bool) MainTheme {
	return MainTheme{Theme: theme.DefaultTheme(), Dark: dark}
}

func (m MainTheme) variant() fyne.ThemeVariant {
	if m.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (m MainTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := m.variant()
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff} // blue 700
	case theme.ColorNameError:
		return color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff} // red 700
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff} // blue grey 900
		}
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff}
		}
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	default:
		return m.Theme.Color(name, variant)
	}
}

func (m MainTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameHeadingText:
		return 28
	default:
		return m.Theme.Size(name)
	}
}
