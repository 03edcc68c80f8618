package internal

import (
	"image/color"

	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
)

// Theme defines the visual appearance of the control.
type Theme struct {
	MaterialSystemColor color.NRGBA // Neutral translucent fill
	MaterialLightColor  color.NRGBA // Light-leaning translucent fill
	MaterialDarkColor   color.NRGBA // Dark-leaning translucent fill
	LabelLightColor     color.NRGBA // Label text on light surroundings
	LabelDarkColor      color.NRGBA // Label text on dark surroundings
	HighlightOpacity    float64     // Opacity applied on top of the highlight material
	BackdropPath        string      // Optional SVG drawn behind the control
	FontPath            string      // Optional TrueType or OpenType label font
	FontSize            float64     // Point size used with FontPath
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		MaterialSystemColor: HexToColorAlpha(0xF2F2F7, 0xD9),
		MaterialLightColor:  HexToColorAlpha(0xF9F9F9, 0xD9),
		MaterialDarkColor:   HexToColorAlpha(0x1C1C1E, 0xD9),
		LabelLightColor:     HexToColor(0x000000),
		LabelDarkColor:      HexToColor(0xFFFFFF),
		HighlightOpacity:    constants.HighlightOpacity,
		FontSize:            constants.LabelFontSize,
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// MaterialColor returns the fill color for a material.
func (t Theme) MaterialColor(m Material) color.NRGBA {
	switch m {
	case MaterialLight:
		return t.MaterialLightColor
	case MaterialDark:
		return t.MaterialDarkColor
	default:
		return t.MaterialSystemColor
	}
}

// LabelColor returns the text color for labels under the given appearance.
func (t Theme) LabelColor(a Appearance) color.NRGBA {
	if a == AppearanceDark {
		return t.LabelDarkColor
	}
	return t.LabelLightColor
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.NRGBA {
	return HexToColorAlpha(hex, 0xFF)
}

// HexToColorAlpha converts 0xRRGGBB and an alpha value to a color.
func HexToColorAlpha(hex uint32, alpha uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: alpha,
	}
}

// WithOpacity scales the alpha of c by opacity in [0, 1].
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
