// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/segmented/pkg/segmented"
)

// PresetName selects this theme in config files.
const PresetName = "cannoli"

// Theme returns a theme with Cannoli's teal and white palette. The
// materials stay translucent so the strip still tints its backdrop.
func Theme() segmented.Theme {
	theme := segmented.DefaultTheme()
	theme.MaterialSystemColor = segmented.HexToColorAlpha(0x008080, 0xD9)
	theme.MaterialLightColor = segmented.HexToColorAlpha(0xFFFFFF, 0xD9)
	theme.MaterialDarkColor = segmented.HexToColorAlpha(0x004C4C, 0xD9)
	theme.LabelLightColor = segmented.HexToColor(0x000000)
	theme.LabelDarkColor = segmented.HexToColor(0xFFFFFF)
	return theme
}
