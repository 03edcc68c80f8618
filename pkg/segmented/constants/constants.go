// Package constants defines shared constants, types, and configuration values
// used throughout the segmented control packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the hosts and the demo harness.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	AppearanceEnvVar   = "SEGMENTED_APPEARANCE"
	TouchDeviceEnvVar  = "SEGMENTED_TOUCH_DEVICE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Strip metrics in layout units.
const (
	StripHeight int32 = 40 // Fixed height of the control
	StripMargin int32 = 4  // Uniform inset between the strip edge and the items
)

// Highlight animation parameters.
const (
	HighlightDuration       = 500 * time.Millisecond
	HighlightSpringDamping  = 0.9  // Damping ratio of the spring curve
	HighlightSpringVelocity = 0.9  // Initial velocity, in target distances per second
	HighlightOpacity        = 0.25 // Opacity of the highlight material
)

// Default window metrics for the hosts.
const (
	DefaultWindowWidth  int32 = 375
	DefaultWindowHeight int32 = 120
	DevWindowWidth      int32 = 1024
	DevWindowHeight     int32 = 768
	HostPadding         int32 = 16 // Horizontal gap between the window edge and the control
)

// Label metrics of the raster renderer.
const (
	LabelFontSize float64 = 13 // Points, at 72 DPI
	LabelPadding  int32   = 8  // Minimum space on each side of a label
)

// FrameInterval is the target redraw interval of the hosts (~60fps).
const FrameInterval = 16 * time.Millisecond

// DefaultWatchDebounce is the delay before a changed config file is reloaded.
const DefaultWatchDebounce = 150 * time.Millisecond
