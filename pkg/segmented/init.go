// Package segmented provides a segmented control: a horizontal row of
// mutually-exclusive text items inside a rounded translucent strip, with a
// floating highlight that springs to the selected item and inverts its tint
// against the ambient light/dark appearance.
//
// The package holds no rendering code. A Control computes layout, hit
// tests pointer input and animates the highlight; hosts under render/
// draw the Frame it produces and feed it pointer and appearance events.
// All Control methods must be called from the host's UI goroutine.
package segmented

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
)

// Options configures a Control.
type Options struct {
	Items                []string         // Initial items; the first one becomes selected
	Width                int32            // Initial container width
	Appearance           Appearance       // Initial ambient appearance
	HighlightDuration    time.Duration    // Highlight animation length (default 0.5s)
	SnapInitialHighlight bool             // Place the first highlight without animating it in
	Clock                func() time.Time // Time source for animations (default time.Now)
	Logger               *slog.Logger     // Logger for layout and selection events (default internal logger)
}

func (o Options) withDefaults() Options {
	if o.HighlightDuration == 0 {
		o.HighlightDuration = constants.HighlightDuration
	}
	if o.HighlightDuration < 0 {
		o.HighlightDuration = 0
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = internal.GetInternalLogger()
	}
	return o
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Without a path, logs go to
// stdout only. Call before the first log line is written.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum log level for the control's own
// layout and selection logging.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ParseLogLevel maps "debug", "info", "warn" and "error" to a level.
// Anything else is info.
func ParseLogLevel(level string) slog.Level {
	return internal.ParseLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}

// Theme is the set of colors used by the renderers.
type Theme = internal.Theme

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// SetTheme sets the theme used by renderers that do not carry their own.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return internal.GetTheme()
}

// HexToColor converts 0xRRGGBB to an opaque color.
var HexToColor = internal.HexToColor

// HexToColorAlpha converts 0xRRGGBB and an alpha value to a color.
var HexToColorAlpha = internal.HexToColorAlpha
