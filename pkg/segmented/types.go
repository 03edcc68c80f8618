package segmented

import "github.com/BrandonKowalski/segmented/pkg/segmented/internal"

// Geometry in layout units.
type (
	Point = internal.Point
	Rect  = internal.Rect
	RectF = internal.RectF
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return internal.Pt(x, y)
}

// LaidOutItem is an item's display text paired with its bounding rectangle.
type LaidOutItem = internal.LaidOutItem

// Appearance is the ambient light/dark color scheme.
type Appearance = internal.Appearance

const (
	AppearanceUnspecified = internal.AppearanceUnspecified
	AppearanceLight       = internal.AppearanceLight
	AppearanceDark        = internal.AppearanceDark
)

// ParseAppearance parses "light", "dark", "unspecified" or "".
func ParseAppearance(raw string) (Appearance, error) {
	return internal.ParseAppearance(raw)
}

// Material is a translucent fill style.
type Material = internal.Material

const (
	MaterialSystem = internal.MaterialSystem
	MaterialLight  = internal.MaterialLight
	MaterialDark   = internal.MaterialDark
)

// InvertedMaterial returns the highlight material for an appearance:
// light yields dark, dark yields light, unspecified yields the system
// material.
func InvertedMaterial(a Appearance) Material {
	return internal.InvertedMaterial(a)
}

// GestureState is the state of the pointer tracker.
type GestureState = internal.GestureState

const (
	GestureIdle     = internal.GestureIdle
	GestureTracking = internal.GestureTracking
)

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "cancel"
	}
}

// PointerEvent is a low-level pointer or touch event in host coordinates.
// ID distinguishes simultaneous contacts. Cancel events carry the ID of the
// contact they end.
type PointerEvent struct {
	Kind  PointerKind
	ID    int64
	Point Point
}

// Pointer ID ranges. Each input source numbers its contacts inside its own
// range, so a touch can never continue or cancel a mouse gesture.
const (
	MousePointerID    int64 = 0       // The mouse
	FingerPointerBase int64 = 1 << 32 // Finger events from the windowing system
	TouchPointerBase  int64 = 1 << 40 // Contacts read directly from a touchscreen
)
