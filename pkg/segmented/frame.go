package segmented

import (
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
)

// Capsule is a rounded rectangle clipped to its own bounds, with a corner
// radius of half its height.
type Capsule struct {
	Rect     RectF
	Radius   float64
	Material Material
	Visible  bool
}

// Frame is everything a renderer needs to draw the control at one instant.
type Frame struct {
	Width      int32
	Height     int32
	Origin     Point
	Background Capsule
	Highlight  Capsule
	Items      []LaidOutItem
	Selected   int // Index of the selected item, or -1
	Appearance Appearance
	Animating  bool
}

// Frame samples the control at now.
func (c *Control) Frame(now time.Time) Frame {
	bg := c.layout.Background.ToRectF()
	hl := c.highlight.Current(now)

	return Frame{
		Width:  c.layout.Container.W,
		Height: c.layout.Container.H,
		Origin: c.origin,
		Background: Capsule{
			Rect:     bg,
			Radius:   bg.H / 2,
			Material: internal.ResolvedMaterial(c.appearance),
			Visible:  true,
		},
		Highlight: Capsule{
			Rect:     hl,
			Radius:   c.highlight.CornerRadius(now),
			Material: internal.InvertedMaterial(c.appearance),
			Visible:  c.highlight.Visible(),
		},
		Items:      c.LaidOutItems(),
		Selected:   c.SelectedIndex(),
		Appearance: c.appearance,
		Animating:  c.highlight.Animating(now),
	}
}

// Snapshot samples the control at the current clock reading.
func (c *Control) Snapshot() Frame {
	return c.Frame(c.clock())
}
