package internal

import "time"

// Highlight animates a single rectangle towards the bounds of the selected
// item. Retargeting while an animation is in flight starts the new
// animation from the current interpolated position.
type Highlight struct {
	duration time.Duration
	curve    SpringCurve

	from    RectF
	to      RectF
	start   time.Time
	placed  bool
	visible bool
}

// NewHighlight creates a hidden highlight parked at the zero rectangle.
func NewHighlight(duration time.Duration, curve SpringCurve) *Highlight {
	return &Highlight{
		duration: duration,
		curve:    curve,
	}
}

// Retarget animates from the current position at now to target. A target
// equal to the current one is ignored so repeated layout passes do not
// restart the motion.
func (h *Highlight) Retarget(target Rect, now time.Time) bool {
	to := target.ToRectF()
	if h.visible && h.to == to {
		return false
	}

	h.from = h.current(now)
	h.to = to
	h.start = now
	h.placed = true
	h.visible = true
	return true
}

// Place moves the highlight to target without animating.
func (h *Highlight) Place(target Rect, now time.Time) {
	h.from = target.ToRectF()
	h.to = h.from
	h.start = now.Add(-h.duration)
	h.placed = true
	h.visible = true
}

// Hide hides the highlight and parks it at the zero rectangle, so the next
// placement behaves like the first one.
func (h *Highlight) Hide() {
	*h = Highlight{duration: h.duration, curve: h.curve}
}

// Placed reports whether the highlight has ever been given a target since
// creation or the last Hide.
func (h *Highlight) Placed() bool {
	return h.placed
}

// Visible reports whether the highlight should be drawn.
func (h *Highlight) Visible() bool {
	return h.visible
}

// Target returns the rectangle the highlight is moving to.
func (h *Highlight) Target() RectF {
	return h.to
}

// Animating reports whether the highlight is still moving at now.
func (h *Highlight) Animating(now time.Time) bool {
	return h.visible && h.from != h.to && now.Sub(h.start) < h.duration
}

// Current returns the interpolated rectangle at now.
func (h *Highlight) Current(now time.Time) RectF {
	return h.current(now)
}

// CornerRadius returns the capsule radius for the rectangle at now, which is
// always half its current height.
func (h *Highlight) CornerRadius(now time.Time) float64 {
	r := h.current(now).H / 2
	if r < 0 {
		return 0
	}
	return r
}

func (h *Highlight) current(now time.Time) RectF {
	if h.duration <= 0 {
		return h.to
	}

	elapsed := now.Sub(h.start)
	if elapsed >= h.duration {
		return h.to
	}

	t := float64(elapsed) / float64(h.duration)
	return h.from.Lerp(h.to, h.curve.At(t))
}
