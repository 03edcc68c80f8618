package internal

import "math"

// springStiffness is the undamped natural frequency of the curve in
// radians per normalized time unit. With a damping ratio of 0.9 the
// envelope e^(-9t) leaves less than 0.02% of the distance at t=1.
const springStiffness = 10.0

// SpringCurve is a damped-spring ease-out timing curve over normalized time.
type SpringCurve struct {
	Damping  float64 // Damping ratio, (0, 1) for an underdamped spring
	Velocity float64 // Initial velocity in distances per normalized time unit
}

// NewSpringCurve builds a curve from a damping ratio and an initial velocity
// expressed in distances per second for an animation lasting seconds.
func NewSpringCurve(damping, velocityPerSecond, seconds float64) SpringCurve {
	return SpringCurve{
		Damping:  damping,
		Velocity: velocityPerSecond * seconds,
	}
}

// At returns the progress for normalized time t. It is 0 at t<=0 and
// exactly 1 at t>=1. Values in between may overshoot 1 slightly.
func (c SpringCurve) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	zeta := c.Damping
	w0 := springStiffness

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		envelope := math.Exp(-zeta * w0 * t)
		b := (zeta*w0 - c.Velocity) / wd
		return 1 - envelope*(math.Cos(wd*t)+b*math.Sin(wd*t))
	default:
		// Critically damped. Overdamped ratios are treated the same.
		envelope := math.Exp(-w0 * t)
		return 1 - envelope*(1+(w0-c.Velocity)*t)
	}
}
