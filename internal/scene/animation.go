package scene

import "time"

// Animation is the clock that drives every orbit and spin. The angle grows
// without bound: all uses go through rotations, which are periodic, so no
// wrapping is applied.
type Animation struct {
	Angle    float32       // degrees
	Step     float32       // degrees added per tick
	Interval time.Duration // real time between ticks
	ticks    uint64
}

// DefaultAnimation starts at 120 degrees, stepping 0.5 degrees every 16ms.
func DefaultAnimation() Animation {
	return Animation{Angle: 120, Step: 0.5, Interval: 16 * time.Millisecond}
}

// Advance moves the clock one tick forward.
func (a *Animation) Advance() {
	a.Angle += a.Step
	a.ticks++
}

// Ticks returns the number of ticks taken so far.
func (a Animation) Ticks() uint64 {
	return a.ticks
}
