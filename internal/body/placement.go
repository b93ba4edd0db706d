package body

import (
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// Orbit returns the transform that moves a body from its parent's frame to
// its place on the orbital plane, for an orbital angle theta in degrees.
func (b CelestialBody) Orbit(theta float32) math.Mat4 {
	return math.RotateY(math.Radians(theta)).Mul(math.Translate(b.Distance, PlaneHeight, 0))
}

// Spin returns the self-rotation for a spin angle phi in degrees.
func (b CelestialBody) Spin(phi float32) math.Mat4 {
	return math.RotateAxis(b.SpinAxis(), math.Radians(phi))
}

// Anchor returns the frame a satellite of b orbits in: b's orbital position
// without the plane offset and without b's own spin. A b that is itself a
// satellite revolves at its damped rate, matching where it is drawn.
func (b CelestialBody) Anchor(angle float32) math.Mat4 {
	speed := b.OrbitSpeed
	if b.Parent != "" {
		speed *= SatelliteDamping
	}
	return math.RotateY(math.Radians(angle * speed)).Mul(math.Translate(b.Distance, 0, 0))
}

// Placement returns the world transform of b for the global animation angle.
// ancestors lists the bodies b orbits, outermost first; it is empty for
// bodies orbiting the origin. A satellite's revolution is slowed by
// SatelliteDamping.
func (b CelestialBody) Placement(angle float32, ancestors ...CelestialBody) math.Mat4 {
	frame := math.Identity()
	for _, a := range ancestors {
		frame = frame.Mul(a.Anchor(angle))
	}

	speed := b.OrbitSpeed
	if len(ancestors) > 0 {
		speed *= SatelliteDamping
	}

	return frame.
		Mul(b.Orbit(angle * speed)).
		Mul(b.Spin(angle * b.RotationSpeed))
}

// OrbitPath returns the static guide circle for an orbit of the given radius:
// one point per integer degree on the orbital plane, to be drawn as a closed
// loop.
func OrbitPath(distance float32) []math.Vec3 {
	points := make([]math.Vec3, OrbitPathPoints)
	for i := range points {
		rad := float64(i) * gomath.Pi / 180.0
		points[i] = math.Vec3{
			X: distance * float32(gomath.Cos(rad)),
			Y: PlaneHeight,
			Z: distance * float32(gomath.Sin(rad)),
		}
	}
	return points
}
