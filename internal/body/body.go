// Package body models the celestial bodies of the scene and the transforms
// that place them for a given animation angle.
package body

import (
	"fmt"

	"github.com/Faultbox/orrery/pkg/math"
)

const (
	// PlaneHeight is the vertical offset shared by every orbit.
	PlaneHeight float32 = 15.0

	// SatelliteDamping scales a satellite's revolution around its parent so it
	// reads differently from the parent's revolution around the sun.
	SatelliteDamping float32 = 0.3

	// OrbitPathPoints is the number of vertices in an orbit guide circle.
	OrbitPathPoints = 360

	// Sphere tessellation used for every body.
	SphereSlices = 50
	SphereStacks = 50

	// Ring torus tessellation, and the ring's major radius relative to the body.
	RingSides              = 2
	RingSegments           = 100
	RingMajorScale float32 = 1.2
)

// Color is a normalized RGB triple.
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

var (
	// OrbitColor is the colour of orbit guide circles.
	OrbitColor = Color{0.5, 0.5, 0.5}
	// RingColor is the colour of planetary rings.
	RingColor = Color{0.7, 0.7, 0.7}
)

func (c Color) valid() bool {
	in := func(v float32) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

// CelestialBody holds the static parameters of one body. Values are never
// mutated after construction; only the animation angle changes over time.
type CelestialBody struct {
	Name          string    `yaml:"name"`
	Radius        float32   `yaml:"radius"`
	Distance      float32   `yaml:"distance"`
	OrbitSpeed    float32   `yaml:"orbit_speed"`
	RotationSpeed float32   `yaml:"rotation_speed"`
	RingRadius    float32   `yaml:"ring_radius"`
	Color         Color     `yaml:"color"`
	Parent        string    `yaml:"parent,omitempty"` // empty: orbits the origin
	Tilt          math.Vec3 `yaml:"tilt,omitempty"`   // spin axis, zero means vertical
}

// Validate checks the per-body invariants.
func (b CelestialBody) Validate() error {
	switch {
	case b.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidBody)
	case b.Radius <= 0:
		return fmt.Errorf("%w: %s: radius %v must be positive", ErrInvalidBody, b.Name, b.Radius)
	case b.Distance < 0:
		return fmt.Errorf("%w: %s: distance %v must not be negative", ErrInvalidBody, b.Name, b.Distance)
	case b.RingRadius < 0:
		return fmt.Errorf("%w: %s: ring radius %v must not be negative", ErrInvalidBody, b.Name, b.RingRadius)
	case !b.Color.valid():
		return fmt.Errorf("%w: %s: color %+v outside [0,1]", ErrInvalidBody, b.Name, b.Color)
	}
	return nil
}

// HasRing reports whether the body renders an equatorial ring.
func (b CelestialBody) HasRing() bool {
	return b.RingRadius > 0
}

// Stationary reports whether the body sits at the centre without orbiting.
func (b CelestialBody) Stationary() bool {
	return b.Distance == 0 && b.OrbitSpeed == 0
}

// SpinAxis returns the axis the body spins about.
func (b CelestialBody) SpinAxis() math.Vec3 {
	if b.Tilt.IsZero() {
		return math.Up
	}
	return b.Tilt
}

// RingMajorRadius returns the distance from the body centre to the middle of
// the ring tube. RingRadius is the tube radius.
func (b CelestialBody) RingMajorRadius() float32 {
	return b.Radius * RingMajorScale
}
