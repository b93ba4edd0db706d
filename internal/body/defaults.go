package body

import "github.com/Faultbox/orrery/pkg/math"

// SaturnTilt is the inclined spin axis that shows off Saturn's ring.
var SaturnTilt = math.Vec3{X: 0, Y: 0.5, Z: 0.5}

// DefaultBodies returns the built-in solar system in draw order.
func DefaultBodies() []CelestialBody {
	return []CelestialBody{
		{Name: "sun", Radius: 12.0, Color: Color{1.0, 1.0, 0.0}},
		{Name: "mercury", Radius: 1.0, Distance: 15.0, OrbitSpeed: 4.0, RotationSpeed: 1.5, Color: Color{0.8, 0.4, 0.2}},
		{Name: "venus", Radius: 1.5, Distance: 20.0, OrbitSpeed: 2.5, RotationSpeed: 1.0, Color: Color{0.9, 0.6, 0.3}},
		{Name: "earth", Radius: 1.5, Distance: 25.0, OrbitSpeed: 1.0, RotationSpeed: 1.0, Color: Color{0.2, 0.5, 1.0}},
		{Name: "moon", Radius: 0.3, Distance: 2.0, OrbitSpeed: 9.0, RotationSpeed: 1.0, Color: Color{0.8, 0.8, 0.8}, Parent: "earth"},
		{Name: "mars", Radius: 1.5, Distance: 30.0, OrbitSpeed: 0.9, RotationSpeed: 1.5, Color: Color{0.78, 0.29, 0.11}},
		{Name: "jupiter", Radius: 4.5, Distance: 40.0, OrbitSpeed: 1.0, RotationSpeed: 2.0, Color: Color{1.0, 0.5, 0.0}},
		{Name: "saturn", Radius: 3.0, Distance: 50.0, OrbitSpeed: 0.5, RotationSpeed: 1.0, RingRadius: 0.5, Color: Color{0.3, 0.27, 0.18}, Tilt: SaturnTilt},
		{Name: "uranus", Radius: 1.6, Distance: 55.0, OrbitSpeed: 1.5, RotationSpeed: 1.5, Color: Color{0.1, 0.29, 0.11}},
		{Name: "neptune", Radius: 1.4, Distance: 60.0, OrbitSpeed: 1.9, RotationSpeed: 1.5, Color: Color{0.78, 0.0, 0.11}},
	}
}
