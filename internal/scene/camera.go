package scene

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// Camera is a fixed viewpoint.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3
}

// DefaultCamera looks at the sun from above and in front of the orbital plane.
func DefaultCamera() Camera {
	return Camera{
		Eye:    math.Vec3{X: 0, Y: 30, Z: 70},
		Target: math.Vec3{},
		Up:     math.Up,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// Projection is a perspective projection. FOV is in degrees.
type Projection struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultProjection returns the projection for a square viewport.
func DefaultProjection() Projection {
	return Projection{FOV: 90, Aspect: 1, Near: 0.1, Far: 150}
}

// Resized returns p with the aspect ratio of a w x h viewport. Field of view
// and clip planes are kept. A zero height is treated as one pixel.
func (p Projection) Resized(w, h int) Projection {
	if h == 0 {
		h = 1
	}
	p.Aspect = float32(w) / float32(h)
	return p
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() math.Mat4 {
	return math.Perspective(math.Radians(p.FOV), p.Aspect, p.Near, p.Far)
}
