package scene

import (
	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/pkg/math"
)

// DrawKind identifies a recorded draw call.
type DrawKind string

const (
	DrawOrbit  DrawKind = "orbit"
	DrawSphere DrawKind = "sphere"
	DrawTorus  DrawKind = "torus"
)

// DrawCall is one recorded primitive.
type DrawCall struct {
	Kind   DrawKind   `yaml:"kind"`
	Center math.Vec3  `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Tube   float32    `yaml:"tube,omitempty"`
	Color  body.Color `yaml:"color"`
	Points int        `yaml:"points,omitempty"`

	Model math.Mat4 `yaml:"-"`
}

// Recorder is a Surface that keeps the draw calls of the last frame instead
// of rendering them. It backs headless frame dumps and tests.
type Recorder struct {
	Camera     Camera
	Projection Projection
	Calls      []DrawCall
	Frames     int
	Open       bool
}

// Clear starts a new frame.
func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Open = true
}

// SetCamera records the camera.
func (r *Recorder) SetCamera(cam Camera) {
	r.Camera = cam
}

// SetProjection records the projection.
func (r *Recorder) SetProjection(p Projection) {
	r.Projection = p
}

// DrawLineLoop records an orbit guide.
func (r *Recorder) DrawLineLoop(points []math.Vec3, color body.Color) {
	var center math.Vec3
	var radius float32
	if len(points) > 0 {
		for _, p := range points {
			center = center.Add(p)
		}
		center = center.Scale(1 / float32(len(points)))
		radius = points[0].Distance(center)
	}
	r.Calls = append(r.Calls, DrawCall{
		Kind:   DrawOrbit,
		Center: center,
		Radius: radius,
		Color:  color,
		Points: len(points),
		Model:  math.Identity(),
	})
}

// DrawSphere records a sphere.
func (r *Recorder) DrawSphere(model math.Mat4, radius float32, _, _ int, color body.Color) {
	r.Calls = append(r.Calls, DrawCall{
		Kind:   DrawSphere,
		Center: model.Origin(),
		Radius: radius,
		Color:  color,
		Model:  model,
	})
}

// DrawTorus records a torus.
func (r *Recorder) DrawTorus(model math.Mat4, inner, outer float32, _, _ int, color body.Color) {
	r.Calls = append(r.Calls, DrawCall{
		Kind:   DrawTorus,
		Center: model.Origin(),
		Radius: outer,
		Tube:   inner,
		Color:  color,
		Model:  model,
	})
}

// Submit closes the frame.
func (r *Recorder) Submit() {
	r.Open = false
	r.Frames++
}

// Count returns the number of recorded calls of kind.
func (r *Recorder) Count(kind DrawKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
