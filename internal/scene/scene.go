// Package scene drives the solar system: it owns the animation clock, the
// fixed camera and the projection, and turns the body model into draw calls
// on a Surface each frame.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/internal/logger"
)

// Scene holds everything needed to draw one frame. It is not safe for
// concurrent use; Tick and Render must run on the same goroutine.
type Scene struct {
	system     *body.System
	anim       Animation
	camera     Camera
	projection Projection

	dirty bool
	stats FrameStats
}

// FrameStats counts the draw calls issued by the last Render.
type FrameStats struct {
	Frames  uint64
	Orbits  int
	Spheres int
	Rings   int
}

// New creates a scene. The first frame is marked as needing a redraw.
func New(system *body.System, anim Animation, camera Camera, projection Projection) *Scene {
	return &Scene{
		system:     system,
		anim:       anim,
		camera:     camera,
		projection: projection,
		dirty:      true,
	}
}

// Angle returns the current animation angle in degrees.
func (s *Scene) Angle() float32 {
	return s.anim.Angle
}

// Animation returns a copy of the animation clock.
func (s *Scene) Animation() Animation {
	return s.anim
}

// Camera returns the fixed camera.
func (s *Scene) Camera() Camera {
	return s.camera
}

// Projection returns the current projection.
func (s *Scene) Projection() Projection {
	return s.projection
}

// System returns the bodies being drawn.
func (s *Scene) System() *body.System {
	return s.system
}

// Stats returns the draw call counts of the last frame.
func (s *Scene) Stats() FrameStats {
	return s.stats
}

// Tick advances the animation by one step and requests a redraw. It is the
// only mutator of the animation state.
func (s *Scene) Tick() {
	s.anim.Advance()
	s.dirty = true
}

// NeedsRedraw reports whether a frame has been requested since the last Render.
func (s *Scene) NeedsRedraw() bool {
	return s.dirty
}

// Resize updates the projection for a new viewport and pushes it to surf.
func (s *Scene) Resize(w, h int, surf Surface) {
	s.projection = s.projection.Resized(w, h)
	surf.SetProjection(s.projection)
	s.dirty = true

	logger.Debug("projection updated",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Float32("aspect", s.projection.Aspect),
	)
}

// Render draws one frame: orbit guides and bodies in table order.
func (s *Scene) Render(surf Surface) {
	stats := FrameStats{Frames: s.stats.Frames + 1}

	surf.Clear()
	surf.SetCamera(s.camera)

	for i, b := range s.system.Bodies() {
		if !b.Stationary() {
			surf.DrawLineLoop(body.OrbitPath(b.Distance), body.OrbitColor)
			stats.Orbits++
		}
		if s.drawBody(surf, i, b) {
			stats.Rings++
		}
		stats.Spheres++
	}

	surf.Submit()

	s.stats = stats
	s.dirty = false
}

// drawBody places one body and draws it, returning whether a ring was drawn.
func (s *Scene) drawBody(surf Surface, i int, b body.CelestialBody) bool {
	model := s.system.Placement(i, s.anim.Angle)

	ringed := b.HasRing()
	if ringed {
		surf.DrawTorus(model, b.RingRadius, b.RingMajorRadius(), body.RingSides, body.RingSegments, body.RingColor)
	}
	surf.DrawSphere(model, b.Radius, body.SphereSlices, body.SphereStacks, b.Color)
	return ringed
}
