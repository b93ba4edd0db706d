package scene

import (
	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/pkg/math"
)

// Surface is the drawing backend a Scene renders into. Model matrices are
// world transforms; the surface combines them with its camera and projection.
type Surface interface {
	// Clear starts a new frame.
	Clear()
	// SetCamera sets the view for subsequent draws.
	SetCamera(cam Camera)
	// SetProjection replaces the projection.
	SetProjection(p Projection)
	// DrawLineLoop draws a closed polyline in world space.
	DrawLineLoop(points []math.Vec3, color body.Color)
	// DrawSphere draws a filled sphere centred at the model origin.
	DrawSphere(model math.Mat4, radius float32, slices, stacks int, color body.Color)
	// DrawTorus draws a filled torus in the model's XY plane, like glutSolidTorus.
	DrawTorus(model math.Mat4, inner, outer float32, sides, rings int, color body.Color)
	// Submit finishes the frame.
	Submit()
}
