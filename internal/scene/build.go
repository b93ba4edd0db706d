package scene

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/internal/config"
)

// FromConfig builds a scene from configuration.
func FromConfig(cfg *config.Config) (*Scene, error) {
	sys, err := body.NewSystem(cfg.Bodies)
	if err != nil {
		return nil, fmt.Errorf("building solar system: %w", err)
	}

	anim := Animation{
		Angle:    cfg.Animation.StartAngle,
		Step:     cfg.Animation.Step,
		Interval: cfg.Animation.Interval,
	}
	cam := Camera{
		Eye:    cfg.Camera.Eye,
		Target: cfg.Camera.Target,
		Up:     cfg.Camera.Up,
	}
	proj := Projection{
		FOV:  cfg.Projection.FOV,
		Near: cfg.Projection.Near,
		Far:  cfg.Projection.Far,
	}.Resized(cfg.Graphics.Width, cfg.Graphics.Height)

	return New(sys, anim, cam, proj), nil
}
