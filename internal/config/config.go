// Package config handles orrery configuration loading and management.
package config

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/pkg/math"
)

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig       `yaml:"graphics"`
	Animation  AnimationConfig      `yaml:"animation"`
	Camera     CameraConfig         `yaml:"camera"`
	Projection ProjectionConfig     `yaml:"projection"`
	Bodies     []body.CelestialBody `yaml:"bodies"`
	Logging    LoggingConfig        `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background body.Color `yaml:"background"`
}

// AnimationConfig holds the animation clock settings. Angles are in degrees.
type AnimationConfig struct {
	StartAngle float32       `yaml:"start_angle"`
	Step       float32       `yaml:"step"`
	Interval   time.Duration `yaml:"interval"`
}

// CameraConfig holds the fixed camera placement.
type CameraConfig struct {
	Eye    math.Vec3 `yaml:"eye"`
	Target math.Vec3 `yaml:"target"`
	Up     math.Vec3 `yaml:"up"`
}

// ProjectionConfig holds the perspective parameters. FOV is in degrees.
type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the built-in solar system.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Solar System",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Animation: AnimationConfig{
			StartAngle: 120.0,
			Step:       0.5,
			Interval:   16 * time.Millisecond,
		},
		Camera: CameraConfig{
			Eye:    math.Vec3{X: 0, Y: 30, Z: 70},
			Target: math.Vec3{},
			Up:     math.Up,
		},
		Projection: ProjectionConfig{
			FOV:  90.0,
			Near: 0.1,
			Far:  150.0,
		},
		Bodies: body.DefaultBodies(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise fail later inside the
// renderer. Body tables are checked when the system is built.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Animation.Interval <= 0 {
		return fmt.Errorf("animation: interval must be positive, got %v", c.Animation.Interval)
	}
	if c.Projection.FOV <= 0 || c.Projection.FOV >= 180 {
		return fmt.Errorf("projection: fov %v out of range (0, 180)", c.Projection.FOV)
	}
	if c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near {
		return fmt.Errorf("projection: invalid clip range [%v, %v]", c.Projection.Near, c.Projection.Far)
	}
	if c.Camera.Eye == c.Camera.Target {
		return fmt.Errorf("camera: eye and target coincide at %v", c.Camera.Eye)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("bodies: %w", body.ErrNoBodies)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}
	return nil
}
