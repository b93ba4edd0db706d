package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Title != "Solar System" {
		t.Errorf("expected title 'Solar System', got %q", cfg.Graphics.Title)
	}
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}

	if cfg.Animation.StartAngle != 120 {
		t.Errorf("expected start angle 120, got %v", cfg.Animation.StartAngle)
	}
	if cfg.Animation.Step != 0.5 {
		t.Errorf("expected step 0.5, got %v", cfg.Animation.Step)
	}
	if cfg.Animation.Interval != 16*time.Millisecond {
		t.Errorf("expected interval 16ms, got %v", cfg.Animation.Interval)
	}

	if cfg.Camera.Eye != (math.Vec3{X: 0, Y: 30, Z: 70}) {
		t.Errorf("unexpected eye %v", cfg.Camera.Eye)
	}
	if cfg.Projection.FOV != 90 || cfg.Projection.Near != 0.1 || cfg.Projection.Far != 150 {
		t.Errorf("unexpected projection %+v", cfg.Projection)
	}

	if len(cfg.Bodies) != len(body.DefaultBodies()) {
		t.Errorf("expected %d bodies, got %d", len(body.DefaultBodies()), len(cfg.Bodies))
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true

animation:
  start_angle: 0
  step: 1.5
  interval: 33ms

projection:
  fov: 60

bodies:
  - name: star
    radius: 5
    color: {r: 1, g: 1, b: 1}
  - name: rock
    radius: 1
    distance: 10
    orbit_speed: 2
    ring_radius: 0.4
    tilt: {x: 0, y: 1, z: 1}
    color: {r: 0.5, g: 0.5, b: 0.5}

logging:
  level: "debug"
  log_file: "orrery.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	// Untouched keys keep their defaults.
	if cfg.Graphics.Title != "Solar System" {
		t.Errorf("expected default title, got %q", cfg.Graphics.Title)
	}

	if cfg.Animation.StartAngle != 0 || cfg.Animation.Step != 1.5 {
		t.Errorf("unexpected animation %+v", cfg.Animation)
	}
	if cfg.Animation.Interval != 33*time.Millisecond {
		t.Errorf("expected interval 33ms, got %v", cfg.Animation.Interval)
	}
	if cfg.Projection.FOV != 60 || cfg.Projection.Far != 150 {
		t.Errorf("unexpected projection %+v", cfg.Projection)
	}

	if len(cfg.Bodies) != 2 {
		t.Fatalf("expected bodies to be replaced with 2 entries, got %d", len(cfg.Bodies))
	}
	rock := cfg.Bodies[1]
	if rock.Name != "rock" || rock.Distance != 10 || rock.OrbitSpeed != 2 || !rock.HasRing() {
		t.Errorf("unexpected body %+v", rock)
	}
	if rock.Tilt != (math.Vec3{X: 0, Y: 1, Z: 1}) {
		t.Errorf("unexpected tilt %v", rock.Tilt)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "orrery.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/orrery.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find orrery.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		verify func(*testing.T, *Config)
	}{
		{
			name:  "debug flag",
			flags: Flags{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:  "windowed flag",
			flags: Flags{Windowed: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
		},
		{
			name:  "fullscreen flag",
			flags: Flags{Fullscreen: true},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
		},
		{
			name:  "width and height flags",
			flags: Flags{Width: 2560, Height: 1440},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
		},
		{
			name:  "step and log file flags",
			flags: Flags{Step: 2, LogFile: "x.log"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Animation.Step != 2 {
					t.Errorf("expected step 2, got %v", cfg.Animation.Step)
				}
				if cfg.Logging.LogFile != "x.log" {
					t.Errorf("expected log file x.log, got %s", cfg.Logging.LogFile)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(&Flags{Config: configPath, Width: 1920})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	if err := os.WriteFile(configPath, []byte("projection:\n  near: 10\n  far: 5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(&Flags{Config: configPath})
	if err == nil || !strings.Contains(err.Error(), "clip range") {
		t.Errorf("expected clip range error, got %v", err)
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("logging:\n  level: verbose\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(&Flags{Config: configPath})
	if err == nil || !strings.Contains(err.Error(), "verbose") {
		t.Errorf("expected log level error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Graphics.Height = 0 }},
		{"zero interval", func(c *Config) { c.Animation.Interval = 0 }},
		{"flat fov", func(c *Config) { c.Projection.FOV = 180 }},
		{"eye on target", func(c *Config) { c.Camera.Eye = c.Camera.Target }},
		{"no bodies", func(c *Config) { c.Bodies = nil }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Graphics.Width = 800
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	loaded.Bodies = nil
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", loaded.Graphics.Width)
	}
	if len(loaded.Bodies) != len(cfg.Bodies) {
		t.Errorf("expected %d bodies, got %d", len(cfg.Bodies), len(loaded.Bodies))
	}
	if loaded.Animation.Interval != cfg.Animation.Interval {
		t.Errorf("interval: got %v, want %v", loaded.Animation.Interval, cfg.Animation.Interval)
	}
}
