package overlay

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/Faultbox/orrery/internal/scene"
)

func TestDebugOverlayAveragesFPS(t *testing.T) {
	g := NewWithT(t)
	d := NewDebugOverlay()

	// Four 125 ms frames fill the half-second window exactly.
	for i := 0; i < 4; i++ {
		d.Update(125, Stats{})
	}
	g.Expect(d.FPS()).To(BeNumerically("~", 8, 1e-9))

	// The average holds until the next window completes.
	for i := 0; i < 3; i++ {
		d.Update(125, Stats{})
	}
	g.Expect(d.FPS()).To(BeNumerically("~", 8, 1e-9))
}

func TestDebugOverlaySceneLines(t *testing.T) {
	g := NewWithT(t)
	d := NewDebugOverlay()

	d.Update(16, Stats{
		Angle: 122.5,
		Ticks: 5,
		Frame: scene.FrameStats{Frames: 3, Orbits: 9, Spheres: 10, Rings: 1},
	})

	g.Expect(d.sceneLines()).To(Equal([]string{
		"Angle: 122.5",
		"Ticks: 5",
		"Frames: 3",
		"Draws: 9 orbits, 10 spheres, 1 rings",
	}))
}

func TestDebugOverlayMemoryOnlyWhenShown(t *testing.T) {
	g := NewWithT(t)
	d := NewDebugOverlay()

	d.Update(3000, Stats{})
	g.Expect(d.memStats.Sys).To(BeZero())

	d.ShowMemory = true
	d.Update(3000, Stats{})
	g.Expect(d.memStats.Sys).NotTo(BeZero())
}

func TestFPSColor(t *testing.T) {
	tests := []struct {
		fps  float64
		want [4]float32
	}{
		{10, [4]float32{1.0, 0.2, 0.2, 1.0}},
		{45, [4]float32{1.0, 1.0, 0.2, 1.0}},
		{60, [4]float32{0.2, 1.0, 0.2, 1.0}},
	}

	for _, tt := range tests {
		if got := fpsColor(tt.fps); got != tt.want {
			t.Errorf("fpsColor(%v) = %v, want %v", tt.fps, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
