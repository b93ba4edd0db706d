// Package overlay runs the viewer on the ImGui backend, with the scene drawn
// offscreen and a debug overlay on top.
package overlay

import (
	"fmt"
	"runtime"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/orrery/internal/scene"
)

// Stats is what the overlay reports about the scene.
type Stats struct {
	Angle float32
	Ticks uint64
	Frame scene.FrameStats
}

// DebugOverlay renders frame timing and scene stats in a corner window.
type DebugOverlay struct {
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	memStats      runtime.MemStats
	memUpdateTime float64

	stats Stats

	ShowScene  bool
	ShowMemory bool
	Enabled    bool
}

// NewDebugOverlay creates an overlay showing timing and scene stats.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{
		ShowScene: true,
		Enabled:   true,
	}
}

// Update records one frame. deltaMs is the frame time in milliseconds.
func (d *DebugOverlay) Update(deltaMs float64, stats Stats) {
	d.stats = stats
	d.frameTime = deltaMs
	d.frameAccum++
	d.fpsUpdateTime += deltaMs / 1000.0

	// FPS is averaged over half a second.
	if d.fpsUpdateTime >= 0.5 {
		d.fps = float64(d.frameAccum) / d.fpsUpdateTime
		d.frameAccum = 0
		d.fpsUpdateTime = 0
	}

	if !d.ShowMemory {
		return
	}
	d.memUpdateTime += deltaMs / 1000.0
	if d.memUpdateTime >= 2.0 {
		runtime.ReadMemStats(&d.memStats)
		d.memUpdateTime = 0
	}
}

// FPS returns the last averaged frame rate.
func (d *DebugOverlay) FPS() float64 {
	return d.fps
}

// Render draws the overlay window.
func (d *DebugOverlay) Render() {
	if !d.Enabled {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(230, 0)) // auto height

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##DebugOverlay", nil, flags) {
		c := fpsColor(d.fps)
		imgui.TextColored(imgui.NewVec4(c[0], c[1], c[2], c[3]), fmt.Sprintf("FPS: %.1f", d.fps))
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", d.frameTime))

		if d.ShowScene {
			imgui.Separator()
			for _, line := range d.sceneLines() {
				imgui.Text(line)
			}
		}
		if d.ShowMemory {
			imgui.Separator()
			for _, line := range d.memoryLines() {
				imgui.Text(line)
			}
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

// fpsColor is green at 60 and above, yellow from 30, red below.
func fpsColor(fps float64) [4]float32 {
	switch {
	case fps < 30:
		return [4]float32{1.0, 0.2, 0.2, 1.0}
	case fps < 60:
		return [4]float32{1.0, 1.0, 0.2, 1.0}
	default:
		return [4]float32{0.2, 1.0, 0.2, 1.0}
	}
}

func (d *DebugOverlay) sceneLines() []string {
	f := d.stats.Frame
	return []string{
		fmt.Sprintf("Angle: %.1f", d.stats.Angle),
		fmt.Sprintf("Ticks: %d", d.stats.Ticks),
		fmt.Sprintf("Frames: %d", f.Frames),
		fmt.Sprintf("Draws: %d orbits, %d spheres, %d rings", f.Orbits, f.Spheres, f.Rings),
	}
}

func (d *DebugOverlay) memoryLines() []string {
	return []string{
		fmt.Sprintf("Alloc: %s", formatBytes(d.memStats.Alloc)),
		fmt.Sprintf("Sys: %s", formatBytes(d.memStats.Sys)),
		fmt.Sprintf("GC: %d", d.memStats.NumGC),
	}
}

func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
