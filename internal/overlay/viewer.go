package overlay

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/framebuffer"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/ui"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// Viewer draws the scene into a framebuffer and shows it behind the debug
// overlay. ImGui drives the loop, so all work happens in frame.
type Viewer struct {
	ui       *ui.Backend
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer
	scene    *scene.Scene
	clock    *scene.Clock
	overlay  *DebugOverlay
	last     time.Time
	log      *zap.Logger
}

// New creates the ImGui window, the renderer and its offscreen target.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		overlay: NewDebugOverlay(),
		log:     logger.Named("overlay"),
	}

	var err error
	v.scene, err = scene.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	g := cfg.Graphics
	v.ui, err = ui.NewBackend(g.Title+" (debug)", g.Width, g.Height, g.Background)
	if err != nil {
		return nil, fmt.Errorf("failed to create ImGui backend: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:      g.Width,
		Height:     g.Height,
		Background: g.Background,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.target, err = framebuffer.New(g.Width, g.Height)
	if err != nil {
		v.renderer.Close()
		return nil, err
	}
	v.scene.Resize(g.Width, g.Height, v.renderer)

	// GL objects must go before the backend destroys the context.
	v.ui.OnShutdown(v.release)

	v.log.Info("debug viewer initialized", zap.Int("bodies", v.scene.System().Len()))
	return v, nil
}

// Run blocks until the window is closed.
func (v *Viewer) Run() {
	v.last = time.Now()
	v.clock = scene.NewClock(v.scene.Animation().Interval, v.last)
	v.ui.Run(v.frame)
	v.log.Info("debug viewer closed", zap.Uint64("ticks", v.scene.Animation().Ticks()))
}

func (v *Viewer) frame() {
	now := time.Now()

	if w, h := ui.ViewportSize(); v.target.Resize(w, h) {
		v.scene.Resize(w, h, v.renderer)
	}

	for n := v.clock.Due(now); n > 0; n-- {
		v.scene.Tick()
	}

	if v.scene.NeedsRedraw() {
		restore := v.target.Bind()
		v.scene.Render(v.renderer)
		restore()
	}
	ui.SceneImage(v.target.Texture())

	v.overlay.Update(float64(now.Sub(v.last))/float64(time.Millisecond), Stats{
		Angle: v.scene.Angle(),
		Ticks: v.scene.Animation().Ticks(),
		Frame: v.scene.Stats(),
	})
	v.last = now
	v.overlay.Render()

	v.handleKeys()
}

func (v *Viewer) handleKeys() {
	switch {
	case ui.KeyPressed(imgui.KeyEscape), ui.KeyPressed(imgui.KeyQ):
		v.ui.Close()
	case ui.KeyPressed(imgui.KeyF3):
		v.overlay.Enabled = !v.overlay.Enabled
	case ui.KeyPressed(imgui.KeyM):
		v.overlay.ShowMemory = !v.overlay.ShowMemory
	}
}

func (v *Viewer) release() {
	if v.target != nil {
		v.target.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
}
