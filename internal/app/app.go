// Package app runs the windowed viewer: it wires the window, renderer and
// scene together and drives them from a single-threaded loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// App is the windowed viewer.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	clock    *scene.Clock
	log      *zap.Logger
}

// New creates the window, GL renderer and scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	sc, err := scene.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.scene = sc

	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		Background: cfg.Graphics.Background,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.scene.Resize(w, h, a.renderer)

	a.input = input.New()

	a.log.Info("viewer initialized",
		zap.Int("bodies", sc.System().Len()),
		zap.Float32("start_angle", sc.Angle()),
	)
	return a, nil
}

// Run enters the event loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true
	a.clock = scene.NewClock(a.scene.Animation().Interval, time.Now())

	frames := 0
	fpsTimer := time.Now()

	a.log.Info("starting event loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		for n := a.clock.Due(time.Now()); n > 0; n-- {
			a.scene.Tick()
		}

		if a.scene.NeedsRedraw() {
			a.scene.Render(a.renderer)
			a.window.SwapBuffers()
			frames++
		}

		if time.Since(fpsTimer) >= time.Second {
			st := a.scene.Stats()
			a.log.Debug("fps",
				zap.Int("frames", frames),
				zap.Float32("angle", a.scene.Angle()),
				zap.Int("spheres", st.Spheres),
				zap.Int("orbits", st.Orbits),
				zap.Int("rings", st.Rings),
			)
			frames = 0
			fpsTimer = time.Now()
		}

		// Sleep until the next tick instead of spinning; with VSync the
		// swap already paces the loop.
		if wait := a.clock.Until(time.Now()); wait > 0 {
			time.Sleep(wait)
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := a.window.DrawableSize()
			a.renderer.Viewport(w, h)
			a.scene.Resize(w, h, a.renderer)
		case input.EventExposed:
			a.scene.Render(a.renderer)
			a.window.SwapBuffers()
		case input.EventKeyDown:
			if input.QuitKey(event.Key) {
				a.running = false
			}
		}
	}
}

// Close releases the renderer and window.
func (a *App) Close() {
	a.log.Info("closing viewer", zap.Uint64("ticks", a.scene.Animation().Ticks()))

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
