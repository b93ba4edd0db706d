// Package ui wraps the Dear ImGui SDL backend used by the debug viewer.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/body"
)

// Backend owns the ImGui window, its GL context and the frame loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and GL context.
func NewBackend(title string, width, height int, bg body.Color) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(bg.R, bg.G, bg.B, 1.0))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

// OnShutdown registers fn to run while the GL context is still current, just
// before the backend tears it down.
func (b *Backend) OnShutdown(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// Run calls frame once per ImGui frame until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the loop to stop after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// ViewportSize returns the main viewport work area in pixels.
func ViewportSize() (int, int) {
	size := imgui.MainViewport().WorkSize()
	return int(size.X), int(size.Y)
}

// SceneImage fills the viewport with a GL texture, behind every other window.
// The texture is flipped because GL puts its origin at the bottom left.
func SceneImage(texture uint32) {
	viewport := imgui.MainViewport()
	pos, size := viewport.WorkPos(), viewport.WorkSize()

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
		imgui.ImageV(*texRef, size, imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// KeyPressed reports whether key was pressed this frame.
func KeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
