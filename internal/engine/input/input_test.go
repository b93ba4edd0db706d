package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			want:  Event{Type: EventWindowResize, Width: 800, Height: 600},
			ok:    true,
		},
		{
			name:  "exposed",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_EXPOSED},
			want:  Event{Type: EventExposed},
			ok:    true,
		},
		{
			name:  "key down",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE},
			ok:    true,
		},
		{
			name:  "key repeat ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}},
		},
		{
			name:  "key up ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}},
		},
		{
			name:  "mouse ignored",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 3, Y: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestQuitKey(t *testing.T) {
	if !QuitKey(sdl.SCANCODE_ESCAPE) || !QuitKey(sdl.SCANCODE_Q) {
		t.Error("escape and q should quit")
	}
	if QuitKey(sdl.SCANCODE_SPACE) {
		t.Error("space should not quit")
	}
}
