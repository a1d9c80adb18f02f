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
		{"quit", &sdl.QuitEvent{}, Event{Type: EventQuit}, true},
		{
			"escape",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			Event{Type: EventQuit}, true,
		},
		{
			"escape released",
			&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			Event{}, false,
		},
		{
			"other key",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_1, Sym: sdl.K_1}},
			Event{Type: EventKey, Key: sdl.K_1}, true,
		},
		{
			"key repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_1, Sym: sdl.K_1}},
			Event{}, false,
		},
		{
			"resize",
			&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventResize, Width: 800, Height: 600}, true,
		},
		{
			"drag",
			&sdl.MouseMotionEvent{State: sdl.ButtonLMask(), X: 10, Y: 20, XRel: 4, YRel: -2},
			Event{Type: EventDrag, X: 10, Y: 20, DX: 4, DY: -2}, true,
		},
		{
			"hover",
			&sdl.MouseMotionEvent{X: 10, Y: 20, XRel: 4, YRel: -2},
			Event{Type: EventPointer, X: 10, Y: 20}, true,
		},
		{
			"wheel",
			&sdl.MouseWheelEvent{Y: 1},
			Event{Type: EventZoom, Zoom: 1}, true,
		},
		{
			"wheel toward user",
			&sdl.MouseWheelEvent{Y: -2},
			Event{Type: EventZoom, Zoom: -2}, true,
		},
		{
			"horizontal wheel",
			&sdl.MouseWheelEvent{X: 3},
			Event{}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
