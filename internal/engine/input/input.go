// Package input turns SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a viewer event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKey
	EventPointer
	EventDrag
	EventZoom
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode // EventKey
	Width  int         // EventResize
	Height int         // EventResize
	X, Y   int         // EventPointer and EventDrag: window coordinates
	DX, DY float32     // EventDrag: pointer motion in pixels
	Zoom   float32     // EventZoom: wheel steps, positive away from the user
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// translate maps one SDL event; ok is false for events the viewer ignores.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			break
		}
		if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
			return Event{Type: EventQuit}, true
		}
		return Event{Type: EventKey, Key: e.Keysym.Sym}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return Event{Type: EventResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() != 0 {
			return Event{
				Type: EventDrag,
				X:    int(e.X), Y: int(e.Y),
				DX: float32(e.XRel), DY: float32(e.YRel),
			}, true
		}
		return Event{Type: EventPointer, X: int(e.X), Y: int(e.Y)}, true

	case *sdl.MouseWheelEvent:
		if e.Y != 0 {
			return Event{Type: EventZoom, Zoom: float32(e.Y)}, true
		}
	}
	return Event{}, false
}
