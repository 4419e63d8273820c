// Package input pumps SDL2 events into the control state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/lexcosmos/internal/controls"
)

// Event types the frame loop reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventFocusLost
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	Button uint8
}

// Input handles all input processing.
type Input struct {
	state  *controls.State
	events []Event
}

// New creates an input handler feeding state.
func New(state *controls.State) *Input {
	return &Input{
		state:  state,
		events: make([]Event, 0, 16),
	}
}

// State returns the control state fed by Update.
func (i *Input) State() *controls.State {
	return i.state
}

// Update polls SDL events, updates the control state and records the
// events the frame loop needs. Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				i.state.ReleaseAll()
				i.SetPointerLocked(false)
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			name := sdl.GetScancodeName(e.Keysym.Scancode)
			if e.Type == sdl.KEYDOWN {
				i.state.KeyDown(name)
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				}
			} else if e.Type == sdl.KEYUP {
				i.state.KeyUp(name)
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.state.MoveMouse(float32(e.XRel), float32(e.YRel))

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{Type: EventMouseDown, Button: e.Button})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// SetPointerLocked captures or releases the pointer using relative mouse
// mode.
func (i *Input) SetPointerLocked(locked bool) {
	sdl.SetRelativeMouseMode(locked)
	i.state.SetPointerLocked(locked)
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
