// Package controls tracks held keys and pointer motion and maps them to
// flight actions.
package controls

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"

	"github.com/Faultbox/lexcosmos/internal/flight"
)

// Key normalizes a key name so bindings match regardless of case.
func Key(name string) string {
	return cases.Fold().String(name)
}

// State is the input collaborator read by the flight controllers.
// Key names are those of the platform layer ("W", "Left Shift").
type State struct {
	bindings map[flight.Action][]string
	held     map[string]bool
	locked   bool
	dx, dy   float32
}

// New creates a state with the given action bindings.
func New(bindings map[string][]string) (*State, error) {
	s := &State{
		bindings: make(map[flight.Action][]string, len(bindings)),
		held:     make(map[string]bool),
	}
	for name, keys := range bindings {
		a := flight.Action(name)
		if !slices.Contains(flight.Actions, a) {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		for _, k := range keys {
			s.bindings[a] = append(s.bindings[a], Key(k))
		}
	}
	return s, nil
}

// Bindings returns the normalized keys bound to a.
func (s *State) Bindings(a flight.Action) []string {
	return s.bindings[a]
}

// KeyDown marks a key held.
func (s *State) KeyDown(name string) {
	s.held[Key(name)] = true
}

// KeyUp marks a key released.
func (s *State) KeyUp(name string) {
	delete(s.held, Key(name))
}

// ReleaseAll forgets every held key, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	clear(s.held)
}

// Held reports whether a key is down.
func (s *State) Held(name string) bool {
	return s.held[Key(name)]
}

// Pressed reports whether any key bound to a is held.
func (s *State) Pressed(a flight.Action) bool {
	for _, k := range s.bindings[a] {
		if s.held[k] {
			return true
		}
	}
	return false
}

// SetPointerLocked locks or releases the pointer. Motion gathered before
// a release is discarded.
func (s *State) SetPointerLocked(locked bool) {
	s.locked = locked
	if !locked {
		s.dx, s.dy = 0, 0
	}
}

// PointerLocked reports whether the pointer is captured.
func (s *State) PointerLocked() bool {
	return s.locked
}

// MoveMouse accumulates relative motion while the pointer is locked.
func (s *State) MoveMouse(dx, dy float32) {
	if !s.locked {
		return
	}
	s.dx += dx
	s.dy += dy
}

// PointerDelta returns the motion since the last call and resets it.
func (s *State) PointerDelta() (dx, dy float32) {
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}
