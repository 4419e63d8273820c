// Package flight integrates player input into damped motion and drives
// the camera, in free-look or chase mode.
package flight

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Action is a named flight control.
type Action string

const (
	Forward  Action = "forward"
	Backward Action = "backward"
	Left     Action = "left"
	Right    Action = "right"
	Up       Action = "up"
	Down     Action = "down"
	Sprint   Action = "sprint"
)

// Actions lists every control in a stable order.
var Actions = []Action{Forward, Backward, Left, Right, Up, Down, Sprint}

// Input is the input collaborator read once per tick.
type Input interface {
	Pressed(a Action) bool
	PointerLocked() bool
	PointerDelta() (dx, dy float32)
}

// Controller is a flight mode registered as an entity.
type Controller interface {
	Update(dt float64) error
	Position() math.Vec3
	Velocity() math.Vec3
}

// Params tunes the shared integrator.
type Params struct {
	BaseSpeed        float32
	SprintMultiplier float32
	Damping          float32
}

// Speed returns the acceleration for the sprint state.
func (p Params) Speed(sprint bool) float32 {
	if sprint {
		return p.BaseSpeed * p.SprintMultiplier
	}
	return p.BaseSpeed
}

// State is the integrated kinematic state.
type State struct {
	Position math.Vec3
	Velocity math.Vec3
}

// Integrate advances s by dt. A zero direction adds no acceleration;
// any other direction is normalized first. Damping is exponential so the
// decay does not depend on frame rate.
func Integrate(s *State, dir math.Vec3, sprint bool, p Params, dt float32) {
	if dir.LengthSq() > 0 {
		s.Velocity = s.Velocity.AddScaled(dir.Normalize(), p.Speed(sprint)*dt)
	}
	s.Velocity = s.Velocity.Scale(math32.Exp(-p.Damping * dt))
	s.Position = s.Position.AddScaled(s.Velocity, dt)
}

// axis returns +1, -1 or 0 for a pair of opposing controls.
func axis(in Input, pos, neg Action) float32 {
	var v float32
	if in.Pressed(pos) {
		v++
	}
	if in.Pressed(neg) {
		v--
	}
	return v
}
