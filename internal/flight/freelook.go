package flight

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// FreeLookParams tunes the first-person mode.
type FreeLookParams struct {
	Params
	Start       math.Vec3
	Sensitivity float32 // radians per pointer unit
}

// DefaultFreeLookParams returns the standard first-person tuning.
func DefaultFreeLookParams() FreeLookParams {
	return FreeLookParams{
		Params:      Params{BaseSpeed: 50, SprintMultiplier: 3, Damping: 5},
		Start:       math.Vec3{Y: 5, Z: 20},
		Sensitivity: 0.002,
	}
}

// FreeLook flies the camera itself. The pointer turns the view while it
// is locked; movement follows the view and up/down stay world-vertical.
type FreeLook struct {
	state  State
	yaw    float32
	pitch  float32
	params FreeLookParams
	input  Input
	camera *scene.Camera
}

// NewFreeLook places the camera at the start position.
func NewFreeLook(in Input, cam *scene.Camera, p FreeLookParams) *FreeLook {
	f := &FreeLook{
		state:  State{Position: p.Start},
		params: p,
		input:  in,
		camera: cam,
	}
	f.syncCamera()
	return f
}

// Look turns the view by a pointer delta. Pitch is clamped to straight up
// and straight down.
func (f *FreeLook) Look(dx, dy float32) {
	f.yaw -= dx * f.params.Sensitivity
	f.pitch -= dy * f.params.Sensitivity
	f.pitch = math32.Max(-math32.Pi/2, math32.Min(math32.Pi/2, f.pitch))
}

// Orientation returns the current view rotation.
func (f *FreeLook) Orientation() math.Quat {
	return math.QuatFromYawPitch(f.yaw, f.pitch)
}

// YawPitch returns the view angles in radians.
func (f *FreeLook) YawPitch() (yaw, pitch float32) {
	return f.yaw, f.pitch
}

// Direction returns the unnormalized movement direction for the held keys.
func (f *FreeLook) Direction() math.Vec3 {
	q := f.Orientation()
	fwd := q.Rotate(math.Forward)
	right := q.Rotate(math.Right)

	var dir math.Vec3
	dir = dir.AddScaled(fwd, axis(f.input, Forward, Backward))
	dir = dir.AddScaled(right, axis(f.input, Right, Left))
	dir = dir.AddScaled(math.Up, axis(f.input, Up, Down))
	return dir
}

// Update applies pointer look, then integrates movement.
func (f *FreeLook) Update(dt float64) error {
	if f.input.PointerLocked() {
		f.Look(f.input.PointerDelta())
	}
	Integrate(&f.state, f.Direction(), f.input.Pressed(Sprint), f.params.Params, float32(dt))
	f.syncCamera()
	return nil
}

func (f *FreeLook) syncCamera() {
	if f.camera == nil {
		return
	}
	f.camera.Position = f.state.Position
	f.camera.Orientation = f.Orientation()
}

// Position returns the player position.
func (f *FreeLook) Position() math.Vec3 {
	return f.state.Position
}

// Velocity returns the player velocity.
func (f *FreeLook) Velocity() math.Vec3 {
	return f.state.Velocity
}
