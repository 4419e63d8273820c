package flight

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/assets"
	"github.com/Faultbox/lexcosmos/internal/logger"
	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// ChaseParams tunes the third-person craft mode.
type ChaseParams struct {
	Params
	TurnRate float32 // radians per second
	Camera   FollowParams
	// ReadyCamera replaces Camera once the craft model has loaded.
	ReadyCamera FollowParams
	ModelSize   float32 // largest side of the craft after scaling
}

// DefaultChaseParams returns the standard chase tuning.
func DefaultChaseParams() ChaseParams {
	return ChaseParams{
		Params:   Params{BaseSpeed: 30, SprintMultiplier: 2, Damping: 3},
		TurnRate: 2,
		Camera: FollowParams{
			Offset: math.Vec3{Y: 5, Z: 15},
			LookAt: math.Vec3{Y: 2},
			Rate:   6.32,
		},
		ReadyCamera: FollowParams{
			Offset: math.Vec3{Y: 1.5, Z: 4},
			Rate:   6.32,
		},
		ModelSize: 0.5,
	}
}

// Chase flies a craft that turns with left/right and moves along its
// heading, followed by a smoothed camera. The craft stays inert until its
// model has loaded.
type Chase struct {
	state  State
	yaw    float32
	params ChaseParams
	input  Input
	sc     scene.Scene
	body   *scene.Node
	model  *assets.Slot[*assets.Model]
	follow *FollowCamera
}

// NewChase creates the craft and requests its model.
func NewChase(sc scene.Scene, in Input, cam *scene.Camera, models assets.Requester, uri string, p ChaseParams) *Chase {
	c := &Chase{
		params: p,
		input:  in,
		sc:     sc,
		body:   scene.NewNode(scene.KindMesh, "craft"),
		model:  assets.NewSlot[*assets.Model](),
		follow: NewFollowCamera(cam, p.Camera),
	}
	c.follow.Snap(c.state.Position, c.yaw)

	assets.Request(models, uri, c.model, assets.DecodeModel, c.onModel)
	return c
}

func (c *Chase) onModel(m *assets.Model) {
	scale := m.ScaleTo(c.params.ModelSize)
	c.body.SetUniformScale(scale)
	c.body.Size = m.MaxDimension() / 2
	c.body.Color = m.Color
	c.body.Intensity = m.EmissiveLevel
	c.body.Position = c.state.Position
	c.sc.Add(c.body)

	c.follow.Params = c.params.ReadyCamera
	logger.Info("craft ready", zap.String("model", m.Name), zap.Float32("scale", scale))
}

// Ready reports whether the craft model has loaded.
func (c *Chase) Ready() bool {
	_, ok := c.model.Get()
	return ok
}

// ModelState returns the load state of the craft model.
func (c *Chase) ModelState() assets.State {
	return c.model.State()
}

// Direction returns the unnormalized movement direction for the held keys.
func (c *Chase) Direction() math.Vec3 {
	var dir math.Vec3
	dir = dir.AddScaled(math.Forward.RotateY(c.yaw), axis(c.input, Forward, Backward))
	dir = dir.AddScaled(math.Up, axis(c.input, Up, Down))
	return dir
}

// Update turns, integrates and moves the camera. It does nothing until the
// model is ready.
func (c *Chase) Update(dt float64) error {
	if !c.Ready() {
		return nil
	}
	d := float32(dt)

	c.yaw += axis(c.input, Left, Right) * c.params.TurnRate * d
	Integrate(&c.state, c.Direction(), c.input.Pressed(Sprint), c.params.Params, d)

	c.body.Position = c.state.Position
	c.body.Rotation.Y = c.yaw
	c.follow.Follow(c.state.Position, c.yaw, d)
	return nil
}

// Detach removes the craft and ignores a model that arrives later.
func (c *Chase) Detach() {
	c.model.Detach()
	c.sc.Remove(c.body)
}

// Position returns the craft position.
func (c *Chase) Position() math.Vec3 {
	return c.state.Position
}

// Velocity returns the craft velocity.
func (c *Chase) Velocity() math.Vec3 {
	return c.state.Velocity
}

// Yaw returns the craft heading in radians.
func (c *Chase) Yaw() float32 {
	return c.yaw
}

// FollowParams places the chase camera relative to its target.
type FollowParams struct {
	Offset math.Vec3 // rotated by the target yaw
	LookAt math.Vec3
	Rate   float32 // per second; 6.32 closes about 10% per frame at 60 fps
}

// FollowCamera eases a camera toward a point behind its target.
type FollowCamera struct {
	Params FollowParams
	camera *scene.Camera
}

// NewFollowCamera wraps cam.
func NewFollowCamera(cam *scene.Camera, p FollowParams) *FollowCamera {
	return &FollowCamera{Params: p, camera: cam}
}

// Desired returns where the camera is heading for.
func (f *FollowCamera) Desired(target math.Vec3, yaw float32) math.Vec3 {
	return target.Add(f.Params.Offset.RotateY(yaw))
}

// Follow moves the camera a time-normalized step toward its desired spot
// and aims it at the target.
func (f *FollowCamera) Follow(target math.Vec3, yaw, dt float32) {
	k := 1 - math32.Exp(-f.Params.Rate*dt)
	f.camera.Position = f.camera.Position.Lerp(f.Desired(target, yaw), k)
	f.camera.LookAt(target.Add(f.Params.LookAt))
}

// Snap puts the camera at its desired spot immediately.
func (f *FollowCamera) Snap(target math.Vec3, yaw float32) {
	f.camera.Position = f.Desired(target, yaw)
	f.camera.LookAt(target.Add(f.Params.LookAt))
}
