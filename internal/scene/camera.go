package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Camera is a perspective camera described by position and orientation.
type Camera struct {
	Position    math.Vec3
	Orientation math.Quat
	FOV         float32 // vertical, degrees
	Near        float32
	Far         float32
}

// NewCamera creates a camera looking down -Z.
func NewCamera() *Camera {
	return &Camera{
		Orientation: math.QuatIdentity(),
		FOV:         75,
		Near:        0.1,
		Far:         1000,
	}
}

// Forward returns the viewing direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Orientation.Rotate(math.Forward)
}

// LookAt orients the camera toward target, keeping it level.
func (c *Camera) LookAt(target math.Vec3) {
	d := target.Sub(c.Position).Normalize()
	if d.LengthSq() == 0 {
		return
	}
	yaw := math32.Atan2(-d.X, -d.Z)
	pitch := math32.Asin(math32.Max(-1, math32.Min(1, d.Y)))
	c.Orientation = math.QuatFromYawPitch(yaw, pitch)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), math.Up)
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FOV*math32.Pi/180, aspect, c.Near, c.Far)
}
