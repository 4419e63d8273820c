package math

import "github.com/chewxy/math32"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := math32.Sincos(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuatFromYawPitch builds a look orientation from yaw (about Y) applied
// after pitch (about X), the YXZ order used by first-person cameras.
func QuatFromYawPitch(yaw, pitch float32) Quat {
	return QuatFromAxisAngle(Up, yaw).Mul(QuatFromAxisAngle(Right, pitch))
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length < 0.0001 {
		return QuatIdentity()
	}
	inv := 1 / length
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Mul multiplies two quaternions (combines rotations, other applied first).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.AddScaled(t, q.W).Add(u.Cross(t))
}
