// Package math provides the float32 vector, quaternion and matrix types used
// by the world simulation and the renderer.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Common axes.
var (
	Up      = Vec3{0, 1, 0}
	Right   = Vec3{1, 0, 0}
	Forward = Vec3{0, 0, -1}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// AddScaled returns v + other*s.
func (v Vec3) AddScaled(other Vec3, s float32) Vec3 {
	return Vec3{v.X + other.X*s, v.Y + other.Y*s, v.Z + other.Z*s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// Normalize returns a unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp moves v toward target by fraction t.
func (v Vec3) Lerp(target Vec3, t float32) Vec3 {
	return Vec3{
		v.X + (target.X-v.X)*t,
		v.Y + (target.Y-v.Y)*t,
		v.Z + (target.Z-v.Z)*t,
	}
}

// RotateY rotates v about the world Y axis by angle radians.
func (v Vec3) RotateY(angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}
