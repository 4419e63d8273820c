package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	v := Vec3{1, 2, 3}
	if got := q.Rotate(v); got.Distance(v) > 0.0001 {
		t.Errorf("identity rotation changed %v to %v", v, got)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	length := math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W))
	if math.Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Up, math.Pi/2)

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	v := Vec3{1, 2, 3}
	q := QuatFromAxisAngle(Up, 0.7)
	want := RotateY(0.7).TransformVec3(v)
	if got := q.Rotate(v); got.Distance(want) > 0.0001 {
		t.Errorf("Rotate = %v, want %v", got, want)
	}
}

func TestQuatFromYawPitch(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       Vec3
	}{
		{"level", 0, 0, Forward},
		{"turned left", math.Pi / 2, 0, Vec3{-1, 0, 0}},
		{"looking up", 0, math.Pi / 2, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromYawPitch(tt.yaw, tt.pitch).Rotate(Forward)
			if got.Distance(tt.want) > 0.0001 {
				t.Errorf("forward = %v, want %v", got, tt.want)
			}
		})
	}
}
