package fields

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

const eps = 1e-4

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func step(t *testing.T, u interface{ Update(float64) error }, frames int, dt float64) {
	t.Helper()
	for i := 0; i < frames; i++ {
		require.NoError(t, u.Update(dt))
	}
}

func TestSpiralPointAtCenterAndRim(t *testing.T) {
	p := DefaultSpiralParams()
	rng := newRNG()

	for i := 0; i < 3; i++ {
		center := SpiralPointAt(i, 0, p, rng)
		assert.Equal(t, math.Vec3{}, center.Jitter)
		assert.InDelta(t, 0, center.Position.Length(), eps)
		assert.InDelta(t, p.Inside.R, center.Color.R, 1e-9)
		assert.InDelta(t, p.Inside.G, center.Color.G, 1e-9)
		assert.InDelta(t, p.Inside.B, center.Color.B, 1e-9)

		rim := SpiralPointAt(i, p.Radius, p, rng)
		assert.InDelta(t, p.Outside.R, rim.Color.R, 1e-9)
		assert.InDelta(t, p.Outside.G, rim.Color.G, 1e-9)
		assert.InDelta(t, p.Outside.B, rim.Color.B, 1e-9)
	}
}

func TestSpiralPointOnArm(t *testing.T) {
	p := DefaultSpiralParams()
	p.Randomness = 0

	// Branch 1 of 3 at r=10 sits at angle 2π/3 + 10·spin.
	pt := SpiralPointAt(1, 10, p, newRNG())
	angle := 2*math32.Pi/3 + 10
	assert.InDelta(t, math32.Cos(angle)*10, pt.Position.X, eps)
	assert.InDelta(t, 0, pt.Position.Y, eps)
	assert.InDelta(t, math32.Sin(angle)*10, pt.Position.Z, eps)
}

func TestSpiralJitterBounded(t *testing.T) {
	p := DefaultSpiralParams()
	rng := newRNG()
	for i := 0; i < 500; i++ {
		r := rng.Float32() * p.Radius
		pt := SpiralPointAt(i, r, p, rng)
		limit := p.Randomness*r + eps
		assert.LessOrEqual(t, math32.Abs(pt.Jitter.X), limit)
		assert.LessOrEqual(t, math32.Abs(pt.Jitter.Y), limit)
		assert.LessOrEqual(t, math32.Abs(pt.Jitter.Z), limit)
	}
}

func TestNewSpiral(t *testing.T) {
	g := scene.NewGraph()
	p := DefaultSpiralParams()
	p.Count = 1000

	s := NewSpiral(g, p, newRNG())
	require.Len(t, s.Points, 1000)
	assert.Equal(t, 1000, s.Node().Points.Len())
	assert.Equal(t, float32(-10), s.Node().Position.Y)
	assert.True(t, s.Node().Points.Swirl)
	assert.Equal(t, 1, g.Len())

	for _, pt := range s.Points {
		assert.GreaterOrEqual(t, pt.Radius, float32(0))
		assert.Less(t, pt.Radius, p.Radius)
		assert.GreaterOrEqual(t, pt.Scale, float32(0))
		assert.Less(t, pt.Scale, float32(1))
	}

	step(t, s, 10, 0.1)
	assert.InDelta(t, 1.0, s.Elapsed(), eps)
	assert.InDelta(t, 1.0, s.Node().Points.Time, eps)

	// Points themselves are not moved on the CPU.
	assert.Equal(t, s.Points[0].Position, s.Node().Points.Positions[0])
}

func TestAsteroidBelt(t *testing.T) {
	g := scene.NewGraph()
	p := DefaultBeltParams()
	b := NewAsteroidBelt(g, p, newRNG())

	require.Len(t, b.Asteroids, 220)
	require.Len(t, b.Node().Children(), 220)

	before := make([]math.Vec3, len(b.Asteroids))
	for i, a := range b.Asteroids {
		pos := a.Node.Position
		r := pos.XZ().Length()
		assert.GreaterOrEqual(t, r, p.InnerRadius-eps)
		assert.Less(t, r, p.OuterRadius+eps)
		assert.GreaterOrEqual(t, pos.Y, float32(-3))
		assert.Less(t, pos.Y, float32(3))

		s := a.Node.Scale.X
		assert.GreaterOrEqual(t, s, float32(0.3))
		assert.Less(t, s, float32(1.5))
		assert.LessOrEqual(t, math32.Abs(a.Spin.X), float32(0.25))
		before[i] = a.Node.Rotation
	}

	step(t, b, 20, 0.1)
	assert.InDelta(t, 0.1, b.Node().Rotation.Y, eps)
	for i, a := range b.Asteroids {
		want := before[i].AddScaled(a.Spin, 2)
		assert.InDelta(t, want.X, a.Node.Rotation.X, eps)
		assert.InDelta(t, want.Z, a.Node.Rotation.Z, eps)
	}
}

func TestNebulae(t *testing.T) {
	g := scene.NewGraph()
	n := NewNebulae(g, DefaultNebulaParams(), newRNG())
	require.Len(t, n.Clouds, 25)

	for _, c := range n.Clouds {
		r := c.Node.Position.XZ().Length()
		assert.GreaterOrEqual(t, r, float32(150)-eps)
		assert.Less(t, r, float32(270)+eps)
		assert.GreaterOrEqual(t, c.BaseOpacity, float32(0.15))
		assert.Less(t, c.BaseOpacity, float32(0.3))
		assert.GreaterOrEqual(t, c.Node.Scale.X, float32(50))
		assert.Equal(t, float32(1), c.Node.Scale.Z)
	}

	// Opacity follows the sine of time and never compounds.
	for frame := 0; frame < 600; frame++ {
		require.NoError(t, n.Update(1.0/60))
		for i, c := range n.Clouds {
			want := NebulaOpacity(i, c.BaseOpacity, n.Elapsed())
			assert.InDelta(t, want, c.Node.Opacity, eps)
			assert.Greater(t, c.Node.Opacity, float32(0.09))
			assert.Less(t, c.Node.Opacity, float32(0.24))
		}
	}
	assert.InDelta(t, 0.6, n.Clouds[0].Node.Rotation.Z, 1e-3)
}

func TestNebulaOpacity(t *testing.T) {
	assert.InDelta(t, 0.12+0.2*0.2, NebulaOpacity(0, 0.2, 0), eps)
	assert.InDelta(t, 0.12+math32.Sin(1)*0.05, NebulaOpacity(1, 0, 0), eps)
}

func TestComets(t *testing.T) {
	g := scene.NewGraph()
	c := NewComets(g, DefaultCometParams(), newRNG())
	require.Len(t, c.Comets, 4)

	for _, cm := range c.Comets {
		assert.GreaterOrEqual(t, cm.Radius, float32(70))
		assert.Less(t, cm.Radius, float32(110))
		assert.GreaterOrEqual(t, cm.Speed, float32(0.08))
		assert.Less(t, cm.Speed, float32(0.2))
		assert.LessOrEqual(t, math32.Abs(cm.Height), float32(10))
		assert.Len(t, cm.Node.Children(), 2)
	}

	start := c.Comets[0].Angle
	step(t, c, 10, 0.5)

	cm := c.Comets[0]
	assert.InDelta(t, start+cm.Speed*5, cm.Angle, eps)
	assert.InDelta(t, math32.Cos(cm.Angle)*cm.Radius, cm.Node.Position.X, eps)
	assert.InDelta(t, cm.Height+math32.Sin(cm.Angle*0.7)*3, cm.Node.Position.Y, eps)
	assert.InDelta(t, math32.Sin(cm.Angle)*cm.Radius, cm.Node.Position.Z, eps)
	assert.InDelta(t, -cm.Angle+math32.Pi/2, cm.Node.Rotation.Y, eps)
}

func TestCometFacesTravel(t *testing.T) {
	for _, angle := range []float32{0, 1, math32.Pi, 4.5} {
		cm := Comet{Radius: 80, Angle: angle}
		nose := math.RotateY(cm.Heading()).TransformVec3(math.Vec3{X: -1})
		travel := math.Vec3{X: -math32.Sin(angle), Z: math32.Cos(angle)}
		assert.InDelta(t, travel.X, nose.X, eps, "angle %v", angle)
		assert.InDelta(t, travel.Z, nose.Z, eps, "angle %v", angle)
	}
}

func TestBeacons(t *testing.T) {
	g := scene.NewGraph()
	b := NewBeacons(g, BeaconPositions)
	require.Len(t, b.Beacons, 3)

	for i, bc := range b.Beacons {
		assert.InDelta(t, float32(i)*math32.Pi/2, bc.Phase, eps)
		assert.Equal(t, BeaconPositions[i].Add(math.Vec3{Y: 2}), bc.Light.Position)
	}

	step(t, b, 10, 0.1)
	for _, bc := range b.Beacons {
		want := 1.5 * (math32.Sin(2*b.Elapsed()+bc.Phase)*0.5 + 1.2)
		assert.InDelta(t, want, bc.Light.Intensity, eps)
		assert.InDelta(t, 0.6, bc.Ring.Rotation.Z, eps)
	}

	// Intensity stays within 1.5·[0.7, 1.7].
	for ts := float32(0); ts < 10; ts += 0.05 {
		v := BeaconIntensity(ts, 0)
		assert.GreaterOrEqual(t, v, float32(1.05)-eps)
		assert.LessOrEqual(t, v, float32(2.55)+eps)
	}
}

func TestStarField(t *testing.T) {
	g := scene.NewGraph()
	s := NewStarField(g, 2000, 400, newRNG())
	require.Equal(t, 2000, s.Node().Points.Len())
	for _, p := range s.Node().Points.Positions {
		assert.LessOrEqual(t, math32.Abs(p.X), float32(200))
		assert.LessOrEqual(t, math32.Abs(p.Y), float32(200))
	}

	step(t, s, 10, 1)
	assert.InDelta(t, 0.5, s.Node().Rotation.Y, eps)
	assert.InDelta(t, 0.2, s.Node().Rotation.X, eps)
}

func TestSparkles(t *testing.T) {
	g := scene.NewGraph()
	s := NewSparkles(g, 200, 30, newRNG())
	require.Len(t, s.Sparkles, 200)

	step(t, s, 20, 0.1)
	assert.InDelta(t, 0.2, s.Node().Rotation.Y, eps)
	for _, sp := range s.Sparkles {
		assert.GreaterOrEqual(t, sp.Rate, float32(0.75))
		pulse := math32.Sin(sp.Rate*s.Elapsed())*0.1 + 0.9
		assert.InDelta(t, sp.Start.X*pulse, sp.Node.Position.X, eps)
		assert.LessOrEqual(t, sp.Node.Position.Length(), sp.Start.Length()+eps)
	}
}

func TestDetachRemovesFromScene(t *testing.T) {
	g := scene.NewGraph()
	s := NewStarField(g, 10, 10, newRNG())
	c := NewComets(g, DefaultCometParams(), newRNG())
	require.Equal(t, 2, g.Len())

	s.Detach()
	c.Detach()
	assert.Zero(t, g.Len())
}

func TestHueShift(t *testing.T) {
	base := mustHex("#4a7cff")
	h0, s0, l0 := base.Hsl()

	shifted := hueShift(base, 0.1)
	h1, s1, l1 := shifted.Hsl()
	assert.InDelta(t, h0+36, h1, 1e-6)
	assert.InDelta(t, s0, s1, 1e-6)
	assert.InDelta(t, l0, l1, 1e-6)

	wrapped := hueShift(mustHex("#ff0000"), -0.25)
	h2, _, _ := wrapped.Hsl()
	assert.InDelta(t, 270, h2, 1e-6)
}
