package fields

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// SpiralParams configures the galaxy spiral.
type SpiralParams struct {
	Count           int
	Radius          float32
	Branches        int
	Spin            float32
	RandomnessPower float32 // >1 pulls jitter toward the arms
	Randomness      float32
	Inside          colorful.Color
	Outside         colorful.Color
	OffsetY         float32
}

// DefaultSpiralParams returns the standard galaxy.
func DefaultSpiralParams() SpiralParams {
	return SpiralParams{
		Count:           50000,
		Radius:          100,
		Branches:        3,
		Spin:            1,
		RandomnessPower: 3,
		Randomness:      0.2,
		Inside:          mustHex("#ff6030"),
		Outside:         mustHex("#1b3984"),
		OffsetY:         -10,
	}
}

// SpiralPoint is one generated galaxy point.
type SpiralPoint struct {
	Radius   float32
	Jitter   math.Vec3
	Position math.Vec3
	Color    colorful.Color
	Scale    float32
}

// Spiral is the galaxy point field. Points do not move on the CPU;
// Update advances the shared clock the renderer swirls them with.
type Spiral struct {
	field
	Points []SpiralPoint
	params SpiralParams
}

// NewSpiral generates the galaxy and adds it to sc.
func NewSpiral(sc scene.Scene, p SpiralParams, rng *rand.Rand) *Spiral {
	points := make([]SpiralPoint, p.Count)
	buf := &scene.Points{
		Positions: make([]math.Vec3, p.Count),
		Colors:    make([]colorful.Color, p.Count),
		Sizes:     make([]float32, p.Count),
		Swirl:     true,
	}

	for i := range points {
		r := rng.Float32() * p.Radius
		pt := SpiralPointAt(i, r, p, rng)
		pt.Scale = rng.Float32()

		points[i] = pt
		buf.Positions[i] = pt.Position
		buf.Colors[i] = pt.Color
		buf.Sizes[i] = pt.Scale
	}

	node := scene.NewPoints("galaxy", buf)
	node.Position = math.Vec3{Y: p.OffsetY}

	return &Spiral{
		field:  newField(sc, node),
		Points: points,
		params: p,
	}
}

// SpiralPointAt builds point i at distance r from the center. Jitter on
// each axis scales with r, so a point at the center sits exactly on it.
func SpiralPointAt(i int, r float32, p SpiralParams, rng *rand.Rand) SpiralPoint {
	branch := float32(i%p.Branches) / float32(p.Branches) * 2 * math32.Pi
	angle := branch + r*p.Spin

	jitter := func() float32 {
		return math32.Pow(rng.Float32(), p.RandomnessPower) * signedUnit(rng) * p.Randomness * r
	}
	j := math.Vec3{X: jitter(), Y: jitter(), Z: jitter()}

	sin, cos := math32.Sincos(angle)
	mix := 0.0
	if p.Radius > 0 {
		mix = float64(r / p.Radius)
	}

	return SpiralPoint{
		Radius:   r,
		Jitter:   j,
		Position: math.Vec3{X: cos*r + j.X, Y: j.Y, Z: sin*r + j.Z},
		Color:    p.Inside.BlendRgb(p.Outside, mix),
	}
}

// Update advances the swirl clock.
func (s *Spiral) Update(dt float64) error {
	s.advance(dt)
	s.root.Points.Time = s.elapsed
	return nil
}
