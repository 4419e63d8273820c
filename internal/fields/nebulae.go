package fields

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// NebulaParams configures the nebula ring.
type NebulaParams struct {
	Count      int
	MinRadius  float32
	RadiusSpan float32
	Height     float32
	Tint       colorful.Color
	HueJitter  float64 // full hue range in turns
	Rotation   float32 // sprite spin, radians per second
}

// DefaultNebulaParams returns the standard nebulae.
func DefaultNebulaParams() NebulaParams {
	return NebulaParams{
		Count:      25,
		MinRadius:  150,
		RadiusSpan: 120,
		Height:     40,
		Tint:       mustHex("#4a7cff"),
		HueJitter:  0.2,
		Rotation:   0.06,
	}
}

// Nebula is one cloud sprite.
type Nebula struct {
	Node        *scene.Node
	BaseOpacity float32
}

// Nebulae is a wide ring of faint, breathing cloud sprites.
type Nebulae struct {
	field
	Clouds []Nebula
	params NebulaParams
}

// NewNebulae generates the clouds and adds them to sc.
func NewNebulae(sc scene.Scene, p NebulaParams, rng *rand.Rand) *Nebulae {
	group := scene.NewGroup("nebulae")

	clouds := make([]Nebula, p.Count)
	for i := range clouds {
		n := scene.NewNode(scene.KindSprite, "nebula")
		n.SetUniformScale(50 + rng.Float32()*100)
		n.Scale.Z = 1
		n.Color = hueShift(p.Tint, (rng.Float64()-0.5)*p.HueJitter)
		base := 0.15 + rng.Float32()*0.15
		n.Opacity = base

		radius := p.MinRadius + rng.Float32()*p.RadiusSpan
		angle := rng.Float32() * 2 * math32.Pi
		x, z := ringPoint(angle, radius)
		n.Position = math.Vec3{X: x, Y: centered(rng, p.Height), Z: z}
		group.Add(n)

		clouds[i] = Nebula{Node: n, BaseOpacity: base}
	}

	return &Nebulae{
		field:  newField(sc, group),
		Clouds: clouds,
		params: p,
	}
}

// NebulaOpacity returns the opacity of cloud i at time t.
func NebulaOpacity(i int, base, t float32) float32 {
	return 0.12 + math32.Sin(t*0.2+float32(i))*0.05 + base*0.2
}

// Update breathes the opacity of every cloud and spins it in place.
func (n *Nebulae) Update(dt float64) error {
	d := n.advance(dt)
	for i := range n.Clouds {
		c := &n.Clouds[i]
		c.Node.Opacity = NebulaOpacity(i, c.BaseOpacity, n.elapsed)
		c.Node.Rotation.Z += n.params.Rotation * d
	}
	return nil
}
