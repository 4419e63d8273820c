package fields

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// BeltParams configures the asteroid belt.
type BeltParams struct {
	Count       int
	InnerRadius float32
	OuterRadius float32
	Thickness   float32
	MaxSpin     float32 // per-axis spin range, radians per second
	Rotation    float32 // belt rotation about Y, radians per second
}

// DefaultBeltParams returns the standard belt.
func DefaultBeltParams() BeltParams {
	return BeltParams{
		Count:       220,
		InnerRadius: 35,
		OuterRadius: 65,
		Thickness:   6,
		MaxSpin:     0.5,
		Rotation:    0.05,
	}
}

// Asteroid is one rock of the belt.
type Asteroid struct {
	Node *scene.Node
	Spin math.Vec3
}

// AsteroidBelt is a slowly turning ring of tumbling rocks.
type AsteroidBelt struct {
	field
	Asteroids []Asteroid
	params    BeltParams
}

// NewAsteroidBelt generates the belt and adds it to sc.
func NewAsteroidBelt(sc scene.Scene, p BeltParams, rng *rand.Rand) *AsteroidBelt {
	group := scene.NewGroup("asteroid-belt")
	rock := mustHex("#777777")

	asteroids := make([]Asteroid, p.Count)
	for i := range asteroids {
		radius := p.InnerRadius + rng.Float32()*(p.OuterRadius-p.InnerRadius)
		angle := rng.Float32() * 2 * math32.Pi
		y := centered(rng, p.Thickness)

		n := scene.NewNode(scene.KindMesh, "asteroid")
		n.Size = 0.5
		n.Color = rock
		x, z := ringPoint(angle, radius)
		n.Position = math.Vec3{X: x, Y: y, Z: z}
		n.SetUniformScale(0.3 + rng.Float32()*1.2)
		n.Rotation = math.Vec3{
			X: rng.Float32() * math32.Pi,
			Y: rng.Float32() * math32.Pi,
			Z: rng.Float32() * math32.Pi,
		}
		group.Add(n)

		asteroids[i] = Asteroid{
			Node: n,
			Spin: math.Vec3{
				X: centered(rng, p.MaxSpin),
				Y: centered(rng, p.MaxSpin),
				Z: centered(rng, p.MaxSpin),
			},
		}
	}

	return &AsteroidBelt{
		field:     newField(sc, group),
		Asteroids: asteroids,
		params:    p,
	}
}

// Update turns the belt and tumbles every rock.
func (b *AsteroidBelt) Update(dt float64) error {
	d := b.advance(dt)
	b.root.Rotation.Y += b.params.Rotation * d
	for i := range b.Asteroids {
		a := &b.Asteroids[i]
		a.Node.Rotation = a.Node.Rotation.AddScaled(a.Spin, d)
	}
	return nil
}
