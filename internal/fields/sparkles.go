package fields

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Sparkle is one colored sprite pulsing toward and away from the center.
type Sparkle struct {
	Node  *scene.Node
	Start math.Vec3
	Rate  float32
}

// Sparkles is a rotating cloud of pulsing sprites around the origin.
type Sparkles struct {
	field
	Sparkles []Sparkle
}

// NewSparkles scatters count sprites in a box of half-extent spread
// horizontally and spread/2 vertically.
func NewSparkles(sc scene.Scene, count int, spread float32, rng *rand.Rand) *Sparkles {
	group := scene.NewGroup("sparkles")

	sparkles := make([]Sparkle, count)
	for i := range sparkles {
		n := scene.NewNode(scene.KindSprite, "sparkle")
		n.Position = math.Vec3{
			X: centered(rng, spread*2),
			Y: centered(rng, spread),
			Z: centered(rng, spread*2),
		}
		n.Color = colorful.Hsl(rng.Float64()*360, 0.9, 0.7)
		group.Add(n)

		sparkles[i] = Sparkle{Node: n, Start: n.Position, Rate: rng.Float32() + 0.75}
	}

	return &Sparkles{field: newField(sc, group), Sparkles: sparkles}
}

// Update spins the cloud and pulses each sprite.
func (s *Sparkles) Update(dt float64) error {
	s.advance(dt)
	s.root.Rotation.Y = s.elapsed * 0.1
	for i := range s.Sparkles {
		sp := &s.Sparkles[i]
		pulse := math32.Sin(sp.Rate*s.elapsed)*0.1 + 0.9
		sp.Node.Position = sp.Start.Scale(pulse)
	}
	return nil
}
