package fields

import (
	"math/rand/v2"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// StarField is a cube of white points turning slowly about two axes.
type StarField struct {
	field
}

// NewStarField scatters count stars in a cube of the given size.
func NewStarField(sc scene.Scene, count int, size float32, rng *rand.Rand) *StarField {
	buf := &scene.Points{Positions: make([]math.Vec3, count)}
	for i := range buf.Positions {
		buf.Positions[i] = math.Vec3{
			X: centered(rng, size),
			Y: centered(rng, size),
			Z: centered(rng, size),
		}
	}

	node := scene.NewPoints("stars", buf)
	node.Size = 0.5
	return &StarField{field: newField(sc, node)}
}

// Update turns the field.
func (s *StarField) Update(dt float64) error {
	d := s.advance(dt)
	s.root.Rotation.Y += 0.05 * d
	s.root.Rotation.X += 0.02 * d
	return nil
}
