package layout

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Satellite is a keyword marker orbiting an article.
type Satellite struct {
	Keyword string
	Radius  float32
	Speed   float32 // radians per second
	Angle   float32
	Offset  float32 // height above the parent
}

// Satellites creates one satellite per keyword, evenly phased.
func Satellites(keywords []string, rng *rand.Rand) []Satellite {
	if len(keywords) == 0 {
		return nil
	}

	out := make([]Satellite, len(keywords))
	for m, kw := range keywords {
		out[m] = Satellite{
			Keyword: kw,
			Angle:   float32(m) / float32(len(keywords)) * 2 * math32.Pi,
			Radius:  4 + rng.Float32()*2,
			Speed:   0.2 + rng.Float32()*0.2,
			Offset:  (rng.Float32() - 0.5) * 2,
		}
	}
	return out
}

// Advance moves the satellite along its orbit.
func (s *Satellite) Advance(dt float32) {
	s.Angle += s.Speed * dt
}

// Position returns the satellite position around parent.
func (s Satellite) Position(parent math.Vec3) math.Vec3 {
	sin, cos := math32.Sincos(s.Angle)
	return parent.Add(math.Vec3{X: cos * s.Radius, Y: s.Offset, Z: sin * s.Radius})
}
