// Package layout places sections, articles and keyword satellites in space.
package layout

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/internal/corpus"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Params holds the layout constants.
type Params struct {
	SectionRadius      float32
	SectionAngleOffset float32 // keeps sections off the axes
	ArticleRadius      float32
	ArticleArc         float32 // articles span this arc around the section
	VerticalJitter     float32 // full width of the article height band
	PaletteSize        int
}

// DefaultParams returns the standard layout.
func DefaultParams() Params {
	return Params{
		SectionRadius:      60,
		SectionAngleOffset: math32.Pi / 4,
		ArticleRadius:      30,
		ArticleArc:         1.5 * math32.Pi,
		VerticalJitter:     10,
		PaletteSize:        6,
	}
}

// SectionPlacement is a section with its position on the outer ring.
type SectionPlacement struct {
	Section  corpus.Section
	Index    int
	Angle    float32
	Position math.Vec3
	Articles []ArticlePlacement
}

// ArticlePlacement is an article with its position around its section.
type ArticlePlacement struct {
	Article    corpus.Article
	Index      int
	Angle      float32 // relative to the section center
	Position   math.Vec3
	Variant    int // index into the planet palette
	Satellites []Satellite
}

// SectionAngle returns the ring angle of section i out of k.
func SectionAngle(i, k int, offset float32) float32 {
	return float32(i)/float32(k)*2*math32.Pi + offset
}

// ArticleAngle returns the arc angle of article j out of n.
func ArticleAngle(j, n int, arc float32) float32 {
	return float32(j) / float32(n) * arc
}

// Generate lays out the sections in order. The rng drives vertical jitter,
// palette variants and satellite orbits; angles do not depend on it.
func Generate(sections []corpus.Section, p Params, rng *rand.Rand) []SectionPlacement {
	out := make([]SectionPlacement, len(sections))
	k := len(sections)

	for i, s := range sections {
		theta := SectionAngle(i, k, p.SectionAngleOffset)
		center := math.Vec3{
			X: math32.Cos(theta) * p.SectionRadius,
			Z: math32.Sin(theta) * p.SectionRadius,
		}

		sp := SectionPlacement{
			Section:  s,
			Index:    i,
			Angle:    theta,
			Position: center,
			Articles: make([]ArticlePlacement, len(s.Articles)),
		}

		n := len(s.Articles)
		for j, a := range s.Articles {
			phi := ArticleAngle(j, n, p.ArticleArc)
			jitter := (rng.Float32() - 0.5) * p.VerticalJitter
			pos := center.Add(math.Vec3{
				X: math32.Cos(phi) * p.ArticleRadius,
				Y: jitter,
				Z: math32.Sin(phi) * p.ArticleRadius,
			})

			variant := 0
			if p.PaletteSize > 0 {
				variant = rng.IntN(p.PaletteSize)
			}

			sp.Articles[j] = ArticlePlacement{
				Article:    a,
				Index:      j,
				Angle:      phi,
				Position:   pos,
				Variant:    variant,
				Satellites: Satellites(a.Keywords, rng),
			}
		}

		out[i] = sp
	}

	return out
}
