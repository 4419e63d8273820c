package layout

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lexcosmos/internal/corpus"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

const eps = 1e-4

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func sectionsOf(counts ...int) []corpus.Section {
	out := make([]corpus.Section, len(counts))
	for i, n := range counts {
		for j := 0; j < n; j++ {
			out[i].Articles = append(out[i].Articles, corpus.Article{Label: "a", Keywords: []string{"k1", "k2", "k3"}})
		}
	}
	return out
}

func TestSectionAngles(t *testing.T) {
	p := DefaultParams()

	for _, k := range []int{1, 2, 3, 5, 8} {
		placed := Generate(sectionsOf(make([]int, k)...), p, newRNG())
		require.Len(t, placed, k)

		seen := map[float32]bool{}
		for i, s := range placed {
			want := float32(i)/float32(k)*2*math32.Pi + math32.Pi/4
			assert.InDelta(t, want, s.Angle, 1e-6, "k=%d i=%d", k, i)
			assert.False(t, seen[s.Angle], "duplicate angle")
			seen[s.Angle] = true

			assert.Zero(t, s.Position.Y)
			assert.InDelta(t, p.SectionRadius, s.Position.Length(), eps)
			assert.InDelta(t, math32.Cos(want)*p.SectionRadius, s.Position.X, eps)
			assert.InDelta(t, math32.Sin(want)*p.SectionRadius, s.Position.Z, eps)
		}
	}
}

func TestArticlePlacement(t *testing.T) {
	p := DefaultParams()
	placed := Generate(sectionsOf(4), p, newRNG())
	require.Len(t, placed, 1)

	center := placed[0].Position
	for j, a := range placed[0].Articles {
		assert.InDelta(t, float32(j)/4*1.5*math32.Pi, a.Angle, eps)

		d := a.Position.Sub(center)
		assert.InDelta(t, p.ArticleRadius, d.XZ().Length(), eps)
		assert.InDelta(t, math32.Cos(a.Angle)*p.ArticleRadius, d.X, eps)
		assert.GreaterOrEqual(t, d.Y, -p.VerticalJitter/2)
		assert.Less(t, d.Y, p.VerticalJitter/2)

		assert.GreaterOrEqual(t, a.Variant, 0)
		assert.Less(t, a.Variant, p.PaletteSize)
		assert.Len(t, a.Satellites, 3)
	}
}

func TestGenerateTwoSections(t *testing.T) {
	records := []corpus.Record{
		corpus.Header("A", "SECTION A"),
		corpus.ArticleRecord("X", "X", nil, nil),
		corpus.ArticleRecord("Y", "Y", nil, nil),
		corpus.Header("B", "SECTION B"),
		corpus.ArticleRecord("Z", "Z", nil, nil),
	}
	doc := corpus.Parse(records)
	p := DefaultParams()
	placed := Generate(doc.Sections, p, newRNG())

	require.Len(t, placed, 2)
	assert.InDelta(t, math32.Pi/4, placed[0].Angle, eps)
	assert.InDelta(t, math32.Pi/4+math32.Pi, placed[1].Angle, eps)

	a := placed[0]
	require.Len(t, a.Articles, 2)
	assert.Equal(t, "X", a.Articles[0].Article.Label)
	assert.Equal(t, "Y", a.Articles[1].Article.Label)
	assert.InDelta(t, 0, a.Articles[0].Angle, eps)
	assert.InDelta(t, 0.75*math32.Pi, a.Articles[1].Angle, eps)
	for _, art := range a.Articles {
		assert.InDelta(t, p.ArticleRadius, art.Position.Sub(a.Position).XZ().Length(), eps)
	}

	require.Len(t, placed[1].Articles, 1)
	assert.Equal(t, "Z", placed[1].Articles[0].Article.Label)
}

func TestGenerateSameSeedSameLayout(t *testing.T) {
	a := Generate(sectionsOf(3, 2), DefaultParams(), newRNG())
	b := Generate(sectionsOf(3, 2), DefaultParams(), newRNG())
	assert.Equal(t, a, b)
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, Generate(nil, DefaultParams(), newRNG()))
}

func TestSatellites(t *testing.T) {
	sats := Satellites([]string{"a", "b", "c", "d"}, newRNG())
	require.Len(t, sats, 4)

	for m, s := range sats {
		assert.InDelta(t, float32(m)/4*2*math32.Pi, s.Angle, eps)
		assert.GreaterOrEqual(t, s.Radius, float32(4))
		assert.Less(t, s.Radius, float32(6))
		assert.GreaterOrEqual(t, s.Speed, float32(0.2))
		assert.Less(t, s.Speed, float32(0.4))
		assert.GreaterOrEqual(t, s.Offset, float32(-1))
		assert.Less(t, s.Offset, float32(1))
	}

	assert.Nil(t, Satellites(nil, newRNG()))
}

func TestSatelliteOrbit(t *testing.T) {
	s := Satellite{Radius: 5, Speed: 0.5, Offset: 0.25}
	parent := math.Vec3{X: 10, Y: 2, Z: -3}

	p := s.Position(parent)
	assert.InDelta(t, 15, p.X, eps)
	assert.InDelta(t, 2.25, p.Y, eps)
	assert.InDelta(t, -3, p.Z, eps)

	s.Advance(math32.Pi) // quarter turn at 0.5 rad/s
	assert.InDelta(t, math32.Pi/2, s.Angle, eps)

	p = s.Position(parent)
	assert.InDelta(t, 10, p.X, eps)
	assert.InDelta(t, 2, p.Z, eps)
	assert.InDelta(t, 5, p.Sub(parent).XZ().Length(), eps)
}
