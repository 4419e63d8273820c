package world

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/internal/corpus"
	"github.com/Faultbox/lexcosmos/internal/proximity"
	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

const (
	fragmentSize = 5
	fragmentBob  = 0.6 // amplitude in world units
)

// Fragment is an article label drifting somewhere in the field, revealing
// the article when approached.
type Fragment struct {
	Article corpus.Article
	Node    *scene.Node
	Base    math.Vec3

	sc      scene.Scene
	elapsed float32
}

// NewFragment scatters a marker for art uniformly in a cube of side span
// centered on the origin.
func NewFragment(sc scene.Scene, art corpus.Article, span float32, rng *rand.Rand) *Fragment {
	base := math.Vec3{
		X: (rng.Float32() - 0.5) * span,
		Y: (rng.Float32() - 0.5) * span,
		Z: (rng.Float32() - 0.5) * span,
	}
	label := art.Label
	if label == "" {
		label = "Unknown"
	}
	n := textNode(label, base, fragmentSize, fragmentColor)
	n.Kind = scene.KindSprite
	sc.Add(n)
	return &Fragment{Article: art, Node: n, Base: base, sc: sc}
}

// FragmentOffset is the vertical bob at time t for a marker at x.
func FragmentOffset(t, x float32) float32 {
	return math32.Sin(t+x) * fragmentBob
}

// Name labels the entity in diagnostics.
func (f *Fragment) Name() string {
	return "fragment " + f.Article.Label
}

// Position is the marker's current position.
func (f *Fragment) Position() math.Vec3 {
	return f.Node.Position
}

// Content is what the fragment reveals on approach.
func (f *Fragment) Content() proximity.Content {
	return proximity.NewContent(f.Article.Title, f.Article.Label, f.Article.Content)
}

func (f *Fragment) Update(dt float64) error {
	f.elapsed += float32(dt)
	f.Node.Position.Y = f.Base.Y + FragmentOffset(f.elapsed, f.Base.X)
	return nil
}

func (f *Fragment) Detach() {
	f.sc.Remove(f.Node)
}
