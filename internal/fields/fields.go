// Package fields generates the decorative point and sprite fields that
// surround the corpus: galaxy spiral, asteroid belt, nebulae, comets,
// beacons, star field and sparkles. Element counts and parameters are fixed
// at construction; Update only animates.
package fields

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/scene"
)

// field is embedded by every generator. It owns the root node and the
// elapsed-time clock.
type field struct {
	sc      scene.Scene
	root    *scene.Node
	elapsed float32
}

func newField(sc scene.Scene, root *scene.Node) field {
	sc.Add(root)
	return field{sc: sc, root: root}
}

// Node returns the field's root node.
func (f *field) Node() *scene.Node {
	return f.root
}

// Elapsed returns the seconds accumulated by Update.
func (f *field) Elapsed() float32 {
	return f.elapsed
}

// Detach removes the field from the scene.
func (f *field) Detach() {
	f.sc.Remove(f.root)
}

func (f *field) advance(dt float64) float32 {
	d := float32(dt)
	f.elapsed += d
	return d
}

// signedUnit returns +1 or -1 with equal probability.
func signedUnit(rng *rand.Rand) float32 {
	if rng.Float32() < 0.5 {
		return 1
	}
	return -1
}

// centered returns a uniform sample in [-width/2, width/2).
func centered(rng *rand.Rand, width float32) float32 {
	return (rng.Float32() - 0.5) * width
}

// hueShift rotates the hue of c by turns (1 = full circle).
func hueShift(c colorful.Color, turns float64) colorful.Color {
	h, s, l := c.Hsl()
	h += turns * 360
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return colorful.Hsl(h, s, l)
}

// mustHex parses a constant "#rrggbb" color.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ringPoint(angle, radius float32) (x, z float32) {
	sin, cos := math32.Sincos(angle)
	return cos * radius, sin * radius
}
