package fields

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// CometParams configures the comets.
type CometParams struct {
	Count      int
	MinRadius  float32
	RadiusSpan float32
	MinSpeed   float32
	SpeedSpan  float32
	Height     float32
}

// DefaultCometParams returns the standard comets.
func DefaultCometParams() CometParams {
	return CometParams{
		Count:      4,
		MinRadius:  70,
		RadiusSpan: 40,
		MinSpeed:   0.08,
		SpeedSpan:  0.12,
		Height:     20,
	}
}

// Comet orbits the origin on a gently bobbing circle.
type Comet struct {
	Node   *scene.Node
	Radius float32
	Speed  float32
	Angle  float32
	Height float32
}

// Position returns the comet position for its current angle.
func (c *Comet) Position() math.Vec3 {
	sin, cos := math32.Sincos(c.Angle)
	return math.Vec3{
		X: cos * c.Radius,
		Y: c.Height + math32.Sin(c.Angle*0.7)*3,
		Z: sin * c.Radius,
	}
}

// Heading returns the yaw that turns the comet's -X axis along its orbit.
func (c *Comet) Heading() float32 {
	return -c.Angle + math32.Pi/2
}

func (c *Comet) place() {
	c.Node.Position = c.Position()
	c.Node.Rotation.Y = c.Heading()
}

// Comets is a handful of comets on independent orbits.
type Comets struct {
	field
	Comets []Comet
}

// NewComets generates the comets and adds them to sc.
func NewComets(sc scene.Scene, p CometParams, rng *rand.Rand) *Comets {
	group := scene.NewGroup("comets")
	core := mustHex("#6bd5ff")
	trail := mustHex("#9cf5ff")

	comets := make([]Comet, p.Count)
	for i := range comets {
		n := scene.NewGroup("comet")

		body := scene.NewNode(scene.KindMesh, "comet-body")
		body.Size = 0.8
		body.Color = core
		body.Intensity = 1.2
		n.Add(body)

		tail := scene.NewNode(scene.KindMesh, "comet-tail")
		tail.Size = 0.4
		tail.Color = trail
		tail.Intensity = 0.7
		tail.Opacity = 0.8
		tail.Position = math.Vec3{Y: -1.5}
		tail.Rotation = math.Vec3{X: math32.Pi}
		n.Add(tail)

		comets[i] = Comet{
			Node:   n,
			Radius: p.MinRadius + rng.Float32()*p.RadiusSpan,
			Speed:  p.MinSpeed + rng.Float32()*p.SpeedSpan,
			Height: centered(rng, p.Height),
			Angle:  rng.Float32() * 2 * math32.Pi,
		}
		comets[i].place()
		group.Add(n)
	}

	return &Comets{
		field:  newField(sc, group),
		Comets: comets,
	}
}

// Update moves every comet along its orbit.
func (c *Comets) Update(dt float64) error {
	d := c.advance(dt)
	for i := range c.Comets {
		cm := &c.Comets[i]
		cm.Angle += cm.Speed * d
		cm.place()
	}
	return nil
}
