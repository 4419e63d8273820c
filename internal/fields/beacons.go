package fields

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// BeaconPositions are the hand-placed observation beacons.
var BeaconPositions = []math.Vec3{
	{X: 0, Y: 8, Z: -30},
	{X: 25, Y: 6, Z: 10},
	{X: -28, Y: 10, Z: 18},
}

const (
	beaconRingSpeed = 0.6
	beaconLightBase = 1.5
)

// Beacon is a landmark with a pulsing light and a turning ring.
type Beacon struct {
	Node  *scene.Node
	Light *scene.Node
	Ring  *scene.Node
	Phase float32
}

// Beacons animates the landmark beacons.
type Beacons struct {
	field
	Beacons []Beacon
}

// BeaconIntensity returns the light intensity at time t.
func BeaconIntensity(t, phase float32) float32 {
	pulse := math32.Sin(t*2+phase)*0.5 + 1.2
	return beaconLightBase * pulse
}

// NewBeacons places one beacon per position and adds them to sc.
func NewBeacons(sc scene.Scene, positions []math.Vec3) *Beacons {
	group := scene.NewGroup("beacons")

	beacons := make([]Beacon, len(positions))
	for i, pos := range positions {
		n := scene.NewGroup("beacon")

		base := scene.NewNode(scene.KindMesh, "beacon-base")
		base.Position = pos
		base.Size = 1.2
		base.Color = mustHex("#222831")
		n.Add(base)

		ring := scene.NewNode(scene.KindRing, "beacon-ring")
		ring.Position = pos
		ring.Rotation = math.Vec3{X: math32.Pi / 2}
		ring.Size = 2.4
		ring.Color = mustHex("#4af2c0")
		ring.Intensity = 0.8
		n.Add(ring)

		tip := scene.NewNode(scene.KindMesh, "beacon-tip")
		tip.Position = pos.Add(math.Vec3{Y: 2.5})
		tip.Size = 0.4
		tip.Color = mustHex("#4a7cff")
		tip.Intensity = 1.2
		n.Add(tip)

		light := scene.NewNode(scene.KindLight, "beacon-light")
		light.Position = pos.Add(math.Vec3{Y: 2})
		light.Color = mustHex("#3ae4ff")
		light.Size = 40
		light.Intensity = 2.5
		n.Add(light)

		group.Add(n)
		beacons[i] = Beacon{
			Node:  n,
			Light: light,
			Ring:  ring,
			Phase: float32(i) * math32.Pi * 0.5,
		}
	}

	return &Beacons{
		field:   newField(sc, group),
		Beacons: beacons,
	}
}

// Update pulses the lights and turns the rings.
func (b *Beacons) Update(dt float64) error {
	d := b.advance(dt)
	for i := range b.Beacons {
		bc := &b.Beacons[i]
		bc.Light.Intensity = BeaconIntensity(b.elapsed, bc.Phase)
		bc.Ring.Rotation.Z += beaconRingSpeed * d
	}
	return nil
}
