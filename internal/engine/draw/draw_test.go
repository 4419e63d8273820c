package draw

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

func TestCollect(t *testing.T) {
	g := scene.NewGraph()

	group := scene.NewGroup("belt")
	group.Position = math.Vec3{X: 10}
	rock := scene.NewNode(scene.KindMesh, "rock")
	rock.Position = math.Vec3{Y: 2}
	rock.SetUniformScale(3)
	rock.Size = 0.5
	group.Add(rock)
	g.Add(group)

	hidden := scene.NewNode(scene.KindSprite, "hidden")
	hidden.Visible = false
	g.Add(hidden)

	stars := scene.NewPoints("stars", &scene.Points{Positions: []math.Vec3{{X: 1}, {Y: 1}}})
	g.Add(stars)

	light := scene.NewNode(scene.KindLight, "light")
	light.Position = math.Vec3{Z: -4}
	light.Intensity = 2
	light.Size = 50
	g.Add(light)

	empty := scene.NewPoints("empty", &scene.Points{})
	g.Add(empty)

	var l List
	Collect(g, &l)

	require.Len(t, l.Sprites, 1)
	s := l.Sprites[0]
	assert.Equal(t, scene.KindMesh, s.Kind)
	assert.InDelta(t, 10, s.Position.X, 1e-5)
	assert.InDelta(t, 2, s.Position.Y, 1e-5)
	assert.InDelta(t, 3, s.Size, 1e-5) // 0.5 radius, scale 3, diameter
	assert.Equal(t, float32(1), s.Color[3])

	require.Len(t, l.Clouds, 1)
	assert.Equal(t, 2, l.Clouds[0].Points.Len())

	require.Len(t, l.Lights, 1)
	assert.InDelta(t, -4, l.Lights[0].Position.Z, 1e-6)
	assert.Equal(t, float32(50), l.Lights[0].Range)

	// Collect reuses the list.
	Collect(g, &l)
	assert.Len(t, l.Sprites, 1)
	assert.Len(t, l.Clouds, 1)
}

func TestEmissiveColorClamped(t *testing.T) {
	g := scene.NewGraph()
	n := scene.NewNode(scene.KindMesh, "glow")
	n.Color = colorful.Color{R: 0.8, G: 0.2, B: 0}
	n.Intensity = 2
	n.Opacity = 0.5
	g.Add(n)

	var l List
	Collect(g, &l)
	require.Len(t, l.Sprites, 1)
	c := l.Sprites[0].Color
	assert.Equal(t, float32(1), c[0])
	assert.InDelta(t, 0.4, c[1], 1e-6)
	assert.Zero(t, c[2])
	assert.Equal(t, float32(0.5), c[3])
}

func TestAppendSprites(t *testing.T) {
	buf := AppendSprites(nil, []Sprite{
		{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Color: [4]float32{0.1, 0.2, 0.3, 0.4}, Size: 5},
		{Size: 6},
	})
	require.Len(t, buf, 2*Stride)
	assert.Equal(t, []float32{1, 2, 3, 0.1, 0.2, 0.3, 0.4, 5}, buf[:Stride])
	assert.Equal(t, float32(6), buf[2*Stride-1])
}

func TestAppendCloud(t *testing.T) {
	red := colorful.Color{R: 1}
	p := &scene.Points{
		Positions: []math.Vec3{{X: 1}, {X: 2}},
		Colors:    []colorful.Color{{B: 1}},
		Sizes:     []float32{0.25},
	}
	buf := AppendCloud(nil, p, red)
	require.Len(t, buf, 2*Stride)
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 1, 0.25}, buf[:Stride])
	assert.Equal(t, []float32{2, 0, 0, 1, 0, 0, 1, 1}, buf[Stride:])
}

func TestSortBackToFront(t *testing.T) {
	sprites := []Sprite{
		{Position: math.Vec3{Z: -1}, Size: 1},
		{Position: math.Vec3{Z: -10}, Size: 10},
		{Position: math.Vec3{Z: -5}, Size: 5},
	}
	SortBackToFront(sprites, math.Vec3{})
	assert.Equal(t, float32(10), sprites[0].Size)
	assert.Equal(t, float32(5), sprites[1].Size)
	assert.Equal(t, float32(1), sprites[2].Size)
}
