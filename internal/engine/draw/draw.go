// Package draw flattens the scene graph into the lists the renderer
// uploads: dynamic sprites streamed every frame and static point clouds.
package draw

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Floats per vertex: position xyz, color rgba, size.
const Stride = 8

// Sprite is one node drawn as a point sprite.
type Sprite struct {
	Kind     scene.Kind
	Position math.Vec3
	Color    [4]float32
	Size     float32
}

// Cloud is a point cloud drawn from a static buffer with its transform.
type Cloud struct {
	Points  *scene.Points
	Model   math.Mat4
	Color   colorful.Color // for points without their own color
	Size    float32
	Opacity float32
}

// Light is a point light in world space.
type Light struct {
	Position  math.Vec3
	Color     colorful.Color
	Intensity float32
	Range     float32
}

// List is the flattened content of one frame.
type List struct {
	Sprites []Sprite
	Clouds  []Cloud
	Lights  []Light
}

// Reset empties the list, keeping its storage.
func (l *List) Reset() {
	l.Sprites = l.Sprites[:0]
	l.Clouds = l.Clouds[:0]
	l.Lights = l.Lights[:0]
}

// Collect fills l with the visible nodes of g.
func Collect(g *scene.Graph, l *List) {
	l.Reset()
	g.Walk(func(n *scene.Node, world math.Mat4) bool {
		switch n.Kind {
		case scene.KindGroup:
		case scene.KindPoints:
			if n.Points != nil && n.Points.Len() > 0 {
				l.Clouds = append(l.Clouds, Cloud{
					Points:  n.Points,
					Model:   world,
					Color:   n.Color,
					Size:    n.Size,
					Opacity: n.Opacity,
				})
			}
		case scene.KindLight:
			l.Lights = append(l.Lights, Light{
				Position:  world.TransformVec3(math.Vec3{}),
				Color:     n.Color,
				Intensity: n.Intensity,
				Range:     n.Size,
			})
		default:
			l.Sprites = append(l.Sprites, Sprite{
				Kind:     n.Kind,
				Position: world.TransformVec3(math.Vec3{}),
				Color:    rgba(n.Color, n.Opacity, emissive(n)),
				Size:     n.Size * maxScale(world) * kindScale(n.Kind),
			})
		}
		return true
	})
}

func emissive(n *scene.Node) float32 {
	if n.Kind == scene.KindText || n.Kind == scene.KindSprite {
		return 1
	}
	return math32.Max(n.Intensity, 1)
}

// kindScale converts a node size into a sprite diameter.
func kindScale(k scene.Kind) float32 {
	switch k {
	case scene.KindMesh, scene.KindRing:
		return 2
	case scene.KindText:
		return 1.5
	}
	return 1
}

func rgba(c colorful.Color, opacity, gain float32) [4]float32 {
	return [4]float32{
		math32.Min(float32(c.R)*gain, 1),
		math32.Min(float32(c.G)*gain, 1),
		math32.Min(float32(c.B)*gain, 1),
		opacity,
	}
}

// maxScale returns the largest axis scale of a column-major transform.
func maxScale(m math.Mat4) float32 {
	sx := math.Vec3{X: m[0], Y: m[1], Z: m[2]}.Length()
	sy := math.Vec3{X: m[4], Y: m[5], Z: m[6]}.Length()
	sz := math.Vec3{X: m[8], Y: m[9], Z: m[10]}.Length()
	return math32.Max(sx, math32.Max(sy, sz))
}

// AppendSprites appends interleaved sprite vertices to buf.
func AppendSprites(buf []float32, sprites []Sprite) []float32 {
	for _, s := range sprites {
		buf = append(buf,
			s.Position.X, s.Position.Y, s.Position.Z,
			s.Color[0], s.Color[1], s.Color[2], s.Color[3],
			s.Size)
	}
	return buf
}

// AppendCloud appends interleaved vertices for a point cloud to buf.
// Missing per-point colors use base; missing sizes use 1.
func AppendCloud(buf []float32, p *scene.Points, base colorful.Color) []float32 {
	for i, pos := range p.Positions {
		c := base
		if i < len(p.Colors) {
			c = p.Colors[i]
		}
		size := float32(1)
		if i < len(p.Sizes) {
			size = p.Sizes[i]
		}
		buf = append(buf,
			pos.X, pos.Y, pos.Z,
			float32(c.R), float32(c.G), float32(c.B), 1,
			size)
	}
	return buf
}

// SortBackToFront orders sprites by decreasing distance from eye so
// translucent sprites blend correctly.
func SortBackToFront(sprites []Sprite, eye math.Vec3) {
	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		return cmp.Compare(b.Position.Sub(eye).LengthSq(), a.Position.Sub(eye).LengthSq())
	})
}
