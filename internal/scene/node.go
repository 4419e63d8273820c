// Package scene holds the in-memory scene graph shared by all entities.
// Entities create and mutate nodes; the renderer only reads them.
package scene

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Kind tells the renderer how to draw a node.
type Kind uint8

const (
	KindGroup Kind = iota
	KindMesh
	KindSprite
	KindPoints
	KindLight
	KindText
	KindRing
)

var kindNames = [...]string{"group", "mesh", "sprite", "points", "light", "text", "ring"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a transformable element of the scene.
type Node struct {
	Name string
	Kind Kind

	Position math.Vec3
	Rotation math.Vec3 // Euler angles, XYZ order
	Scale    math.Vec3

	Color     colorful.Color
	Opacity   float32
	Intensity float32 // lights and emissive meshes
	Size      float32 // mesh radius, sprite size, text height or light range
	Text      string
	Points    *Points
	Visible   bool

	parent   *Node
	children []*Node
}

// NewNode creates a visible white node with unit scale.
func NewNode(kind Kind, name string) *Node {
	return &Node{
		Name:      name,
		Kind:      kind,
		Scale:     math.Vec3{X: 1, Y: 1, Z: 1},
		Color:     colorful.Color{R: 1, G: 1, B: 1},
		Opacity:   1,
		Intensity: 1,
		Size:      1,
		Visible:   true,
	}
}

// NewGroup creates an empty group node.
func NewGroup(name string) *Node {
	return NewNode(KindGroup, name)
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. It reports whether child was attached.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the attached children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetUniformScale sets all scale components to s.
func (n *Node) SetUniformScale(s float32) {
	n.Scale = math.Vec3{X: s, Y: s, Z: s}
}

// LocalMatrix returns the node transform relative to its parent.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix returns the node transform in world space.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	m := n.WorldMatrix()
	return math.Vec3{X: m[12], Y: m[13], Z: m[14]}
}

// FaceToward turns the node about the vertical axis so its +Z axis points
// at target. Parent rotation is not compensated.
func (n *Node) FaceToward(target math.Vec3) {
	d := target.Sub(n.WorldPosition())
	if d.X == 0 && d.Z == 0 {
		return
	}
	n.Rotation = math.Vec3{Y: math32.Atan2(d.X, d.Z)}
}

// Points is a point cloud carried by a KindPoints node.
type Points struct {
	Positions []math.Vec3
	Colors    []colorful.Color // nil uses the node color
	Sizes     []float32        // nil uses the node size
	Time      float32          // animation clock read by the renderer
	Swirl     bool             // inner points orbit faster as Time advances
}

// Len returns the number of points.
func (p *Points) Len() int {
	return len(p.Positions)
}

// NewPoints creates a points node.
func NewPoints(name string, pts *Points) *Node {
	n := NewNode(KindPoints, name)
	n.Points = pts
	return n
}
