package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Scene is the contract entities use to publish nodes.
type Scene interface {
	Add(n *Node)
	Remove(n *Node)
}

// Environment holds scene-wide lighting and fog.
type Environment struct {
	Background   colorful.Color
	Ambient      colorful.Color
	AmbientLevel float32
	SunDirection math.Vec3
	SunLevel     float32
	FogDensity   float32 // exponential squared fog
}

// Graph is the root of the scene tree.
type Graph struct {
	root   *Node
	Camera *Camera
	Env    Environment
}

// NewGraph creates an empty scene with a default camera.
func NewGraph() *Graph {
	return &Graph{
		root:   NewGroup("root"),
		Camera: NewCamera(),
		Env: Environment{
			Ambient:      colorful.Color{R: 1, G: 1, B: 1},
			AmbientLevel: 0.5,
			SunDirection: math.Vec3{X: 10, Y: 20, Z: 10}.Normalize(),
			SunLevel:     1,
			FogDensity:   0.01,
		},
	}
}

// Add attaches n to the root.
func (g *Graph) Add(n *Node) {
	g.root.Add(n)
}

// Remove detaches n from wherever it hangs in the tree.
func (g *Graph) Remove(n *Node) {
	if n == nil || n.parent == nil {
		return
	}
	n.parent.Remove(n)
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	return g.root
}

// Len returns the number of top-level nodes.
func (g *Graph) Len() int {
	return len(g.root.children)
}

// Find returns the first node with the given name, depth first.
func (g *Graph) Find(name string) *Node {
	var found *Node
	g.walk(g.root, math.Identity(), true, func(n *Node, _ math.Mat4) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits every visible node below the root with its world matrix.
// Invisible nodes hide their subtree. Returning false stops the walk.
func (g *Graph) Walk(fn func(n *Node, world math.Mat4) bool) {
	for _, c := range g.root.children {
		if !g.walk(c, math.Identity(), false, fn) {
			return
		}
	}
}

func (g *Graph) walk(n *Node, parent math.Mat4, all bool, fn func(*Node, math.Mat4) bool) bool {
	if !all && !n.Visible {
		return true
	}
	world := parent.Mul(n.LocalMatrix())
	if !fn(n, world) {
		return false
	}
	for _, c := range n.children {
		if !g.walk(c, world, all, fn) {
			return false
		}
	}
	return true
}
