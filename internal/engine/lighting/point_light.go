// Package lighting packs point lights for shader upload.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/pkg/math"
)

// MaxPointLights is the size of the light arrays in the shader.
const MaxPointLights = 8

// PointLight is a light source in world space.
type PointLight struct {
	Position  math.Vec3
	Color     colorful.Color
	Range     float32 // distance at which the light fades out
	Intensity float32
}

// PointLightBuffer holds up to MaxPointLights lights in the flat layout
// the shader uniforms expect. Colors are premultiplied by intensity.
type PointLightBuffer struct {
	Positions [MaxPointLights * 3]float32
	Colors    [MaxPointLights * 3]float32
	Ranges    [MaxPointLights]float32
	Count     int
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	*b = PointLightBuffer{}
}

// AddLight adds a light. Returns false if the buffer is full.
func (b *PointLightBuffer) AddLight(l PointLight) bool {
	if b.Count >= MaxPointLights {
		return false
	}
	i := b.Count
	b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2] = l.Position.X, l.Position.Y, l.Position.Z
	b.Colors[i*3] = float32(l.Color.R) * l.Intensity
	b.Colors[i*3+1] = float32(l.Color.G) * l.Intensity
	b.Colors[i*3+2] = float32(l.Color.B) * l.Intensity
	// A zero range would divide by zero in the falloff.
	b.Ranges[i] = math32.Max(l.Range, 0.001)
	b.Count++
	return true
}

// SetLights replaces the buffer content, keeping the first
// MaxPointLights lights. Returns how many were dropped.
func (b *PointLightBuffer) SetLights(lights []PointLight) int {
	b.Clear()
	dropped := 0
	for _, l := range lights {
		if !b.AddLight(l) {
			dropped++
		}
	}
	return dropped
}
