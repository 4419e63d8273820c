package assets

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lexcosmos/internal/logger"
)

// Model describes a mesh by its bounding box and surface colors.
type Model struct {
	Name          string
	Bounds        [3]float32
	Color         colorful.Color
	Emissive      colorful.Color
	EmissiveLevel float32
}

// MaxDimension returns the largest side of the bounding box.
func (m *Model) MaxDimension() float32 {
	return math32.Max(m.Bounds[0], math32.Max(m.Bounds[1], m.Bounds[2]))
}

// ScaleTo returns the uniform scale that fits the model into size.
func (m *Model) ScaleTo(size float32) float32 {
	d := m.MaxDimension()
	if d <= 0 {
		return 1
	}
	return size / d
}

// Material is a planet surface description.
type Material struct {
	Name          string
	Color         colorful.Color
	Emissive      colorful.Color
	EmissiveLevel float32
}

type surfaceFile struct {
	Name          string     `yaml:"name"`
	Bounds        [3]float32 `yaml:"bounds"`
	Color         string     `yaml:"color"`
	Emissive      string     `yaml:"emissive"`
	EmissiveLevel float32    `yaml:"emissive_level"`
}

func decodeSurface(data []byte) (surfaceFile, colorful.Color, colorful.Color, error) {
	var f surfaceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, colorful.Color{}, colorful.Color{}, err
	}

	color := colorful.Color{R: 1, G: 1, B: 1}
	if f.Color != "" {
		c, err := colorful.Hex(f.Color)
		if err != nil {
			return f, color, colorful.Color{}, fmt.Errorf("color: %w", err)
		}
		color = c
	}

	var emissive colorful.Color
	if f.Emissive != "" {
		c, err := colorful.Hex(f.Emissive)
		if err != nil {
			return f, color, emissive, fmt.Errorf("emissive: %w", err)
		}
		emissive = c
	}
	return f, color, emissive, nil
}

// DecodeModel parses a model description.
func DecodeModel(data []byte) (*Model, error) {
	f, color, emissive, err := decodeSurface(data)
	if err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return &Model{
		Name:          f.Name,
		Bounds:        f.Bounds,
		Color:         color,
		Emissive:      emissive,
		EmissiveLevel: f.EmissiveLevel,
	}, nil
}

// DecodeMaterial parses a material description.
func DecodeMaterial(data []byte) (*Material, error) {
	f, color, emissive, err := decodeSurface(data)
	if err != nil {
		return nil, fmt.Errorf("decoding material: %w", err)
	}
	return &Material{
		Name:          f.Name,
		Color:         color,
		Emissive:      emissive,
		EmissiveLevel: f.EmissiveLevel,
	}, nil
}

// Request issues a load of uri into slot. The decoded value resolves the
// slot and onReady runs; a read or decode failure is logged and fails the
// slot. Both are skipped once the slot is detached.
func Request[T any](r Requester, uri string, slot *Slot[T], decode func([]byte) (T, error), onReady func(T)) {
	r.Load(uri,
		func(data []byte) {
			if slot.Detached() {
				return
			}
			v, err := decode(data)
			if err != nil {
				fail(uri, slot, err)
				return
			}
			if slot.Resolve(v) && onReady != nil {
				onReady(v)
			}
		},
		func(err error) {
			if slot.Detached() {
				return
			}
			fail(uri, slot, err)
		},
	)
}

func fail[T any](uri string, slot *Slot[T], err error) {
	if slot.Fail(err) {
		logger.Error("asset unavailable", zap.String("uri", uri), zap.Error(err))
	}
}
