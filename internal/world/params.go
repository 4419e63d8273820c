package world

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/lexcosmos/internal/config"
	"github.com/Faultbox/lexcosmos/internal/fields"
	"github.com/Faultbox/lexcosmos/internal/flight"
	"github.com/Faultbox/lexcosmos/internal/layout"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

func vec(v config.Vec3) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// LayoutParams converts the world settings.
func LayoutParams(cfg *config.Config) layout.Params {
	w := cfg.World
	return layout.Params{
		SectionRadius:      w.SectionRadius,
		SectionAngleOffset: w.SectionAngleOffset,
		ArticleRadius:      w.ArticleRadius,
		ArticleArc:         w.ArticleArc,
		VerticalJitter:     w.VerticalJitter,
		PaletteSize:        len(cfg.Assets.PlanetTextures),
	}
}

// SpiralParams converts the galaxy settings.
func SpiralParams(cfg *config.Config) (fields.SpiralParams, error) {
	g := cfg.Fields.Galaxy
	inside, err := colorful.Hex(g.InsideColor)
	if err != nil {
		return fields.SpiralParams{}, fmt.Errorf("galaxy inside color: %w", err)
	}
	outside, err := colorful.Hex(g.OutsideColor)
	if err != nil {
		return fields.SpiralParams{}, fmt.Errorf("galaxy outside color: %w", err)
	}
	return fields.SpiralParams{
		Count:           g.Count,
		Radius:          g.Radius,
		Branches:        g.Branches,
		Spin:            g.Spin,
		RandomnessPower: g.RandomnessPower,
		Randomness:      g.Randomness,
		Inside:          inside,
		Outside:         outside,
		OffsetY:         g.OffsetY,
	}, nil
}

// FreeLookParams converts the first-person settings.
func FreeLookParams(cfg *config.Config) flight.FreeLookParams {
	f := cfg.Flight.FreeLook
	return flight.FreeLookParams{
		Params: flight.Params{
			BaseSpeed:        f.BaseSpeed,
			SprintMultiplier: f.SprintMultiplier,
			Damping:          f.Damping,
		},
		Start:       vec(f.Start),
		Sensitivity: f.Sensitivity,
	}
}

// ChaseParams converts the craft settings. The close-up camera used once
// the craft has loaded keeps its standard offsets.
func ChaseParams(cfg *config.Config) flight.ChaseParams {
	c := cfg.Flight.Chase
	p := flight.DefaultChaseParams()
	p.Params = flight.Params{
		BaseSpeed:        c.BaseSpeed,
		SprintMultiplier: c.SprintMultiplier,
		Damping:          c.Damping,
	}
	p.TurnRate = c.TurnRate
	p.Camera = flight.FollowParams{
		Offset: vec(c.CameraOffset),
		LookAt: vec(c.LookAtOffset),
		Rate:   c.FollowRate,
	}
	p.ReadyCamera.Rate = c.FollowRate
	p.ModelSize = c.ModelSize
	return p
}
