package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/config"
	"github.com/Faultbox/lexcosmos/internal/corpus"
	"github.com/Faultbox/lexcosmos/internal/entity"
	"github.com/Faultbox/lexcosmos/internal/fields"
	"github.com/Faultbox/lexcosmos/internal/flight"
	"github.com/Faultbox/lexcosmos/internal/layout"
	"github.com/Faultbox/lexcosmos/internal/logger"
	"github.com/Faultbox/lexcosmos/internal/proximity"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

const (
	starFieldSize = 400
	sparkleSpread = 30
	chapterStep   = 4 // vertical spacing of stacked chapter titles
)

// Fields holds the decorative field entities.
type Fields struct {
	Spiral   *fields.Spiral
	Stars    *fields.StarField
	Belt     *fields.AsteroidBelt
	Nebulae  *fields.Nebulae
	Comets   *fields.Comets
	Beacons  *fields.Beacons
	Sparkles *fields.Sparkles
}

// World is the built scene content and the registry ticking it.
type World struct {
	Registry  *entity.Registry
	Player    flight.Controller
	Tracker   *proximity.Tracker
	Layout    []layout.SectionPlacement
	Chapters  []*ChapterLabel
	Sections  []*SectionGroup
	Articles  []*ArticleNode
	Fragments []*Fragment
	Fields    Fields
}

// Build creates the world for doc. Entities are registered player first,
// then fields and content, and the proximity tracker last so it sees the
// positions of the current frame.
func Build(ctx Context, cfg *config.Config, doc *corpus.Document) (*World, error) {
	if err := ctx.validate(); err != nil {
		return nil, fmt.Errorf("world context: %w", err)
	}
	spiral, err := SpiralParams(cfg)
	if err != nil {
		return nil, err
	}
	rng := ctx.Rand
	if rng == nil {
		rng = NewRand(cfg.World.Seed)
	}
	ctx.Camera.FOV = cfg.Graphics.FOV

	w := &World{Registry: entity.NewRegistry()}

	switch cfg.Flight.Mode {
	case config.ModeFreeLook:
		w.Player = flight.NewFreeLook(ctx.Input, ctx.Camera, FreeLookParams(cfg))
	case config.ModeChase:
		w.Player = flight.NewChase(ctx.Scene, ctx.Input, ctx.Camera, ctx.Assets, cfg.Assets.CraftModel, ChaseParams(cfg))
	default:
		return nil, fmt.Errorf("unknown flight mode %q", cfg.Flight.Mode)
	}
	w.Registry.Add(w.Player)
	w.Tracker = proximity.NewTracker(w.Player, ctx.Display, cfg.World.Hysteresis)

	f := cfg.Fields
	belt := fields.DefaultBeltParams()
	belt.Count = f.AsteroidCount
	nebulae := fields.DefaultNebulaParams()
	nebulae.Count = f.NebulaCount
	comets := fields.DefaultCometParams()
	comets.Count = f.CometCount

	w.Fields = Fields{
		Spiral:   fields.NewSpiral(ctx.Scene, spiral, rng),
		Stars:    fields.NewStarField(ctx.Scene, f.StarCount, starFieldSize, rng),
		Belt:     fields.NewAsteroidBelt(ctx.Scene, belt, rng),
		Nebulae:  fields.NewNebulae(ctx.Scene, nebulae, rng),
		Comets:   fields.NewComets(ctx.Scene, comets, rng),
		Beacons:  fields.NewBeacons(ctx.Scene, fields.BeaconPositions),
		Sparkles: fields.NewSparkles(ctx.Scene, f.SparkleCount, sparkleSpread, rng),
	}
	w.Registry.Add(w.Fields.Spiral)
	w.Registry.Add(w.Fields.Stars)
	w.Registry.Add(w.Fields.Belt)
	w.Registry.Add(w.Fields.Nebulae)
	w.Registry.Add(w.Fields.Comets)
	w.Registry.Add(w.Fields.Beacons)
	w.Registry.Add(w.Fields.Sparkles)

	for i, ch := range doc.Chapters {
		c := NewChapterLabel(ctx.Scene, ch.Text, math.Vec3{Y: float32(i) * chapterStep})
		w.Chapters = append(w.Chapters, c)
		w.Registry.Add(c)
	}

	viewer := cameraViewer{camera: ctx.Camera}
	w.Layout = layout.Generate(doc.Sections, LayoutParams(cfg), rng)
	for _, sp := range w.Layout {
		sg := NewSectionGroup(ctx.Scene, sp)
		w.Sections = append(w.Sections, sg)
		w.Registry.Add(sg)

		for _, ap := range sp.Articles {
			texture := cfg.Assets.PlanetTextures[ap.Variant]
			a := NewArticleNode(ctx.Scene, viewer, ctx.Assets, texture, ap)
			sg.Articles = append(sg.Articles, a)
			w.Articles = append(w.Articles, a)
			w.Registry.Add(a)
			w.Tracker.Track(a, a.Content(), cfg.World.PlanetThreshold)
		}
	}

	if cfg.World.ScatterFragments {
		for _, s := range doc.Sections {
			for _, art := range s.Articles {
				fr := NewFragment(ctx.Scene, art, cfg.World.FragmentRange, rng)
				w.Fragments = append(w.Fragments, fr)
				w.Registry.Add(fr)
				w.Tracker.Track(fr, fr.Content(), cfg.World.MarkerThreshold)
			}
		}
	}

	w.Registry.Add(w.Tracker)

	logger.Info("world built",
		zap.String("mode", cfg.Flight.Mode),
		zap.Int("sections", len(w.Sections)),
		zap.Int("articles", len(w.Articles)),
		zap.Int("fragments", len(w.Fragments)),
		zap.Int("dropped", doc.Dropped),
		zap.Int("entities", w.Registry.Len()))
	return w, nil
}

// Tick advances every entity by dt seconds.
func (w *World) Tick(dt float64) error {
	return w.Registry.Tick(dt)
}

// Close removes every entity, releasing its scene nodes.
func (w *World) Close() {
	for _, e := range w.Registry.Entities() {
		w.Registry.Remove(e)
	}
}
