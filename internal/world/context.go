// Package world builds the navigable corpus world: it turns a parsed
// document into content entities, adds the decorative fields and the
// player, and registers everything in one entity registry.
package world

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/Faultbox/lexcosmos/internal/assets"
	"github.com/Faultbox/lexcosmos/internal/flight"
	"github.com/Faultbox/lexcosmos/internal/proximity"
	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Context carries the collaborators the world is built against.
type Context struct {
	Scene   scene.Scene
	Camera  *scene.Camera
	Assets  assets.Requester
	Input   flight.Input
	Display proximity.Display
	Rand    *rand.Rand
}

func (c *Context) validate() error {
	var errs []error
	if c.Scene == nil {
		errs = append(errs, errors.New("no scene"))
	}
	if c.Camera == nil {
		errs = append(errs, errors.New("no camera"))
	}
	if c.Assets == nil {
		errs = append(errs, errors.New("no asset loader"))
	}
	if c.Input == nil {
		errs = append(errs, errors.New("no input"))
	}
	if c.Display == nil {
		errs = append(errs, errors.New("no display"))
	}
	return errors.Join(errs...)
}

// NewRand returns a PCG source for seed. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// cameraViewer exposes the camera as a position source.
type cameraViewer struct {
	camera *scene.Camera
}

func (v cameraViewer) Position() math.Vec3 {
	return v.camera.Position
}
