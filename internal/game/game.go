// Package game implements the main loop: it wires the window, input,
// asset loader and renderer around the world and drives them per frame.
package game

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/assets"
	"github.com/Faultbox/lexcosmos/internal/assets/builtin"
	"github.com/Faultbox/lexcosmos/internal/config"
	"github.com/Faultbox/lexcosmos/internal/controls"
	"github.com/Faultbox/lexcosmos/internal/corpus"
	"github.com/Faultbox/lexcosmos/internal/display"
	"github.com/Faultbox/lexcosmos/internal/engine/input"
	"github.com/Faultbox/lexcosmos/internal/engine/renderer"
	"github.com/Faultbox/lexcosmos/internal/engine/window"
	"github.com/Faultbox/lexcosmos/internal/logger"
	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/internal/world"
)

// Title is the window title.
const Title = "LexCosmos"

// maxFrameTime caps dt so a stall does not fling the player.
const maxFrameTime = 0.1

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	loader   *assets.Loader
	graph    *scene.Graph
	panel    *display.LogPanel
	display  *display.TitlePanel
	world    *world.World
}

// New creates the window and builds the world from the configured corpus.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("mode", cfg.Flight.Mode),
	)

	records, err := corpus.Load(cfg.Corpus.Path, cfg.Corpus.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	doc := corpus.Parse(records)

	state, err := controls.New(cfg.Input.Bindings)
	if err != nil {
		return nil, fmt.Errorf("invalid input bindings: %w", err)
	}

	g := &Game{config: cfg}

	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window created.
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New(state)

	g.loader = assets.NewLoader(cfg.Assets.Workers, builtin.FS)
	if cfg.Assets.Root != "" {
		g.loader.AddSource(os.DirFS(cfg.Assets.Root))
	}

	g.graph = scene.NewGraph()
	g.graph.Env.FogDensity = cfg.Graphics.FogDensity

	g.panel = display.NewLogPanel()
	g.display = display.NewTitlePanel(g.panel, g.window, Title)

	g.world, err = world.Build(world.Context{
		Scene:   g.graph,
		Camera:  g.graph.Camera,
		Assets:  g.loader,
		Input:   state,
		Display: g.display,
		Rand:    world.NewRand(cfg.World.Seed),
	}, cfg, doc)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.loader.Dispatch()
		if err := g.world.Tick(dt); err != nil {
			logger.Debug("frame had entity failures", zap.Error(err))
		}

		g.renderer.Render(g.graph)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			hits, misses := g.loader.Cache().Stats()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("pending_assets", g.loader.Pending()),
				zap.Int("cache_hits", hits),
				zap.Int("cache_misses", misses))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents reacts to the events of the last input pump. Clicking
// captures the pointer; Escape closes the open panel first and releases
// the pointer second.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(g.window.GetSize())
		case input.EventMouseDown:
			if !g.input.State().PointerLocked() {
				g.input.SetPointerLocked(true)
			}
		case input.EventKeyDown:
			if event.Key != sdl.SCANCODE_ESCAPE {
				continue
			}
			if _, open := g.panel.Current(); open {
				g.display.Dismiss()
			} else if g.input.State().PointerLocked() {
				g.input.SetPointerLocked(false)
			}
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.world != nil {
		g.world.Close()
	}
	if g.loader != nil {
		g.loader.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
