// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/lexcosmos/pkg/encoding"
)

// Flight modes.
const (
	ModeFreeLook = "free"
	ModeChase    = "chase"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Logging  LoggingConfig  `yaml:"logging"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Assets   AssetsConfig   `yaml:"assets"`
	World    WorldConfig    `yaml:"world"`
	Flight   FlightConfig   `yaml:"flight"`
	Fields   FieldsConfig   `yaml:"fields"`
	Input    InputConfig    `yaml:"input"`
}

// Vec3 is a YAML-friendly 3-component vector.
type Vec3 [3]float32

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	FogDensity float32 `yaml:"fog_density"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// CorpusConfig points at the legal-text corpus.
type CorpusConfig struct {
	Path     string `yaml:"path"`     // empty uses the embedded corpus
	Encoding string `yaml:"encoding"` // character set of Path, empty for UTF-8
}

// AssetsConfig holds asset loading settings.
type AssetsConfig struct {
	Root           string   `yaml:"root"` // empty uses the embedded assets
	Workers        int      `yaml:"workers"`
	CraftModel     string   `yaml:"craft_model"`
	PlanetTextures []string `yaml:"planet_textures"`
}

// WorldConfig holds content layout and interaction settings.
type WorldConfig struct {
	Seed               int64   `yaml:"seed"` // 0 seeds from the clock
	SectionRadius      float32 `yaml:"section_radius"`
	SectionAngleOffset float32 `yaml:"section_angle_offset"` // radians
	ArticleRadius      float32 `yaml:"article_radius"`
	ArticleArc         float32 `yaml:"article_arc"` // radians
	VerticalJitter     float32 `yaml:"vertical_jitter"`
	PlanetThreshold    float32 `yaml:"planet_threshold"`
	MarkerThreshold    float32 `yaml:"marker_threshold"`
	Hysteresis         float32 `yaml:"hysteresis"`
	ScatterFragments   bool    `yaml:"scatter_fragments"`
	FragmentRange      float32 `yaml:"fragment_range"`
}

// FlightConfig holds player movement settings.
type FlightConfig struct {
	Mode     string         `yaml:"mode"`
	FreeLook FreeLookConfig `yaml:"free_look"`
	Chase    ChaseConfig    `yaml:"chase"`
}

// FreeLookConfig tunes the first-person flight mode.
type FreeLookConfig struct {
	Start            Vec3    `yaml:"start"`
	BaseSpeed        float32 `yaml:"base_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	Damping          float32 `yaml:"damping"`
	Sensitivity      float32 `yaml:"sensitivity"`
}

// ChaseConfig tunes the third-person craft mode.
type ChaseConfig struct {
	BaseSpeed        float32 `yaml:"base_speed"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	Damping          float32 `yaml:"damping"`
	TurnRate         float32 `yaml:"turn_rate"`
	CameraOffset     Vec3    `yaml:"camera_offset"`
	LookAtOffset     Vec3    `yaml:"look_at_offset"`
	FollowRate       float32 `yaml:"follow_rate"`
	ModelSize        float32 `yaml:"model_size"`
}

// FieldsConfig holds decorative field settings.
type FieldsConfig struct {
	Galaxy        GalaxyConfig `yaml:"galaxy"`
	AsteroidCount int          `yaml:"asteroid_count"`
	NebulaCount   int          `yaml:"nebula_count"`
	CometCount    int          `yaml:"comet_count"`
	StarCount     int          `yaml:"star_count"`
	SparkleCount  int          `yaml:"sparkle_count"`
}

// GalaxyConfig holds the spiral field parameters.
type GalaxyConfig struct {
	Count           int     `yaml:"count"`
	Radius          float32 `yaml:"radius"`
	Branches        int     `yaml:"branches"`
	Spin            float32 `yaml:"spin"`
	RandomnessPower float32 `yaml:"randomness_power"`
	Randomness      float32 `yaml:"randomness"`
	InsideColor     string  `yaml:"inside_color"`
	OutsideColor    string  `yaml:"outside_color"`
	OffsetY         float32 `yaml:"offset_y"`
}

// InputConfig maps flight actions to key names.
type InputConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			VSync:      true,
			FOV:        75,
			FogDensity: 0.01,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Assets: AssetsConfig{
			Workers:    2,
			CraftModel: "models/craft.yaml",
			PlanetTextures: []string{
				"textures/planet_earth.yaml",
				"textures/planet_earth_like.yaml",
				"textures/planet_gas_giant.yaml",
				"textures/planet_ice.yaml",
				"textures/planet_lava.yaml",
				"textures/planet_mars_like.yaml",
			},
		},
		World: WorldConfig{
			SectionRadius:      60,
			SectionAngleOffset: math.Pi / 4,
			ArticleRadius:      30,
			ArticleArc:         1.5 * math.Pi,
			VerticalJitter:     10,
			PlanetThreshold:    5,
			MarkerThreshold:    10,
			Hysteresis:         2,
			FragmentRange:      200,
		},
		Flight: FlightConfig{
			Mode: ModeFreeLook,
			FreeLook: FreeLookConfig{
				Start:            Vec3{0, 5, 20},
				BaseSpeed:        50,
				SprintMultiplier: 3,
				Damping:          5,
				Sensitivity:      0.002,
			},
			Chase: ChaseConfig{
				BaseSpeed:        30,
				SprintMultiplier: 2,
				Damping:          3,
				TurnRate:         2,
				CameraOffset:     Vec3{0, 5, 15},
				LookAtOffset:     Vec3{0, 2, 0},
				FollowRate:       6.32,
				ModelSize:        0.5,
			},
		},
		Fields: FieldsConfig{
			Galaxy: GalaxyConfig{
				Count:           50000,
				Radius:          100,
				Branches:        3,
				Spin:            1,
				RandomnessPower: 3,
				Randomness:      0.2,
				InsideColor:     "#ff6030",
				OutsideColor:    "#1b3984",
				OffsetY:         -10,
			},
			AsteroidCount: 220,
			NebulaCount:   25,
			CometCount:    4,
			StarCount:     2000,
			SparkleCount:  200,
		},
		Input: InputConfig{
			Bindings: map[string][]string{
				"forward":  {"W"},
				"backward": {"S"},
				"left":     {"A"},
				"right":    {"D"},
				"up":       {"Space", "E"},
				"down":     {"C", "Left Ctrl", "Q"},
				"sprint":   {"Left Shift"},
			},
		},
	}
}

// Validate reports settings the world cannot be built with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Flight.Mode != ModeFreeLook && c.Flight.Mode != ModeChase {
		errs = append(errs, fmt.Errorf("flight: unknown mode %q", c.Flight.Mode))
	}
	if c.World.SectionRadius <= 0 || c.World.ArticleRadius <= 0 {
		errs = append(errs, errors.New("world: radii must be positive"))
	}
	if c.World.PlanetThreshold <= 0 || c.World.MarkerThreshold <= 0 {
		errs = append(errs, errors.New("world: thresholds must be positive"))
	}
	if c.World.Hysteresis < 0 {
		errs = append(errs, errors.New("world: hysteresis must not be negative"))
	}
	if c.Fields.Galaxy.Branches <= 0 || c.Fields.Galaxy.Radius <= 0 {
		errs = append(errs, errors.New("fields: galaxy needs branches and a radius"))
	}
	for name, n := range map[string]int{
		"galaxy.count":   c.Fields.Galaxy.Count,
		"asteroid_count": c.Fields.AsteroidCount,
		"nebula_count":   c.Fields.NebulaCount,
		"comet_count":    c.Fields.CometCount,
		"star_count":     c.Fields.StarCount,
		"sparkle_count":  c.Fields.SparkleCount,
	} {
		if n < 0 {
			errs = append(errs, fmt.Errorf("fields: %s must not be negative", name))
		}
	}
	if !encoding.IsUTF8(c.Corpus.Encoding) {
		if _, err := encoding.Lookup(c.Corpus.Encoding); err != nil {
			errs = append(errs, fmt.Errorf("corpus: %w", err))
		}
	}
	if len(c.Assets.PlanetTextures) == 0 {
		errs = append(errs, errors.New("assets: at least one planet texture is required"))
	}

	return errors.Join(errs...)
}
