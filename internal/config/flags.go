package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMode       = flag.String("mode", "", "Flight mode: free or chase")
	flagSeed       = flag.Int64("seed", 0, "Random seed for layout and fields (0 = clock)")
	flagCorpus     = flag.String("corpus", "", "Path to a corpus YAML file")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")

	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether --write-config was given.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMode != "" {
		cfg.Flight.Mode = *flagMode
	}
	if *flagSeed != 0 {
		cfg.World.Seed = *flagSeed
	}
	if *flagCorpus != "" {
		cfg.Corpus.Path = *flagCorpus
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
