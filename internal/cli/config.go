package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/den3110/pulsemap/pkg/pipeline"
)

// =============================================================================
// Config File - TOML
// =============================================================================

// Config is the on-disk configuration, loaded from a TOML file. Every
// field is optional; command-line flags override config values, which in
// turn override the built-in defaults.
//
// Example:
//
//	[api]
//	base_url = "https://pulse.example.com"
//	token = "pm_secret"
//
//	[canvas]
//	width = 1080
//	height = 1920
//
//	[forces]
//	iterations = 300
//	seed = 7
//
//	[cache]
//	redis_addr = "localhost:6379"
type Config struct {
	API    APIConfig    `toml:"api"`
	Canvas CanvasConfig `toml:"canvas"`
	Forces ForcesConfig `toml:"forces"`
	Cache  CacheConfig  `toml:"cache"`
}

// APIConfig names the control plane and its credential.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

// CanvasConfig overrides the output canvas dimensions.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
}

// ForcesConfig overrides the simulation tunables.
type ForcesConfig struct {
	Iterations      int     `toml:"iterations"`
	Damping         float64 `toml:"damping"`
	Repulsion       float64 `toml:"repulsion"`
	Attraction      float64 `toml:"attraction"`
	IdealEdgeLength float64 `toml:"ideal_edge_length"`
	ServerRadius    float64 `toml:"server_radius"`
	JitterRange     float64 `toml:"jitter_range"`
	Seed            uint64  `toml:"seed"`
}

// CacheConfig selects the cache backend. An empty RedisAddr means the
// local file cache.
type CacheConfig struct {
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// defaultConfigPath returns the config file location using XDG standard
// (~/.config/pulsemap/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// loadConfig reads the TOML config at path. An empty path falls back to
// the default location, where a missing file is not an error; an
// explicitly named file must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyTo copies configured values into unset pipeline options. Options
// already set (by flags) win.
func (cfg *Config) applyTo(opts *pipeline.Options) {
	if opts.BaseURL == "" {
		opts.BaseURL = cfg.API.BaseURL
	}
	if opts.Width == 0 {
		opts.Width = cfg.Canvas.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.Canvas.Height
	}
	if opts.Margin == 0 {
		opts.Margin = cfg.Canvas.Margin
	}
	if opts.Iterations == 0 {
		opts.Iterations = cfg.Forces.Iterations
	}
	if opts.Damping == 0 {
		opts.Damping = cfg.Forces.Damping
	}
	if opts.Repulsion == 0 {
		opts.Repulsion = cfg.Forces.Repulsion
	}
	if opts.Attraction == 0 {
		opts.Attraction = cfg.Forces.Attraction
	}
	if opts.IdealEdgeLength == 0 {
		opts.IdealEdgeLength = cfg.Forces.IdealEdgeLength
	}
	if opts.ServerRadius == 0 {
		opts.ServerRadius = cfg.Forces.ServerRadius
	}
	if opts.JitterRange == 0 {
		opts.JitterRange = cfg.Forces.JitterRange
	}
	if opts.Seed == 0 {
		opts.Seed = cfg.Forces.Seed
	}
}
