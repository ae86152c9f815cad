// Package config loads runtime settings and scenes from TOML, environment and flags
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "GRAVSIM"

type PhysicsConfig struct {
	G       float64 `mapstructure:"g"`
	Density float64 `mapstructure:"density"`
}

type FieldConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Spacing float64 `mapstructure:"spacing"`
	Period  float64 `mapstructure:"period"`
}

type TrailsConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	MaxNodes int  `mapstructure:"max_nodes"`
}

// SpawnConfig sets the initial spawn radius and the right-click grid shape
type SpawnConfig struct {
	Radius     float64 `mapstructure:"radius"`
	Separation float64 `mapstructure:"separation"`
	Cols       int     `mapstructure:"cols"`
	Rows       int     `mapstructure:"rows"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the full runtime configuration
type Config struct {
	Physics PhysicsConfig `mapstructure:"physics"`
	Field   FieldConfig   `mapstructure:"field"`
	Trails  TrailsConfig  `mapstructure:"trails"`
	Spawn   SpawnConfig   `mapstructure:"spawn"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Debug   bool          `mapstructure:"debug"`
	FPS     int           `mapstructure:"fps"`
}

// setDefaults registers compiled-in values so every key resolves without a file
func setDefaults(v *viper.Viper) {
	v.SetDefault("physics.g", parameter.G)
	v.SetDefault("physics.density", parameter.Density)
	v.SetDefault("field.enabled", true)
	v.SetDefault("field.spacing", parameter.FieldSpacing)
	v.SetDefault("field.period", parameter.FieldUpdatePeriod)
	v.SetDefault("trails.enabled", false)
	v.SetDefault("trails.max_nodes", parameter.TrailMaxNodes)
	v.SetDefault("spawn.radius", parameter.SpawnRadius)
	v.SetDefault("spawn.separation", parameter.GridSeparation)
	v.SetDefault("spawn.cols", parameter.GridCols)
	v.SetDefault("spawn.rows", parameter.GridRows)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("debug", false)
	v.SetDefault("fps", parameter.DefaultFPS)
}

// New returns a viper instance with defaults and environment binding
// GRAVSIM_PHYSICS_G overrides physics.g
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps command-line flags onto config keys
// Only flags the user actually set take precedence over file and env
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"debug":         "debug",
		"fps":           "fps",
		"trails":        "trails.enabled",
		"field":         "field.enabled",
		"field-spacing": "field.spacing",
		"gravity":       "physics.g",
		"spawn-radius":  "spawn.radius",
	}
	for name, key := range bindings {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	// --no-audio is inverted so it cannot bind directly
	if f := flags.Lookup("no-audio"); f != nil && f.Changed {
		v.Set("audio.enabled", false)
	}
	return nil
}

// Load reads the TOML file at path (optional) into v and decodes the result
// An empty path uses defaults, env and flags only
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Physics.G <= 0:
		return fmt.Errorf("%w: physics.g must be positive, got %v", ErrInvalidConfig, c.Physics.G)
	case c.Physics.Density <= 0:
		return fmt.Errorf("%w: physics.density must be positive, got %v", ErrInvalidConfig, c.Physics.Density)
	case c.Field.Spacing <= 0:
		return fmt.Errorf("%w: field.spacing must be positive, got %v", ErrInvalidConfig, c.Field.Spacing)
	case c.Field.Period <= 0:
		return fmt.Errorf("%w: field.period must be positive, got %v", ErrInvalidConfig, c.Field.Period)
	case c.Trails.MaxNodes < 0:
		return fmt.Errorf("%w: trails.max_nodes must not be negative, got %d", ErrInvalidConfig, c.Trails.MaxNodes)
	case c.Spawn.Radius < parameter.SpawnRadiusMin || c.Spawn.Radius > parameter.SpawnRadiusMax:
		return fmt.Errorf("%w: spawn.radius must be in %v..%v, got %v", ErrInvalidConfig, parameter.SpawnRadiusMin, parameter.SpawnRadiusMax, c.Spawn.Radius)
	case c.Spawn.Separation < 0:
		return fmt.Errorf("%w: spawn.separation must not be negative, got %v", ErrInvalidConfig, c.Spawn.Separation)
	case c.Spawn.Cols <= 0 || c.Spawn.Rows <= 0:
		return fmt.Errorf("%w: spawn grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Spawn.Cols, c.Spawn.Rows)
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// Engine converts to the simulation config for a world of width x height units
func (c *Config) Engine(width, height float64) engine.Config {
	return engine.Config{
		G:             c.Physics.G,
		Density:       c.Physics.Density,
		TrailsEnabled: c.Trails.Enabled,
		TrailMaxNodes: c.Trails.MaxNodes,
		FieldEnabled:  c.Field.Enabled,
		FieldSpacing:  c.Field.Spacing,
		FieldPeriod:   c.Field.Period,
		Width:         width,
		Height:        height,
	}
}
