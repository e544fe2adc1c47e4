// Package config layers session tuning: parameter defaults, an optional YAML
// file, an optional .env file and MAZECHASE_* environment variables, in that
// order. Process environment wins over the .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/maze-chase/parameter"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "MAZECHASE_"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds recognized session options
type Config struct {
	Rows int `yaml:"rows"` // Maze height in cells
	Cols int `yaml:"cols"` // Maze width in cells

	PlayerSpeed      float64 `yaml:"player_speed"`       // Cells per second along clicked paths
	PlayerStepFactor float64 `yaml:"player_step_factor"` // Per-tick fraction toward a keyboard target

	PursuerSpeed            float64 `yaml:"pursuer_speed"`
	PursuerCount            int     `yaml:"pursuer_count"`
	PursuerMinSpawnDistance int     `yaml:"pursuer_min_spawn_distance"`

	RepathInterval time.Duration `yaml:"repath_interval"`
	TickInterval   time.Duration `yaml:"tick_interval"`

	CollisionThreshold    float64 `yaml:"collision_threshold"` // Fraction of one cell
	MaxGenerationAttempts int     `yaml:"max_generation_attempts"`

	Seed int64 `yaml:"seed"` // 0 = time based
}

// Default returns the parameter package defaults
func Default() Config {
	return Config{
		Rows:                    parameter.MazeRows,
		Cols:                    parameter.MazeCols,
		PlayerSpeed:             parameter.PlayerSpeed,
		PlayerStepFactor:        parameter.PlayerStepFactor,
		PursuerSpeed:            parameter.PursuerSpeed,
		PursuerCount:            parameter.PursuerCount,
		PursuerMinSpawnDistance: parameter.PursuerMinSpawnDistance,
		RepathInterval:          parameter.RepathInterval,
		TickInterval:            parameter.TickInterval,
		CollisionThreshold:      parameter.CollisionThreshold,
		MaxGenerationAttempts:   parameter.MazeMaxGenerationAttempts,
	}
}

// Load builds a validated config
// path is an optional YAML file, envFile an optional dotenv file; empty strings skip a layer
// A missing envFile is not an error, a missing YAML file is
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			dotenv, err = godotenv.Read(envFile)
			if err != nil {
				return Config{}, fmt.Errorf("failed to read env file %s: %w", envFile, err)
			}
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from MAZECHASE_* keys
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	overrides := []struct {
		key string
		set func(string) error
	}{
		{"ROWS", intSetter(&c.Rows)},
		{"COLS", intSetter(&c.Cols)},
		{"PLAYER_SPEED", floatSetter(&c.PlayerSpeed)},
		{"PLAYER_STEP_FACTOR", floatSetter(&c.PlayerStepFactor)},
		{"PURSUER_SPEED", floatSetter(&c.PursuerSpeed)},
		{"PURSUER_COUNT", intSetter(&c.PursuerCount)},
		{"PURSUER_MIN_SPAWN_DISTANCE", intSetter(&c.PursuerMinSpawnDistance)},
		{"REPATH_INTERVAL", durationSetter(&c.RepathInterval)},
		{"TICK_INTERVAL", durationSetter(&c.TickInterval)},
		{"COLLISION_THRESHOLD", floatSetter(&c.CollisionThreshold)},
		{"MAX_GENERATION_ATTEMPTS", intSetter(&c.MaxGenerationAttempts)},
		{"SEED", func(s string) error {
			v, err := strconv.ParseInt(s, 10, 64)
			if err == nil {
				c.Seed = v
			}
			return err
		}},
	}

	for _, o := range overrides {
		raw, ok := lookup(EnvPrefix + o.key)
		if !ok || raw == "" {
			continue
		}
		if err := o.set(raw); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, o.key, raw, err)
		}
	}
	return nil
}

// Validate checks ranges, returning the first violation wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.PlayerSpeed <= 0:
		return fmt.Errorf("%w: player_speed must be positive, got %v", ErrInvalidConfig, c.PlayerSpeed)
	case c.PlayerStepFactor <= 0 || c.PlayerStepFactor > 1:
		return fmt.Errorf("%w: player_step_factor must be in (0,1], got %v", ErrInvalidConfig, c.PlayerStepFactor)
	case c.PursuerSpeed <= 0:
		return fmt.Errorf("%w: pursuer_speed must be positive, got %v", ErrInvalidConfig, c.PursuerSpeed)
	case c.PursuerCount < 0:
		return fmt.Errorf("%w: pursuer_count must not be negative, got %d", ErrInvalidConfig, c.PursuerCount)
	case c.PursuerMinSpawnDistance < 0:
		return fmt.Errorf("%w: pursuer_min_spawn_distance must not be negative, got %d", ErrInvalidConfig, c.PursuerMinSpawnDistance)
	case c.RepathInterval <= 0:
		return fmt.Errorf("%w: repath_interval must be positive, got %v", ErrInvalidConfig, c.RepathInterval)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	case c.CollisionThreshold <= 0 || c.CollisionThreshold >= 1:
		return fmt.Errorf("%w: collision_threshold must be in (0,1), got %v", ErrInvalidConfig, c.CollisionThreshold)
	case c.MaxGenerationAttempts < 1:
		return fmt.Errorf("%w: max_generation_attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxGenerationAttempts)
	}
	return nil
}

// --- Helpers ---

func intSetter(dst *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err == nil {
			*dst = v
		}
		return err
	}
}

func floatSetter(dst *float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			*dst = v
		}
		return err
	}
}

func durationSetter(dst *time.Duration) func(string) error {
	return func(s string) error {
		v, err := time.ParseDuration(s)
		if err == nil {
			*dst = v
		}
		return err
	}
}
