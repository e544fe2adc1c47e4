package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-chase/parameter"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.MazeRows, cfg.Rows)
	assert.Equal(t, parameter.RepathInterval, cfg.RepathInterval)
	assert.Less(t, cfg.PursuerSpeed, cfg.PlayerSpeed, "pursuers are tuned slower than the player")
	assert.Zero(t, cfg.Seed)
}

func TestLoadNoLayers(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "maze.yaml", `
rows: 11
cols: 15
pursuer_count: 5
repath_interval: 750ms
collision_threshold: 0.4
seed: 42
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 11, cfg.Rows)
	assert.Equal(t, 15, cfg.Cols)
	assert.Equal(t, 5, cfg.PursuerCount)
	assert.Equal(t, 750*time.Millisecond, cfg.RepathInterval)
	assert.Equal(t, 0.4, cfg.CollisionThreshold)
	assert.Equal(t, int64(42), cfg.Seed)
	// Untouched keys keep defaults
	assert.Equal(t, parameter.PlayerSpeed, cfg.PlayerSpeed)
}

func TestLoadMissingYAML(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "rows: [1, 2\n")
	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestEnvOverridesYAMLAndDotenv(t *testing.T) {
	yamlPath := writeFile(t, "maze.yaml", "rows: 11\ncols: 15\n")
	envPath := writeFile(t, ".env", "MAZECHASE_ROWS=25\nMAZECHASE_COLS=27\nMAZECHASE_TICK_INTERVAL=20ms\n")

	t.Setenv("MAZECHASE_COLS", "33")
	t.Setenv("MAZECHASE_PURSUER_SPEED", "2.5")

	cfg, err := Load(yamlPath, envPath)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Rows, ".env beats YAML")
	assert.Equal(t, 33, cfg.Cols, "process env beats .env")
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 2.5, cfg.PursuerSpeed)
}

func TestMissingDotenvIsIgnored(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("MAZECHASE_PURSUER_COUNT", "many")
	_, err := Load("", "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"player speed", func(c *Config) { c.PlayerSpeed = 0 }},
		{"step factor zero", func(c *Config) { c.PlayerStepFactor = 0 }},
		{"step factor above one", func(c *Config) { c.PlayerStepFactor = 1.5 }},
		{"pursuer speed", func(c *Config) { c.PursuerSpeed = -1 }},
		{"pursuer count", func(c *Config) { c.PursuerCount = -1 }},
		{"spawn distance", func(c *Config) { c.PursuerMinSpawnDistance = -2 }},
		{"repath interval", func(c *Config) { c.RepathInterval = 0 }},
		{"tick interval", func(c *Config) { c.TickInterval = -time.Second }},
		{"threshold zero", func(c *Config) { c.CollisionThreshold = 0 }},
		{"threshold full cell", func(c *Config) { c.CollisionThreshold = 1 }},
		{"attempts", func(c *Config) { c.MaxGenerationAttempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	edge := Default()
	edge.PlayerStepFactor = 1
	edge.PursuerCount = 0
	assert.NoError(t, edge.Validate())
}
