package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, string(model.KindScanList), c.Engine)

	e, err := c.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, c.Width, e.Width())
	assert.Equal(t, c.Height, e.Height())
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"width": 40, "height": 30, "engine": "linked", "frame_rate": 1000000}`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Width)
	assert.Equal(t, 30, c.Height)
	assert.Equal(t, "linked", c.Engine)
	assert.Equal(t, time.Millisecond, c.FrameRate)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultConfig().MaxGenerations, c.MaxGenerations)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
width: 64
height: 48
engine: parallel
workers: 4
pattern: patterns/glider.rle
frame_rate: 150ms
max_generations: 10
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, 48, c.Height)
	assert.Equal(t, "parallel", c.Engine)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "patterns/glider.rle", c.Pattern)
	assert.Equal(t, 150*time.Millisecond, c.FrameRate)
	assert.Equal(t, 10, c.MaxGenerations)

	e, err := c.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, 4, e.(*model.ParallelScanner).Workers())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "bad.json", `{"width": "wide"}`))
	require.Error(t, err)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "width: [1, 2"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":       func(c *Config) { c.Width = 0 },
		"negative height":  func(c *Config) { c.Height = -3 },
		"unknown engine":   func(c *Config) { c.Engine = "hashlife" },
		"negative workers": func(c *Config) { c.Workers = -1 },
		"negative limit":   func(c *Config) { c.MaxGenerations = -1 },
		"density above 1":   func(c *Config) { c.RandomDensity = 1.5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
