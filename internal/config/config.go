package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds output location and animation settings for rotviz.
type Config struct {
	OutputDir   string `json:"output_dir"`
	Frames      int    `json:"frames"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Points      int    `json:"points"`
	Seed        uint64 `json:"seed"`
	Format      string `json:"format"` // "webp" or "tga"
	Workers     int    `json:"workers"`
}

// Flags carries CLI overrides; zero values leave the config untouched.
type Flags struct {
	OutputDir string
	Frames    int
	Size      int
	Points    int
	Seed      uint64
	Format    string
	Workers   int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flags over the file config and fills remaining empty
// fields with defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Points > 0 {
		c.Points = flags.Points
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Frames == 0 {
		c.Frames = 72
	}
	if c.Size == 0 {
		c.Size = 512
	}
	if c.Supersample == 0 {
		c.Supersample = 2
	}
	if c.Points == 0 {
		c.Points = 800
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
}
