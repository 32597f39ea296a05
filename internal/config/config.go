// Package config loads server configuration from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config carries the discovery engine's tunables.
type Config struct {
	// Workers bounds the content-search worker pool.
	Workers int `yaml:"workers"`
	// ChunkSizeKiB is the streaming read size for content search.
	ChunkSizeKiB int `yaml:"chunk_size_kib"`
	// CarryOverKiB is the look-back window kept across chunk
	// boundaries. Matches longer than carry-over + chunk size are not
	// guaranteed to be found.
	CarryOverKiB int `yaml:"carry_over_kib"`
	// Ignore lists glob patterns excluded from every walk. Empty by
	// default: nothing is excluded.
	Ignore []string `yaml:"ignore"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		ChunkSizeKiB: 64,
		CarryOverKiB: 32,
	}
}

// Load reads the YAML file at path and overlays it on the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ChunkSizeKiB <= 0 {
		cfg.ChunkSizeKiB = 64
	}
	if cfg.CarryOverKiB <= 0 {
		cfg.CarryOverKiB = 32
	}
	return cfg, nil
}
