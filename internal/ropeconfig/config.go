// Package ropeconfig loads the tuning knobs a rope is built with: its
// B-tree branching factor and its chunk capacity. Neither can be a Go
// const generic parameter (Go has none), so they travel as plain fields on
// a value threaded through at construction time instead.
package ropeconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the structural parameters a rope is constructed with.
type Config struct {
	// Fanout is the B-tree's branching factor (FANOUT in the Rust source).
	Fanout int `yaml:"fanout"`

	// ChunkCapacity bounds how many bytes a single leaf chunk can hold
	// (MAX_BYTES in the Rust source).
	ChunkCapacity int `yaml:"chunk_capacity"`
}

// Default returns the production tuning: fanout 8, 1 KiB chunks.
func Default() Config {
	return Config{Fanout: 8, ChunkCapacity: 1024}
}

// Validate reports whether c's fields describe a usable tree: fanout must
// allow at least two children per internal node, and chunk capacity must be
// able to hold at least one byte.
func (c Config) Validate() error {
	if c.Fanout < 2 {
		return fmt.Errorf("ropeconfig: fanout must be at least 2, got %d", c.Fanout)
	}
	if c.ChunkCapacity < 1 {
		return fmt.Errorf("ropeconfig: chunk_capacity must be at least 1, got %d", c.ChunkCapacity)
	}
	return nil
}

// Load reads a YAML config file at path, filling in Default() for any
// field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ropeconfig: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ropeconfig: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
