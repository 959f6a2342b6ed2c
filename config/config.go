// Package config loads engine tunables from a TOML file: which topology to
// play on, transposition table size, and search depth. No teacher file has
// an equivalent (zurichess is single-board and reads flags only); this is
// new domain surface the topology-agnostic core requires.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

// Topology names accepted by the Board.TopologyName field.
const (
	TopologyTraditional = "traditional"
	TopologyHexagonal   = "hexagonal"
	TopologyTriangular  = "triangular"
	TopologyAperiodic   = "aperiodic"
)

// Config is the root of the TOML document.
type Config struct {
	Board  BoardConfig  `toml:"board"`
	Search SearchConfig `toml:"search"`
}

// BoardConfig selects the geometry to play on.
type BoardConfig struct {
	TopologyName string `toml:"topology"`
}

// SearchConfig tunes the searcher.
type SearchConfig struct {
	MaxDepth  int `toml:"max_depth"`
	TableSize int `toml:"table_size"`
}

// Default returns the configuration used when no file is supplied:
// traditional 8x8, depth 6, a million-entry transposition table.
func Default() Config {
	return Config{
		Board:  BoardConfig{TopologyName: TopologyTraditional},
		Search: SearchConfig{MaxDepth: 6, TableSize: 1000000},
	}
}

// Load reads and validates a TOML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Topology resolves the configured name to a board.Topology descriptor.
func (b BoardConfig) Topology() (board.Topology, error) {
	switch b.TopologyName {
	case TopologyTraditional:
		return board.Traditional8x8, nil
	case TopologyHexagonal:
		return board.Hexagonal91, nil
	case TopologyTriangular:
		return board.Triangular55, nil
	case TopologyAperiodic:
		return board.Aperiodic122, nil
	default:
		return board.Topology{}, fmt.Errorf("config: unknown board.topology %q", b.TopologyName)
	}
}

// Validate rejects unknown topology names and non-positive tunables.
func (c Config) Validate() error {
	switch c.Board.TopologyName {
	case TopologyTraditional, TopologyHexagonal, TopologyTriangular, TopologyAperiodic:
	default:
		return fmt.Errorf("config: unknown board.topology %q", c.Board.TopologyName)
	}
	if c.Search.MaxDepth <= 0 {
		return fmt.Errorf("config: search.max_depth must be positive, got %d", c.Search.MaxDepth)
	}
	if c.Search.TableSize <= 0 {
		return fmt.Errorf("config: search.table_size must be positive, got %d", c.Search.TableSize)
	}
	return nil
}
