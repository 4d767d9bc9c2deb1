// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for the puzzle platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid value")

// SlideConfig contains all configuration for the sliding puzzle.
type SlideConfig struct {
	Board   SlideBoard   `yaml:"board"`
	Shuffle SlideShuffle `yaml:"shuffle"`
}

// SlideBoard defines the selectable board sizes.
type SlideBoard struct {
	Size    int `yaml:"size"`     // Default N for an N×N board
	MinSize int `yaml:"min_size"` // Smallest size offered in menus
	MaxSize int `yaml:"max_size"` // Largest size offered in menus
}

// SlideShuffle defines how far the shuffle walks from the solved board.
type SlideShuffle struct {
	DepthFactor int `yaml:"depth_factor"` // Moves per cell; never below MinDepthFactor
}

// MinDepthFactor is the smallest shuffle depth, in moves per cell, that
// keeps a shuffled board away from the solved one.
const MinDepthFactor = 10

// Validate checks that the sliding puzzle settings are usable.
func (c SlideConfig) Validate() error {
	if c.Board.MinSize < 2 {
		return fmt.Errorf("%w: board.min_size %d < 2", ErrInvalidConfig, c.Board.MinSize)
	}
	if c.Board.MaxSize < c.Board.MinSize {
		return fmt.Errorf("%w: board.max_size %d < min_size %d", ErrInvalidConfig, c.Board.MaxSize, c.Board.MinSize)
	}
	if c.Board.Size < c.Board.MinSize || c.Board.Size > c.Board.MaxSize {
		return fmt.Errorf("%w: board.size %d outside %d..%d", ErrInvalidConfig, c.Board.Size, c.Board.MinSize, c.Board.MaxSize)
	}
	if c.Shuffle.DepthFactor < MinDepthFactor {
		return fmt.Errorf("%w: shuffle.depth_factor %d < %d", ErrInvalidConfig, c.Shuffle.DepthFactor, MinDepthFactor)
	}
	return nil
}

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Board T2048Board `yaml:"board"`
	Rules T2048Rules `yaml:"rules"`
}

// T2048Board defines the board dimension.
type T2048Board struct {
	Size int `yaml:"size"`
}

// T2048Rules defines spawning and winning.
type T2048Rules struct {
	WinTile    int     `yaml:"win_tile"`    // Endless mode "won" threshold
	Spawn4Prob float64 `yaml:"spawn4_prob"` // Probability a spawned tile is 4 (0.0-1.0)
	StartTiles int     `yaml:"start_tiles"` // Tiles placed on a fresh board
}

// Validate checks that the 2048 settings are usable.
func (c T2048Config) Validate() error {
	if c.Board.Size < 2 || c.Board.Size > 8 {
		return fmt.Errorf("%w: board.size %d outside 2..8", ErrInvalidConfig, c.Board.Size)
	}
	if c.Rules.WinTile < 4 || c.Rules.WinTile&(c.Rules.WinTile-1) != 0 {
		return fmt.Errorf("%w: rules.win_tile %d is not a power of two >= 4", ErrInvalidConfig, c.Rules.WinTile)
	}
	if c.Rules.Spawn4Prob < 0 || c.Rules.Spawn4Prob > 1 {
		return fmt.Errorf("%w: rules.spawn4_prob %v outside 0..1", ErrInvalidConfig, c.Rules.Spawn4Prob)
	}
	if c.Rules.StartTiles < 1 || c.Rules.StartTiles > c.Board.Size*c.Board.Size {
		return fmt.Errorf("%w: rules.start_tiles %d", ErrInvalidConfig, c.Rules.StartTiles)
	}
	return nil
}
