package config

import (
	_ "embed"
)

//go:embed defaults/slide.yaml
var defaultSlideYAML []byte

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultSlideConfig returns the default sliding puzzle configuration.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{
		Board: SlideBoard{
			Size:    4,
			MinSize: 3,
			MaxSize: 5,
		},
		Shuffle: SlideShuffle{
			DepthFactor: MinDepthFactor,
		},
	}
}

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size: 4,
		},
		Rules: T2048Rules{
			WinTile:    2048,
			Spawn4Prob: 0.10,
			StartTiles: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "slide":
		return defaultSlideYAML
	case "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
