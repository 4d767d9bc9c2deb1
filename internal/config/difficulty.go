package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplySlidePreset adjusts how thoroughly the board is shuffled.
func ApplySlidePreset(cfg *SlideConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Shuffle.DepthFactor = MinDepthFactor
	case DifficultyNormal:
		cfg.Shuffle.DepthFactor = 2 * MinDepthFactor
	case DifficultyHard:
		cfg.Shuffle.DepthFactor = 5 * MinDepthFactor
	}
}

// ApplyT2048Preset adjusts how often a 4 spawns instead of a 2.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Spawn4Prob = 0.05
	case DifficultyNormal:
		cfg.Rules.Spawn4Prob = 0.10
	case DifficultyHard:
		cfg.Rules.Spawn4Prob = 0.25
	}
}
