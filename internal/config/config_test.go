package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	slide, err := LoadSlide("")
	if err != nil {
		t.Fatalf("LoadSlide() failed: %v", err)
	}
	if slide != DefaultSlideConfig() {
		t.Errorf("LoadSlide() = %+v, want %+v", slide, DefaultSlideConfig())
	}

	t2048, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}
	if t2048 != DefaultT2048Config() {
		t.Errorf("LoadT2048() = %+v, want %+v", t2048, DefaultT2048Config())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  win_tile: 512\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048(%s) failed: %v", path, err)
	}
	if cfg.Rules.WinTile != 512 {
		t.Errorf("WinTile = %d, want 512", cfg.Rules.WinTile)
	}
	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, want default 4", cfg.Board.Size)
	}
	if cfg.Rules.Spawn4Prob != 0.10 {
		t.Errorf("Spawn4Prob = %v, want default 0.10", cfg.Rules.Spawn4Prob)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".puzzles", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("board:\n  size: 3\n")
	if err := os.WriteFile(filepath.Join(dir, "slide.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlide("")
	if err != nil {
		t.Fatalf("LoadSlide() failed: %v", err)
	}
	if cfg.Board.Size != 3 {
		t.Errorf("Board.Size = %d, want 3", cfg.Board.Size)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadSlide(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadSlide() with missing file should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("shuffle:\n  depth_factor: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSlide(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSlide() error = %v, want ErrInvalidConfig", err)
	}
}

func TestT2048Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		ok     bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"size too small", func(c *T2048Config) { c.Board.Size = 1 }, false},
		{"win tile not power of two", func(c *T2048Config) { c.Rules.WinTile = 1000 }, false},
		{"spawn prob above one", func(c *T2048Config) { c.Rules.Spawn4Prob = 1.5 }, false},
		{"too many start tiles", func(c *T2048Config) { c.Rules.StartTiles = 17 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	slide := DefaultSlideConfig()
	ApplySlidePreset(&slide, DifficultyHard)
	if slide.Shuffle.DepthFactor != 50 {
		t.Errorf("hard DepthFactor = %d, want 50", slide.Shuffle.DepthFactor)
	}

	t2048 := DefaultT2048Config()
	ApplyT2048Preset(&t2048, DifficultyEasy)
	if t2048.Rules.Spawn4Prob != 0.05 {
		t.Errorf("easy Spawn4Prob = %v, want 0.05", t2048.Rules.Spawn4Prob)
	}

	if ParseDifficulty("extreme") != "" {
		t.Error("ParseDifficulty should reject unknown presets")
	}
	if ParseDifficulty("normal") != DifficultyNormal {
		t.Error("ParseDifficulty(normal) should return DifficultyNormal")
	}
}
