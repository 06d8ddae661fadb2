// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

// TetrisConfig contains all tunable parameters of the tetris game.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gravity  GravityConfig  `yaml:"gravity"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	UI       UIConfig       `yaml:"ui"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the fall-speed curve.
type GravityConfig struct {
	BaseMs      int     `yaml:"base_ms"`      // interval at level 1
	MinMs       int     `yaml:"min_ms"`       // floor for high levels
	SpeedFactor float64 `yaml:"speed_factor"` // per-level multiplier
	Fixed       bool    `yaml:"fixed"`        // never rescale with the level
}

// GameplayConfig defines progression and queue parameters.
type GameplayConfig struct {
	StartLevel    int `yaml:"start_level"`
	PreviewLength int `yaml:"preview_length"`
}

// UIConfig defines presentation toggles.
type UIConfig struct {
	Ghost bool `yaml:"ghost"` // show the landing projection
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyTetrisPreset adjusts the gravity curve for a difficulty preset.
// The fixed preset freezes gravity at the base interval regardless of level.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMs = 1000
		cfg.Gravity.Fixed = false
	case DifficultyNormal:
		cfg.Gravity.BaseMs = 800
		cfg.Gravity.Fixed = false
	case DifficultyHard:
		cfg.Gravity.BaseMs = 500
		cfg.Gravity.Fixed = false
	case DifficultyFixed:
		cfg.Gravity.Fixed = true
	}
}
