package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration, used as a
// last resort when the embedded YAML fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseMs:      800,
			MinMs:       50,
			SpeedFactor: 0.8,
			Fixed:       false,
		},
		Gameplay: GameplayConfig{
			StartLevel:    1,
			PreviewLength: 1,
		},
		UI: UIConfig{
			Ghost: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game ID.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_zen":
		return defaultTetrisYAML
	default:
		return nil
	}
}
