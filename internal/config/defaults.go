package config

import (
	_ "embed"
)

//go:embed defaults/vibe.yaml
var defaultVibeYAML []byte

// DefaultVibeConfig returns the hardcoded vibe configuration.
// It matches defaults/vibe.yaml.
func DefaultVibeConfig() VibeConfig {
	return VibeConfig{
		Arena: VibeArena{
			Width:  17,
			Height: 15,
			Fill:   0.25,
			Spawns: []SpawnPoint{
				{X: 11, Y: 1}, {X: 11, Y: 9}, {X: 1, Y: 9},
				{X: 6, Y: 1}, {X: 6, Y: 9}, {X: 11, Y: 5},
			},
		},
		Motion: VibeMotion{
			PlayerMoveFrames: 8,
			EnemyMoveFrames:  18,
			EnemyTurnChance:  0.1,
		},
		Device: VibeDevice{
			TimerMs: 3000,
			Range:   2,
			Cap:     1,
			BlastMs: 500,
		},
		Session: VibeSession{
			Lives:        3,
			Enemies:      6,
			DeathPauseMs: 2000,
		},
		Scoring: VibeScoring{
			Brick: 10,
			Enemy: 100,
			Level: 500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				EnemySpeedup: 8,
				FillIncrease: 0.15,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "vibe":
		return defaultVibeYAML
	default:
		return nil
	}
}
