// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// VibeConfig contains all configuration for the vibe game.
type VibeConfig struct {
	Arena      VibeArena        `yaml:"arena"`
	Motion     VibeMotion       `yaml:"motion"`
	Device     VibeDevice       `yaml:"device"`
	Session    VibeSession      `yaml:"session"`
	Scoring    VibeScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// VibeArena defines the generated arena.
type VibeArena struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Fill   float64      `yaml:"fill"` // Share of free cells turned into destructible blocks
	Spawns []SpawnPoint `yaml:"spawns"`
}

// SpawnPoint is an enemy spawn cell.
type SpawnPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// VibeMotion defines movement speed in ticks per step.
type VibeMotion struct {
	PlayerMoveFrames int     `yaml:"player_move_frames"`
	EnemyMoveFrames  int     `yaml:"enemy_move_frames"`
	EnemyTurnChance  float64 `yaml:"enemy_turn_chance"`
}

// VibeDevice defines the placed device and its blast.
type VibeDevice struct {
	TimerMs int64 `yaml:"timer_ms"`
	Range   int   `yaml:"range"`
	Cap     int   `yaml:"cap"`
	BlastMs int64 `yaml:"blast_ms"`
}

// VibeSession defines lives, enemies and the death pause.
type VibeSession struct {
	Lives        int   `yaml:"lives"`
	Enemies      int   `yaml:"enemies"`
	DeathPauseMs int64 `yaml:"death_pause_ms"`
}

// VibeScoring defines the score bonuses.
type VibeScoring struct {
	Brick int `yaml:"brick"`
	Enemy int `yaml:"enemy"`
	Level int `yaml:"level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemySpeedup int     `yaml:"enemy_speedup"` // Enemy move frames removed at max difficulty
	FillIncrease float64 `yaml:"fill_increase"` // Fill added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
