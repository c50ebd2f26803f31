package vibe

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/engine"
)

// ParamsFromConfig converts the file configuration into engine params.
func ParamsFromConfig(cfg config.VibeConfig) engine.Params {
	spawns := make([]engine.Coord, 0, len(cfg.Arena.Spawns))
	for _, sp := range cfg.Arena.Spawns {
		spawns = append(spawns, engine.C(sp.X, sp.Y))
	}

	return engine.Params{
		Width:            cfg.Arena.Width,
		Height:           cfg.Arena.Height,
		PlayerMoveFrames: cfg.Motion.PlayerMoveFrames,
		EnemyMoveFrames:  cfg.Motion.EnemyMoveFrames,
		EnemyTurnChance:  cfg.Motion.EnemyTurnChance,
		DeviceTimer:      cfg.Device.TimerMs,
		DeviceRange:      cfg.Device.Range,
		DeviceCap:        cfg.Device.Cap,
		BlastTimeout:     cfg.Device.BlastMs,
		StartingLives:    cfg.Session.Lives,
		Fill:             cfg.Arena.Fill,
		DeathPause:       cfg.Session.DeathPauseMs,
		EnemyCount:       cfg.Session.Enemies,
		Spawns:           spawns,
		BrickScore:       cfg.Scoring.Brick,
		EnemyScore:       cfg.Scoring.Enemy,
		LevelScore:       cfg.Scoring.Level,
	}
}

// levelTuner raises enemy speed and arena fill as levels advance.
type levelTuner struct {
	difficulty *config.DifficultyManager
}

func (t levelTuner) TuneLevel(level int, base engine.Params) engine.Params {
	base.EnemyMoveFrames = t.difficulty.EnemyMoveFrames(base.EnemyMoveFrames, base.PlayerMoveFrames, level)
	base.Fill = t.difficulty.Fill(base.Fill, level)
	return base
}

// NewSession builds an engine session from a configuration and seed.
// Progression is attached when the configuration enables it.
func NewSession(cfg config.VibeConfig, seed int64) (*engine.Session, error) {
	var opts []engine.Option
	if dm := config.NewDifficultyManager(cfg.Difficulty); dm.IsEnabled() {
		opts = append(opts, engine.WithTuner(levelTuner{difficulty: dm}))
	}

	s, err := engine.NewSession(ParamsFromConfig(cfg), rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		return nil, fmt.Errorf("vibe: %w", err)
	}
	return s, nil
}

// LoadConfig loads the configuration and applies the difficulty preset
// set with SetConfigPath and SetDifficultyPreset.
func LoadConfig() (config.VibeConfig, error) {
	cfg, err := config.LoadVibe(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyVibePreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}
