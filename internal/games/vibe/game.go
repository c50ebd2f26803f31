// Package vibe is the terminal front end of the vibe arcade game: the
// player drops timed vibes that burn through brick walls and clears every
// roaming enemy to advance. The simulation lives in the engine
// subpackage; this package maps platform input to it, renders its
// snapshots and logs what happens.
package vibe

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/engine"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/replay"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
)

// GameID is the registry and score store identifier.
const GameID = "vibe"

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// recording enables input recording for new sessions
var recording bool

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger used for game events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetRecording turns input recording on or off for subsequent resets.
func SetRecording(on bool) {
	recording = on
}

// Game adapts an engine session to the platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.VibeConfig

	session  *engine.Session
	clock    *engine.TickClock
	recorder *replay.Recorder
	hud      engine.HUD
	paused   bool

	layout         layout
	screenTooSmall bool
}

// New creates a new vibe game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Vibe"
}

// Reset starts a new session. Configuration problems fall back to the
// built-in defaults so the game stays playable.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.Normalized()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("config unusable, using defaults", "err", err)
		cfg = config.DefaultVibeConfig()
	}

	session, err := NewSession(cfg, runtime.Seed)
	if err != nil {
		logger.Warn("invalid vibe config, using defaults", "err", err)
		cfg = config.DefaultVibeConfig()
		session, _ = NewSession(cfg, runtime.Seed)
	}

	g.cfg = cfg
	g.session = session
	g.clock = engine.NewTickClock(g.runtime.TickRate)
	g.paused = false
	g.hud = session.HUD()

	g.recorder = nil
	if recording {
		g.recorder = replay.NewRecorder(replay.Header{
			GameID:   GameID,
			Seed:     runtime.Seed,
			TickRate: g.runtime.TickRate,
			Config:   cfg,
			Preset:   string(difficultyPreset),
		})
	}

	g.layout = computeLayout(cfg.Arena.Width, cfg.Arena.Height)
	g.screenTooSmall = runtime.ScreenW < g.layout.minW || runtime.ScreenH < g.layout.minH

	logger.Debug("session reset",
		"seed", runtime.Seed,
		"width", cfg.Arena.Width,
		"height", cfg.Arena.Height,
		"preset", difficultyPreset,
		"recording", recording,
	)
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.layout.minW || h < g.layout.minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.Phase() == engine.PhasePlaying {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ein := engineInput(in)
	g.clock.Advance()
	if g.recorder != nil {
		g.recorder.Record(ein)
	}

	res := g.session.Tick(ein, g.clock.NowMillis())
	if res.HUDChanged {
		g.hud = res.HUD
	}
	g.logEvents(res.Events)

	return core.StepResult{State: g.State()}
}

// engineInput maps platform actions to the engine's held intents.
func engineInput(in core.InputFrame) engine.Input {
	return engine.Input{
		Up:      in.Has(core.ActionUp),
		Down:    in.Has(core.ActionDown),
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Place:   in.Has(core.ActionPlace),
		Confirm: in.Has(core.ActionConfirm),
	}
}

func (g *Game) logEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventBlockDestroyed:
			// Too frequent to be useful
		case engine.EventPlayerDied:
			logger.Debug("player died", "cause", e.Cause, "at", e.Pos, "lives", g.session.Lives())
		case engine.EventDetonation:
			logger.Debug("detonation", "at", e.Pos, "cells", e.Count)
		case engine.EventGameOver:
			logger.Info("game over", "score", g.session.Score(), "level", g.session.Level())
		case engine.EventLevelComplete, engine.EventLevelStart:
			logger.Debug(e.Kind.String(), "level", e.Count, "score", g.session.Score())
		default:
			logger.Debug(e.Kind.String(), "at", e.Pos)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Lives(),
		Level:    g.session.Level(),
		GameOver: g.session.Phase() == engine.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine state for tests and tooling.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// Recording returns the inputs recorded since the last Reset, sealed with
// the current state. It is nil when recording is off.
func (g *Game) Recording() *replay.Replay {
	if g.recorder == nil || g.session == nil {
		return nil
	}
	return g.recorder.Finish(g.session, g.clock.Ticks())
}
