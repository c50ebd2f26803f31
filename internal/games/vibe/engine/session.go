// Package engine is the deterministic simulation of the vibe arcade game.
//
// A Session owns the arena, the player, the enemies, placed devices and
// live blasts. Each call to Tick consumes one Input snapshot and a
// millisecond timestamp and advances the simulation by one frame:
// player motion, enemy motion, devices, blast decay and finally collision
// resolution, all gated by the current Phase. Given the same Params,
// random source and sequence of (Input, now) pairs, two sessions produce
// identical snapshots.
package engine

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseLevelComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Phase messages shown by the UI.
const (
	MessageStart         = "arrow keys to move, spacebar to vibe\npress any arrow key to start"
	MessageGameOver      = "game over!\npress space or enter to restart"
	MessageLevelComplete = "level complete!\npress space or enter to continue"
)

// LevelTuner adjusts the params used for a given level.
// Level numbering starts at 1.
type LevelTuner interface {
	TuneLevel(level int, base Params) Params
}

// HUD is the UI-facing summary of a session.
type HUD struct {
	Score   int
	Lives   int
	Enemies int
	Level   int
	Message string
}

// TickResult is what one Tick produced.
type TickResult struct {
	Phase      Phase
	Events     []Event
	HUD        HUD
	HUDChanged bool // HUD differs from the last returned one
}

// Session is one run of the game, from the start screen to game over and
// back again.
type Session struct {
	base   Params // As configured
	params Params // Tuned for the current level
	rng    Random
	tuner  LevelTuner

	phase      Phase
	score      int
	lives      int
	level      int
	frame      uint64
	now        int64
	paused     bool
	pauseStart int64

	// Confirm only fires on the tick the key goes down.
	confirmHeld bool

	template *Grid
	grid     *Grid
	player   Player
	enemies  []Enemy
	devices  []Device
	blasts   []Blast

	blocksDestroyed int
	enemiesKilled   int

	events  []Event
	lastHUD HUD
	hudSent bool
}

// Option configures a Session at construction.
type Option func(*Session)

// WithTuner installs a per-level params adjuster, applied from level 1.
func WithTuner(t LevelTuner) Option {
	return func(s *Session) {
		s.tuner = t
	}
}

// NewSession validates p and creates a session on the start screen.
// The arena shown behind the start message is the one the first level
// is played on.
func NewSession(p Params, rng Random, opts ...Option) (*Session, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	spawns := make([]Coord, len(p.Spawns))
	copy(spawns, p.Spawns)
	p.Spawns = spawns

	s := &Session{
		base:  p,
		rng:   rng,
		phase: PhaseStart,
		lives: p.StartingLives,
		level: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetLevel(false, Input{})
	return s, nil
}

// Tick advances the session by one frame.
func (s *Session) Tick(in Input, now int64) TickResult {
	s.events = nil
	s.now = now

	confirm := in.confirms() && !s.confirmHeld
	s.confirmHeld = in.confirms()

	switch s.phase {
	case PhaseStart:
		if in.AnyDirection() {
			s.phase = PhasePlaying
			s.resetLevel(false, in)
			s.emit(Event{Kind: EventLevelStart, Count: s.level})
		}

	case PhasePlaying:
		s.step(in, now)

	case PhaseGameOver:
		if confirm {
			s.score = 0
			s.lives = s.base.StartingLives
			s.level = 1
			s.blocksDestroyed = 0
			s.enemiesKilled = 0
			s.phase = PhasePlaying
			s.resetLevel(true, in)
			s.emit(Event{Kind: EventLevelStart, Count: s.level})
		}

	case PhaseLevelComplete:
		if confirm {
			s.level++
			s.phase = PhasePlaying
			s.resetLevel(true, in)
			s.emit(Event{Kind: EventLevelStart, Count: s.level})
		}
	}

	return s.result()
}

// step runs one simulated frame while Playing.
func (s *Session) step(in Input, now int64) {
	if s.paused {
		if now-s.pauseStart < s.params.DeathPause {
			return
		}
		s.paused = false
		if s.lives == 0 {
			s.phase = PhaseGameOver
			s.emit(Event{Kind: EventGameOver, Count: s.score})
			return
		}
		s.player = newPlayer(s.params.PlayerMoveFrames, in)
		s.emit(Event{Kind: EventRespawn, Pos: s.player.Pos})
	}

	s.frame++
	s.updatePlayer(in, now)
	s.updateEnemies()
	s.updateDevices(now)
	s.decayBlasts(now)
	s.resolveCollisions(now)
}

// resetLevel rebuilds the working state for the current level.
// The arena is regenerated when regenerate is set; otherwise the existing
// template is reused.
func (s *Session) resetLevel(regenerate bool, in Input) {
	s.params = s.base
	if s.tuner != nil {
		s.params = s.tuner.TuneLevel(s.level, s.base)
	}

	if regenerate || s.template == nil {
		s.template = Generate(s.params.Width, s.params.Height, s.params.Fill, s.params.SpawnSlots(), s.rng)
	}
	s.grid = s.template.Clone()

	s.player = newPlayer(s.params.PlayerMoveFrames, in)

	slots := s.params.SpawnSlots()
	s.enemies = make([]Enemy, 0, s.params.EnemyCount)
	for i := 0; i < s.params.EnemyCount; i++ {
		s.enemies = append(s.enemies, Enemy{
			Mover:  Mover{Pos: slots[i]},
			Facing: s.randomDir(),
		})
	}

	s.devices = nil
	s.blasts = nil
	s.frame = 0
	s.paused = false
	s.pauseStart = 0
}

// newPlayer creates a player at the start cell, ready to move at once.
// A player created while the action input is held starts disarmed.
func newPlayer(threshold int, in Input) Player {
	return Player{
		Mover:    Mover{Pos: PlayerStart, MoveTimer: threshold},
		CanPlace: !in.Place,
	}
}

// killPlayer costs a life and starts the death pause.
func (s *Session) killPlayer(now int64, cause DeathCause) {
	if s.lives > 0 {
		s.lives--
	}
	s.paused = true
	s.pauseStart = now
	s.devices = nil
	s.blasts = nil
	s.emit(Event{Kind: EventPlayerDied, Pos: s.player.Pos, Cause: cause})
}

func (s *Session) completeLevel() {
	s.score += s.params.LevelScore
	s.phase = PhaseLevelComplete
	s.emit(Event{Kind: EventLevelComplete, Count: s.level})
}

func (s *Session) enemyMoveFrames() int {
	return s.params.EnemyMoveFrames
}

func (s *Session) result() TickResult {
	hud := s.HUD()
	changed := !s.hudSent || hud != s.lastHUD
	s.lastHUD = hud
	s.hudSent = true

	return TickResult{
		Phase:      s.phase,
		Events:     s.events,
		HUD:        hud,
		HUDChanged: changed,
	}
}

// HUD returns the current UI summary.
func (s *Session) HUD() HUD {
	return HUD{
		Score:   s.score,
		Lives:   s.lives,
		Enemies: len(s.enemies),
		Level:   s.level,
		Message: phaseMessage(s.phase),
	}
}

func phaseMessage(p Phase) string {
	switch p {
	case PhaseStart:
		return MessageStart
	case PhaseGameOver:
		return MessageGameOver
	case PhaseLevelComplete:
		return MessageLevelComplete
	default:
		return ""
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the lives remaining.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level number, starting at 1.
func (s *Session) Level() int { return s.level }

// Frame returns the number of simulated frames in the current level.
func (s *Session) Frame() uint64 { return s.frame }

// Paused reports whether the death pause is active.
func (s *Session) Paused() bool { return s.paused }

// Params returns the params in effect for the current level.
func (s *Session) Params() Params { return s.params }

// Stats returns the running totals of destroyed blocks and killed enemies.
func (s *Session) Stats() (blocks, enemies int) {
	return s.blocksDestroyed, s.enemiesKilled
}
