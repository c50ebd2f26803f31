package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by every Params validation failure.
var ErrInvalidParams = errors.New("engine: invalid params")

// MinGridSize is the smallest supported width and height.
const MinGridSize = 5

// DefaultSpawns is the enemy spawn table of the classic 17x15 arena.
var DefaultSpawns = []Coord{
	{X: 11, Y: 1}, {X: 11, Y: 9}, {X: 1, Y: 9},
	{X: 6, Y: 1}, {X: 6, Y: 9}, {X: 11, Y: 5},
}

// Params holds every tunable constant of a session.
// Durations are in milliseconds, movement thresholds in ticks.
type Params struct {
	Width  int
	Height int

	PlayerMoveFrames int
	EnemyMoveFrames  int     // Never below PlayerMoveFrames
	EnemyTurnChance  float64 // Per-attempt chance an enemy picks a new facing

	DeviceTimer  int64
	DeviceRange  int
	DeviceCap    int
	BlastTimeout int64

	StartingLives int
	Fill          float64
	DeathPause    int64

	EnemyCount int
	Spawns     []Coord

	BrickScore int
	EnemyScore int
	LevelScore int
}

// DefaultParams returns the classic arcade tuning.
func DefaultParams() Params {
	spawns := make([]Coord, len(DefaultSpawns))
	copy(spawns, DefaultSpawns)

	return Params{
		Width:            17,
		Height:           15,
		PlayerMoveFrames: 8,
		EnemyMoveFrames:  18,
		EnemyTurnChance:  0.1,
		DeviceTimer:      3000,
		DeviceRange:      2,
		DeviceCap:        1,
		BlastTimeout:     500,
		StartingLives:    3,
		Fill:             0.25,
		DeathPause:       2000,
		EnemyCount:       6,
		Spawns:           spawns,
		BrickScore:       10,
		EnemyScore:       100,
		LevelScore:       500,
	}
}

// Validate checks the params against the fixed spawn layout.
// All problems are reported together.
func (p Params) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...))
	}

	if p.Width < MinGridSize || p.Height < MinGridSize {
		fail("grid %dx%d is smaller than %dx%d", p.Width, p.Height, MinGridSize, MinGridSize)
	}
	if p.Fill < 0 || p.Fill > 1 {
		fail("fill %.2f outside [0,1]", p.Fill)
	}
	if p.EnemyTurnChance < 0 || p.EnemyTurnChance > 1 {
		fail("enemy turn chance %.2f outside [0,1]", p.EnemyTurnChance)
	}
	if p.PlayerMoveFrames <= 0 || p.EnemyMoveFrames <= 0 {
		fail("move frames must be positive (player %d, enemy %d)", p.PlayerMoveFrames, p.EnemyMoveFrames)
	}
	if p.EnemyMoveFrames < p.PlayerMoveFrames {
		fail("enemy move frames %d below player move frames %d", p.EnemyMoveFrames, p.PlayerMoveFrames)
	}
	if p.DeviceTimer <= 0 || p.BlastTimeout <= 0 || p.DeathPause <= 0 {
		fail("durations must be positive (device %d, blast %d, pause %d)", p.DeviceTimer, p.BlastTimeout, p.DeathPause)
	}
	if p.DeviceRange < 0 {
		fail("device range %d is negative", p.DeviceRange)
	}
	if p.DeviceCap <= 0 {
		fail("device cap %d must be positive", p.DeviceCap)
	}
	if p.StartingLives <= 0 {
		fail("starting lives %d must be positive", p.StartingLives)
	}
	if p.EnemyCount < 0 {
		fail("enemy count %d is negative", p.EnemyCount)
	}
	if p.BrickScore < 0 || p.EnemyScore < 0 || p.LevelScore < 0 {
		fail("score bonuses must not be negative")
	}

	if len(errs) == 0 {
		if slots := p.SpawnSlots(); p.EnemyCount > len(slots) {
			fail("%d enemies but only %d usable spawn slots", p.EnemyCount, len(slots))
		}
	}

	return errors.Join(errs...)
}

// SpawnSlots returns the spawn table entries an enemy can occupy:
// inside the interior, not on a pillar, not in the start zone, no duplicates.
func (p Params) SpawnSlots() []Coord {
	slots := make([]Coord, 0, len(p.Spawns))
	seen := make(map[Coord]bool, len(p.Spawns))
	for _, c := range p.Spawns {
		interior := c.X >= 1 && c.X < p.Width-1 && c.Y >= 1 && c.Y < p.Height-1
		if !interior || IsPillar(c) || inStartZone(c) || seen[c] {
			continue
		}
		seen[c] = true
		slots = append(slots, c)
	}
	return slots
}
