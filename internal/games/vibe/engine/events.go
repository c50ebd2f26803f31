package engine

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventLevelStart EventKind = iota
	EventDevicePlaced
	EventDetonation
	EventBlockDestroyed
	EventEnemyKilled
	EventPlayerDied
	EventRespawn
	EventLevelComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStart:
		return "level_start"
	case EventDevicePlaced:
		return "device_placed"
	case EventDetonation:
		return "detonation"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerDied:
		return "player_died"
	case EventRespawn:
		return "respawn"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause tells what killed the player.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseEnemy
	CauseBlast
)

func (c DeathCause) String() string {
	switch c {
	case CauseEnemy:
		return "enemy"
	case CauseBlast:
		return "blast"
	default:
		return "none"
	}
}

// Event records one occurrence within a tick.
type Event struct {
	Kind  EventKind
	Pos   Coord
	Count int        // Cells burned for detonations, level number for level events
	Cause DeathCause // Set for EventPlayerDied
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
