package engine

// Mover is the movement state shared by the player and enemies.
type Mover struct {
	Pos       Coord
	MoveTimer int // Ticks accumulated toward the next step
}

// Player is the user-controlled entity.
type Player struct {
	Mover
	CanPlace bool // One-shot latch, re-armed when the action input is released
}

// Enemy is a roaming hostile entity.
type Enemy struct {
	Mover
	Facing Dir
}

// EntryCheck decides whether a mover standing on from may step onto to.
type EntryCheck func(from, to Coord) bool

// TryAdvance counts one tick toward a step by delta and commits the step
// once the counter reaches threshold and the destination is enterable.
// On success the counter resets to zero; on rejection it is left as is,
// so the next tick retries immediately.
func TryAdvance(m *Mover, delta Coord, threshold int, canEnter EntryCheck) bool {
	m.MoveTimer++
	if m.MoveTimer < threshold {
		return false
	}
	return m.commit(delta, canEnter)
}

// commit performs the step if the destination is enterable.
func (m *Mover) commit(delta Coord, canEnter EntryCheck) bool {
	dest := m.Pos.Add(delta)
	if !canEnter(m.Pos, dest) {
		return false
	}
	m.Pos = dest
	m.MoveTimer = 0
	return true
}

// Idle primes the counter so the next intent commits without waiting.
func (m *Mover) Idle(threshold int) {
	m.MoveTimer = threshold
}

// CanEnter is the occupancy rule for every mover.
func (s *Session) CanEnter(from, to Coord) bool {
	if !s.grid.InBounds(to) || s.grid.Get(to) != TileEmpty {
		return false
	}

	for _, d := range s.devices {
		if d.Pos != to {
			continue
		}
		if d.Reoccupy && from == d.Pos {
			continue
		}
		return false
	}

	for _, b := range s.blasts {
		if b.Pos == to {
			return false
		}
	}

	return true
}

// updatePlayer applies the movement intent and the placement latch.
func (s *Session) updatePlayer(in Input, now int64) {
	p := &s.player

	if delta, ok := in.Delta(); ok {
		TryAdvance(&p.Mover, delta, s.params.PlayerMoveFrames, s.CanEnter)
	} else {
		p.Idle(s.params.PlayerMoveFrames)
	}

	if in.Place {
		s.PlaceDevice(now)
	} else {
		p.CanPlace = true
	}
}

// updateEnemies advances every enemy along its facing.
func (s *Session) updateEnemies() {
	threshold := s.enemyMoveFrames()
	for i := range s.enemies {
		e := &s.enemies[i]
		e.MoveTimer++
		if e.MoveTimer < threshold {
			continue
		}
		if s.rng.Float64() < s.params.EnemyTurnChance {
			e.Facing = s.randomDir()
		}
		if !e.commit(e.Facing.Delta(), s.CanEnter) {
			e.Facing = s.randomDir()
		}
	}
}

func (s *Session) randomDir() Dir {
	return Dir(s.rng.Intn(dirCount))
}
