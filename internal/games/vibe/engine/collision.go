package engine

// resolveCollisions runs after motion and blasts on every simulated tick.
//
// The player dies on an enemy cell, or failing that on a blast cell.
// Independently, every enemy on a blast cell is destroyed and scored.
// When the enemy set is empty and the player survived the tick, the
// level is complete; a death on the same tick defers completion to the
// first tick after the pause.
func (s *Session) resolveCollisions(now int64) {
	cause := CauseNone
	for _, e := range s.enemies {
		if e.Pos == s.player.Pos {
			cause = CauseEnemy
			break
		}
	}
	if cause == CauseNone && s.blastAt(s.player.Pos) {
		cause = CauseBlast
	}

	survivors := s.enemies[:0]
	for _, e := range s.enemies {
		if s.blastAt(e.Pos) {
			s.score += s.params.EnemyScore
			s.enemiesKilled++
			s.emit(Event{Kind: EventEnemyKilled, Pos: e.Pos})
			continue
		}
		survivors = append(survivors, e)
	}
	s.enemies = survivors

	if cause != CauseNone {
		s.killPlayer(now, cause)
		return
	}

	if len(s.enemies) == 0 {
		s.completeLevel()
	}
}

func (s *Session) blastAt(c Coord) bool {
	for _, b := range s.blasts {
		if b.Pos == c {
			return true
		}
	}
	return false
}
