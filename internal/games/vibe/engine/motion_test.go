package engine

import "testing"

func TestBlockedMovesKeepPosition(t *testing.T) {
	tests := []struct {
		name  string
		from  Coord
		delta Coord
		setup func(s *Session)
	}{
		{
			name:  "out of bounds",
			from:  C(0, 0),
			delta: C(-1, 0),
		},
		{
			name:  "border",
			from:  C(1, 1),
			delta: C(0, -1),
		},
		{
			name:  "pillar",
			from:  C(1, 2),
			delta: C(1, 0),
		},
		{
			name:  "destructible",
			from:  C(3, 1),
			delta: C(1, 0),
			setup: func(s *Session) { s.grid.Set(C(4, 1), TileDestructible) },
		},
		{
			name:  "blast",
			from:  C(1, 1),
			delta: C(0, 1),
			setup: func(s *Session) { s.blasts = []Blast{{Pos: C(1, 2)}} },
		},
		{
			name:  "armed device",
			from:  C(3, 1),
			delta: C(1, 0),
			setup: func(s *Session) { s.devices = []Device{{Pos: C(4, 1)}} },
		},
		{
			name:  "reoccupiable device from elsewhere",
			from:  C(3, 1),
			delta: C(1, 0),
			setup: func(s *Session) { s.devices = []Device{{Pos: C(4, 1), Reoccupy: true}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			if tt.setup != nil {
				tt.setup(s)
			}

			m := Mover{Pos: tt.from}
			for i := 0; i < 10; i++ {
				if TryAdvance(&m, tt.delta, 1, s.CanEnter) {
					t.Fatalf("move %v+%v was accepted", tt.from, tt.delta)
				}
			}
			if m.Pos != tt.from {
				t.Errorf("position = %v, want %v", m.Pos, tt.from)
			}
		})
	}
}

func TestReoccupyOwnDevice(t *testing.T) {
	s := newTestSession(t, nil)
	s.devices = []Device{{Pos: C(3, 1), Reoccupy: true}}

	if !s.CanEnter(C(3, 1), C(3, 1)) {
		t.Error("player standing on its fresh device should be allowed to stay")
	}

	s.devices[0].Reoccupy = false
	if s.CanEnter(C(3, 1), C(3, 1)) {
		t.Error("device should block once reoccupy is cleared")
	}
}

func TestTryAdvanceThreshold(t *testing.T) {
	s := newTestSession(t, nil)
	m := Mover{Pos: C(1, 1)}

	for i := 1; i < 8; i++ {
		if TryAdvance(&m, C(1, 0), 8, s.CanEnter) {
			t.Fatalf("moved after %d ticks, threshold is 8", i)
		}
	}
	if !TryAdvance(&m, C(1, 0), 8, s.CanEnter) {
		t.Fatal("did not move on the 8th tick")
	}
	if m.Pos != C(2, 1) || m.MoveTimer != 0 {
		t.Errorf("after step: pos %v timer %d, want (2,1) timer 0", m.Pos, m.MoveTimer)
	}
}

func TestIdleMakesNextMoveImmediate(t *testing.T) {
	s := newTestSession(t, nil)
	startPlaying(t, s)

	s.Tick(Input{}, 16)
	if s.player.MoveTimer != s.params.PlayerMoveFrames {
		t.Fatalf("idle timer = %d, want %d", s.player.MoveTimer, s.params.PlayerMoveFrames)
	}

	s.Tick(Input{Right: true}, 33)
	if s.player.Pos != C(2, 1) {
		t.Errorf("player at %v, want (2,1) right after idle", s.player.Pos)
	}
}

func TestDiagonalInput(t *testing.T) {
	s := newTestSession(t, nil)
	threshold := s.params.PlayerMoveFrames

	s.player.Pos = C(2, 1)
	s.player.Idle(threshold)
	s.updatePlayer(Input{Down: true, Right: true}, 0)
	if s.player.Pos != C(3, 2) {
		t.Errorf("diagonal: player at %v, want (3,2)", s.player.Pos)
	}

	// From an odd-odd cell every diagonal lands on a pillar
	s.player.Pos = C(3, 3)
	s.player.Idle(threshold)
	s.updatePlayer(Input{Down: true, Right: true}, 0)
	if s.player.Pos != C(3, 3) {
		t.Errorf("diagonal into pillar: player at %v, want (3,3)", s.player.Pos)
	}

	s.player.Pos = C(3, 1)
	s.player.Idle(threshold)
	s.updatePlayer(Input{Down: true, Left: true, Right: true}, 0)
	if s.player.Pos != C(3, 2) {
		t.Errorf("opposite keys should cancel: player at %v, want (3,2)", s.player.Pos)
	}
}

func TestEnemyTurnsOnWall(t *testing.T) {
	s := newTestSession(t, func(p *Params) { p.EnemyTurnChance = 0 })
	s.rng = fixedRandom{n: int(DirDown)}
	s.enemies = []Enemy{{Mover: Mover{Pos: C(3, 1), MoveTimer: 17}, Facing: DirUp}}

	s.updateEnemies()
	e := s.enemies[0]
	if e.Pos != C(3, 1) {
		t.Fatalf("enemy walked into the border: %v", e.Pos)
	}
	if e.Facing != DirDown {
		t.Fatalf("facing = %v, want down after rejection", e.Facing)
	}

	s.updateEnemies()
	if got := s.enemies[0].Pos; got != C(3, 2) {
		t.Errorf("enemy at %v, want (3,2)", got)
	}
}

func TestEnemyWaitsForThreshold(t *testing.T) {
	s := newTestSession(t, func(p *Params) { p.EnemyTurnChance = 0 })
	s.enemies = []Enemy{{Mover: Mover{Pos: C(3, 3)}, Facing: DirRight}}

	for i := 1; i < s.params.EnemyMoveFrames; i++ {
		s.updateEnemies()
		if s.enemies[0].Pos != C(3, 3) {
			t.Fatalf("enemy moved after %d ticks", i)
		}
	}
	s.updateEnemies()
	if s.enemies[0].Pos != C(4, 3) {
		t.Errorf("enemy at %v, want (4,3)", s.enemies[0].Pos)
	}
}
