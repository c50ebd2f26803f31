package engine

import (
	"encoding/binary"
	"hash/fnv"
)

// DeviceView is a placed device as seen by a renderer.
type DeviceView struct {
	Pos       Coord
	Remaining int64 // Milliseconds until detonation, never negative
}

// Snapshot is a copy of everything a renderer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	Phase   Phase
	Paused  bool
	Level   int
	Frame   uint64
	Score   int
	Lives   int
	Grid    *Grid
	Player  Player
	Enemies []Enemy
	Devices []DeviceView
	Blasts  []Coord
}

// Snapshot captures the session state as of the last Tick.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:   s.phase,
		Paused:  s.paused,
		Level:   s.level,
		Frame:   s.frame,
		Score:   s.score,
		Lives:   s.lives,
		Grid:    s.grid.Clone(),
		Player:  s.player,
		Enemies: make([]Enemy, len(s.enemies)),
		Devices: make([]DeviceView, 0, len(s.devices)),
		Blasts:  make([]Coord, 0, len(s.blasts)),
	}
	copy(snap.Enemies, s.enemies)

	for _, d := range s.devices {
		remaining := s.params.DeviceTimer - (s.now - d.PlacedAt)
		if remaining < 0 {
			remaining = 0
		}
		snap.Devices = append(snap.Devices, DeviceView{Pos: d.Pos, Remaining: remaining})
	}
	for _, b := range s.blasts {
		snap.Blasts = append(snap.Blasts, b.Pos)
	}

	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putCoord := func(c Coord) {
		put(int64(c.X))
		put(int64(c.Y))
	}

	put(int64(s.Phase))
	if s.Paused {
		put(1)
	} else {
		put(0)
	}
	put(int64(s.Level))
	put(int64(s.Frame))
	put(int64(s.Score))
	put(int64(s.Lives))

	if s.Grid != nil {
		put(int64(s.Grid.W))
		put(int64(s.Grid.H))
		cells := make([]byte, len(s.Grid.Cells))
		for i, t := range s.Grid.Cells {
			cells[i] = byte(t)
		}
		h.Write(cells)
	}

	putCoord(s.Player.Pos)
	put(int64(s.Player.MoveTimer))
	if s.Player.CanPlace {
		put(1)
	} else {
		put(0)
	}

	put(int64(len(s.Enemies)))
	for _, e := range s.Enemies {
		putCoord(e.Pos)
		put(int64(e.MoveTimer))
		put(int64(e.Facing))
	}

	put(int64(len(s.Devices)))
	for _, d := range s.Devices {
		putCoord(d.Pos)
		put(d.Remaining)
	}

	put(int64(len(s.Blasts)))
	for _, b := range s.Blasts {
		putCoord(b)
	}

	return h.Sum64()
}

// EnemyAt reports whether an enemy occupies c.
func (s Snapshot) EnemyAt(c Coord) bool {
	for _, e := range s.Enemies {
		if e.Pos == c {
			return true
		}
	}
	return false
}

// DeviceAt returns the device on c, if any.
func (s Snapshot) DeviceAt(c Coord) (DeviceView, bool) {
	for _, d := range s.Devices {
		if d.Pos == c {
			return d, true
		}
	}
	return DeviceView{}, false
}

// BlastAt reports whether c is burning.
func (s Snapshot) BlastAt(c Coord) bool {
	for _, b := range s.Blasts {
		if b == c {
			return true
		}
	}
	return false
}
