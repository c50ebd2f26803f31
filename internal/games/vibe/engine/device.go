package engine

// Device is a placed vibe counting down to detonation.
type Device struct {
	Pos      Coord
	PlacedAt int64
	Reoccupy bool // Player may still stand on the origin; cleared for good once they leave
}

// Blast is one burning cell of a detonation.
type Blast struct {
	Pos       Coord
	CreatedAt int64
}

// PlaceDevice drops a device under the player.
// It is a no-op while the cap is reached or the latch is unset.
func (s *Session) PlaceDevice(now int64) bool {
	if !s.player.CanPlace || len(s.devices) >= s.params.DeviceCap {
		return false
	}

	s.devices = append(s.devices, Device{
		Pos:      s.player.Pos,
		PlacedAt: now,
		Reoccupy: true,
	})
	s.player.CanPlace = false
	s.emit(Event{Kind: EventDevicePlaced, Pos: s.player.Pos})
	return true
}

// updateDevices releases the origin lock and detonates expired devices.
func (s *Session) updateDevices(now int64) {
	for i := len(s.devices) - 1; i >= 0; i-- {
		d := &s.devices[i]

		if d.Reoccupy && s.player.Pos != d.Pos {
			d.Reoccupy = false
		}

		if now-d.PlacedAt >= s.params.DeviceTimer {
			origin := d.Pos
			s.devices = append(s.devices[:i], s.devices[i+1:]...)
			s.Detonate(origin, now)
		}
	}
}

// Detonate burns the origin, then walks each cardinal ray outward up to
// the device range. Indestructible cells and the grid edge stop a ray
// before it burns; a destructible cell burns, turns empty, scores, and
// stops the ray. It returns the cells that caught fire.
func (s *Session) Detonate(origin Coord, now int64) []Coord {
	burned := make([]Coord, 0, 4*s.params.DeviceRange+1)

	burn := func(c Coord) bool {
		if !s.grid.InBounds(c) || s.grid.Get(c) == TileIndestructible {
			return false
		}

		s.blasts = append(s.blasts, Blast{Pos: c, CreatedAt: now})
		burned = append(burned, c)

		if s.grid.Get(c) == TileDestructible {
			s.grid.Set(c, TileEmpty)
			s.score += s.params.BrickScore
			s.blocksDestroyed++
			s.emit(Event{Kind: EventBlockDestroyed, Pos: c})
			return false
		}
		return true
	}

	if burn(origin) {
		for _, dir := range blastRays {
			for step := 1; step <= s.params.DeviceRange; step++ {
				if !burn(origin.Add(dir.Scale(step))) {
					break
				}
			}
		}
	}

	s.emit(Event{Kind: EventDetonation, Pos: origin, Count: len(burned)})
	return burned
}

// decayBlasts drops blasts older than the visible duration.
func (s *Session) decayBlasts(now int64) {
	kept := s.blasts[:0]
	for _, b := range s.blasts {
		if now-b.CreatedAt < s.params.BlastTimeout {
			kept = append(kept, b)
		}
	}
	s.blasts = kept
}
