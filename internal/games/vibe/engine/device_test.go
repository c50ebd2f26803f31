package engine

import (
	"math/rand"
	"sort"
	"testing"
)

func sortedCoords(cs []Coord) []Coord {
	out := append([]Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func blastCells(s *Session) []Coord {
	cells := make([]Coord, 0, len(s.blasts))
	for _, b := range s.blasts {
		cells = append(cells, b.Pos)
	}
	return cells
}

func TestDetonateOpenCross(t *testing.T) {
	s := newTestSession(t, nil)
	s.devices = []Device{{Pos: C(5, 5), PlacedAt: 0}}

	s.updateDevices(2999)
	if len(s.devices) != 1 || len(s.blasts) != 0 {
		t.Fatal("device detonated before its countdown")
	}

	s.updateDevices(3000)
	if len(s.devices) != 0 {
		t.Fatal("device still active after countdown")
	}

	want := sortedCoords([]Coord{
		C(5, 5), C(6, 5), C(7, 5), C(4, 5), C(3, 5),
		C(5, 6), C(5, 7), C(5, 4), C(5, 3),
	})
	got := sortedCoords(blastCells(s))
	if len(got) != len(want) {
		t.Fatalf("blast cells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("blast cells = %v, want %v", got, want)
		}
	}
}

func TestDetonateTerrain(t *testing.T) {
	tests := []struct {
		name      string
		origin    Coord
		bricks    []Coord
		wantCount int
		wantScore int
	}{
		{"corner", C(1, 1), nil, 5, 0},
		{"pillar row", C(5, 4), nil, 5, 0},
		{"brick absorbs ray", C(5, 5), []Coord{C(6, 5)}, 8, 10},
		{"two bricks", C(5, 5), []Coord{C(6, 5), C(5, 3)}, 8, 20},
		{"far brick", C(5, 5), []Coord{C(7, 5)}, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			for _, b := range tt.bricks {
				s.grid.Set(b, TileDestructible)
			}

			burned := s.Detonate(tt.origin, 0)
			if len(burned) != tt.wantCount {
				t.Errorf("burned %d cells %v, want %d", len(burned), burned, tt.wantCount)
			}
			if s.score != tt.wantScore {
				t.Errorf("score = %d, want %d", s.score, tt.wantScore)
			}
			for _, b := range tt.bricks {
				if s.grid.Get(b) != TileEmpty {
					t.Errorf("brick at %v survived", b)
				}
			}
		})
	}
}

func TestDetonateBounds(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := newTestSession(t, func(p *Params) { p.DeviceRange = 1 + int(seed%4) })
		s.grid = Generate(s.params.Width, s.params.Height, 0.5, nil, rng)
		before := s.grid.Clone()

		var origin Coord
		for {
			origin = C(1+rng.Intn(s.params.Width-2), 1+rng.Intn(s.params.Height-2))
			if before.Get(origin) == TileEmpty {
				break
			}
		}

		burned := s.Detonate(origin, 0)
		r := s.params.DeviceRange

		if len(burned) > 4*r+1 {
			t.Fatalf("seed %d: %d cells burned with range %d", seed, len(burned), r)
		}
		if len(burned) == 0 || burned[0] != origin {
			t.Fatalf("seed %d: origin %v not burned", seed, origin)
		}

		destroyed := 0
		for _, c := range burned {
			switch before.Get(c) {
			case TileIndestructible:
				t.Fatalf("seed %d: blast on indestructible %v", seed, c)
			case TileDestructible:
				destroyed++
			}
		}
		if destroyed > 4 {
			t.Fatalf("seed %d: %d bricks destroyed, at most one per ray", seed, destroyed)
		}
	}
}

func TestDeviceReoccupyClears(t *testing.T) {
	s := newTestSession(t, nil)
	startPlaying(t, s)

	s.Tick(Input{Place: true}, 16)
	if len(s.devices) != 1 || !s.devices[0].Reoccupy {
		t.Fatalf("devices = %+v, want one reoccupiable device", s.devices)
	}

	s.Tick(Input{Right: true}, 33)
	if s.player.Pos != C(2, 1) {
		t.Fatalf("player at %v, want (2,1)", s.player.Pos)
	}
	if s.devices[0].Reoccupy {
		t.Error("reoccupy should clear once the player leaves")
	}
	if s.CanEnter(C(2, 1), C(1, 1)) {
		t.Error("player walked back onto an armed device")
	}
}

func TestDeviceCap(t *testing.T) {
	s := newTestSession(t, nil)
	startPlaying(t, s)

	s.Tick(Input{Place: true}, 100)
	if len(s.devices) != 1 {
		t.Fatalf("devices = %d, want 1", len(s.devices))
	}
	placed := s.devices[0]

	// Holding the key does not place again
	s.Tick(Input{Place: true}, 116)
	// Releasing re-arms the latch
	s.Tick(Input{}, 133)
	if !s.player.CanPlace {
		t.Fatal("latch not re-armed on release")
	}

	if s.PlaceDevice(1000) {
		t.Fatal("second device placed while at cap")
	}
	if len(s.devices) != 1 || s.devices[0] != placed {
		t.Errorf("existing device changed: %+v, want %+v", s.devices, placed)
	}
	if !s.player.CanPlace {
		t.Error("rejected placement cleared the latch")
	}
}

func TestNoImmunityOnOwnDevice(t *testing.T) {
	s := newTestSession(t, nil)
	startPlaying(t, s)

	s.Tick(Input{Place: true}, 0)
	res := s.Tick(Input{}, 3000)

	if countEvents(res.Events, EventDetonation) != 1 {
		t.Fatal("device did not detonate")
	}
	if countEvents(res.Events, EventPlayerDied) != 1 {
		t.Fatal("player standing on the origin survived")
	}
	if s.Lives() != s.params.StartingLives-1 {
		t.Errorf("lives = %d, want %d", s.Lives(), s.params.StartingLives-1)
	}
	if len(s.devices) != 0 || len(s.blasts) != 0 {
		t.Error("devices and blasts should be cleared on death")
	}
}

func TestBlastDecay(t *testing.T) {
	s := newTestSession(t, nil)
	s.blasts = []Blast{{Pos: C(1, 1), CreatedAt: 1000}, {Pos: C(3, 1), CreatedAt: 1200}}

	s.decayBlasts(1499)
	if len(s.blasts) != 2 {
		t.Fatalf("blasts = %d, want 2", len(s.blasts))
	}

	s.decayBlasts(1500)
	if len(s.blasts) != 1 || s.blasts[0].Pos != C(3, 1) {
		t.Errorf("blasts = %+v, want only (3,1)", s.blasts)
	}
}
