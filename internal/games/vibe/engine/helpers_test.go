package engine

import (
	"math/rand"
	"testing"
)

// fixedRandom always returns the same draws.
type fixedRandom struct {
	n int
	f float64
}

func (r fixedRandom) Intn(n int) int   { return r.n % n }
func (r fixedRandom) Float64() float64 { return r.f }

// newTestSession creates a session on an open arena with the given edits.
func newTestSession(t *testing.T, edit func(*Params)) *Session {
	t.Helper()

	p := DefaultParams()
	p.Fill = 0
	if edit != nil {
		edit(&p)
	}

	s, err := NewSession(p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// startPlaying leaves the start screen without simulating a frame.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()

	s.Tick(Input{Right: true}, 0)
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.Phase())
	}
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
