package vibe

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/engine"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/replay"
)

// isolate keeps user and working directory configs out of the test.
func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	SetConfigPath("")
	SetDifficultyPreset("")
	SetRecording(false)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetRecording(false)
	})
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// script returns the input for tick i of a fixed play session.
func script(i int) core.InputFrame {
	in := core.NewInputFrame()
	switch {
	case i < 40:
		in.Set(core.ActionRight)
	case i < 41:
		in.Set(core.ActionPlace)
	case i < 80:
		in.Set(core.ActionDown)
	case i < 200:
		// Idle while the vibe goes off
	case i%50 < 25:
		in.Set(core.ActionUp)
	default:
		in.Set(core.ActionLeft)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	isolate(t)

	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 600; i++ {
		in := script(i)
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("snapshot hash mismatch: %016x vs %016x", s1.Hash(), s2.Hash())
	}
	if g1.State() != g2.State() {
		t.Errorf("state mismatch: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestSeedChangesArena(t *testing.T) {
	isolate(t)

	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)

	if g1.Snapshot().Grid.Equal(g2.Snapshot().Grid) {
		t.Error("different seeds produced the same arena")
	}
}

func TestEngineInput(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	in.Set(core.ActionPlace)
	in.Set(core.ActionPause)

	got := engineInput(in)
	want := engine.Input{Up: true, Left: true, Place: true}
	if got != want {
		t.Errorf("engineInput() = %+v, want %+v", got, want)
	}
}

func TestStartAndPause(t *testing.T) {
	isolate(t)
	g := newTestGame(t, 7)

	if g.Snapshot().Phase != engine.PhaseStart {
		t.Fatalf("phase = %v, want start", g.Snapshot().Phase)
	}

	// Pause is ignored on the start screen
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.State().Paused {
		t.Fatal("paused on the start screen")
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.Snapshot().Phase != engine.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Snapshot().Phase)
	}

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	frame := g.Snapshot().Frame
	for i := 0; i < 30; i++ {
		g.Step(right)
	}
	if g.Snapshot().Frame != frame {
		t.Errorf("frame advanced while paused: %d -> %d", frame, g.Snapshot().Frame)
	}

	g.Step(pause)
	g.Step(right)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
	if g.Snapshot().Frame != frame+1 {
		t.Errorf("frame = %d, want %d", g.Snapshot().Frame, frame+1)
	}
}

func TestPresetApplied(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("easy")

	g := newTestGame(t, 3)
	if got := g.State().Lives; got != 5 {
		t.Errorf("lives = %d, want 5", got)
	}
}

func TestBadConfigFallsBack(t *testing.T) {
	isolate(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := newTestGame(t, 3)
	want := config.DefaultVibeConfig().Session.Lives
	if got := g.State().Lives; got != want {
		t.Errorf("lives = %d, want %d", got, want)
	}
}

func TestRender(t *testing.T) {
	isolate(t)
	g := newTestGame(t, 9)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	text := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1", "press any arrow key to start", glyphWall} {
		if !strings.Contains(text, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	isolate(t)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	// Steps are ignored until the window is large enough
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	if g.Snapshot().Phase != engine.PhaseStart {
		t.Errorf("phase = %v, want start", g.Snapshot().Phase)
	}

	g.Resize(80, 24)
	g.Step(right)
	if g.Snapshot().Phase != engine.PhasePlaying {
		t.Errorf("phase = %v, want playing after resize", g.Snapshot().Phase)
	}
}

func TestRenderDeathMarker(t *testing.T) {
	snap := engine.Snapshot{
		Phase:  engine.PhasePlaying,
		Grid:   engine.NewGrid(13, 11),
		Player: engine.Player{Mover: engine.Mover{Pos: engine.C(1, 1)}},
		Blasts: []engine.Coord{engine.C(1, 1)},
	}
	origin := core.NewRect(2, 2, 26, 11)

	alive := core.NewScreen(40, 15)
	renderArena(alive, origin, snap)
	renderDeathLabel(alive, origin, snap)
	if strings.Contains(alive.String(), deathLabel) || strings.Contains(alive.String(), glyphHit) {
		t.Error("death marker drawn while playing")
	}

	snap.Paused = true
	dead := core.NewScreen(40, 15)
	renderArena(dead, origin, snap)
	renderDeathLabel(dead, origin, snap)
	if row := dead.Row(3); !strings.Contains(row, glyphHit) {
		t.Errorf("row 3 = %q, want the hit marker over the blast", row)
	}
	if row := dead.Row(2); !strings.Contains(row, deathLabel) {
		t.Errorf("row 2 = %q, want %q above the player", row, deathLabel)
	}

	// The label stays on a screen narrower than the arena
	snap.Player.Pos = engine.C(4, 1)
	narrow := core.NewScreen(10, 4)
	renderDeathLabel(narrow, core.NewRect(0, 0, 26, 11), snap)
	if row := narrow.Row(0); !strings.HasSuffix(row, deathLabel) {
		t.Errorf("row 0 = %q, want the label clamped to the right edge", row)
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{3000, "3"},
		{2001, "3"},
		{2000, "2"},
		{1, "1"},
		{0, "0"},
		{20000, "9"},
	}
	for _, tt := range tests {
		if got := countdown(tt.ms); got != tt.want {
			t.Errorf("countdown(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestRecordingVerifies(t *testing.T) {
	isolate(t)
	SetRecording(true)

	g := newTestGame(t, 4242)
	for i := 0; i < 500; i++ {
		g.Step(script(i))
	}

	rec := g.Recording()
	if rec == nil {
		t.Fatal("Recording() = nil with recording on")
	}
	if rec.Ticks() != 500 {
		t.Errorf("recorded ticks = %d, want 500", rec.Ticks())
	}

	path := filepath.Join(t.TempDir(), "run.vibe")
	if err := replay.Save(path, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := replay.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s, err := NewSession(loaded.Header.Config, loaded.Header.Seed)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if _, err := replay.Verify(loaded, s); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestRecordingOff(t *testing.T) {
	isolate(t)

	g := newTestGame(t, 1)
	if g.Recording() != nil {
		t.Error("Recording() should be nil when recording is off")
	}
}
