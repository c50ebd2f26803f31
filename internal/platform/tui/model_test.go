package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// scriptedGame ends the run after a set number of steps and records input.
type scriptedGame struct {
	steps   int
	overAt  int
	resets  int
	resized int
	inputs  []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }

func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptedGame) Resize(int, int) { g.resized++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	over := g.overAt > 0 && g.steps >= g.overAt
	return core.GameState{Score: 250, Level: 2, GameOver: over}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()

	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{overAt: 3}

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}).
		WithLogger(log.New(io.Discard))
	m.Init()

	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 250 || scores[0].Level != 2 {
		t.Errorf("saved %+v, want score 250 level 2", scores[0])
	}
}

func TestModelHeldKeys(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = next.(Model)

	m = tick(t, m)
	m = tick(t, m)

	if !game.inputs[0].Has(core.ActionRight) || !game.inputs[0].Has(core.ActionPlace) {
		t.Errorf("first tick input = %v, want right and place", game.inputs[0].Actions)
	}
	if !game.inputs[1].Has(core.ActionRight) {
		t.Error("right should still be held on the second tick")
	}
	if game.inputs[1].Has(core.ActionPlace) {
		t.Error("place should last one tick")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resized != 1 {
		t.Errorf("resized = %d, want 1", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1 (Init only)", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, core.DefaultConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}
