package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// holdWindow is how long a direction stays held after a key press.
// Terminals report presses but not releases, so auto-repeat keeps a held
// key alive and the window bridges the gap before repeat starts.
const holdWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionPlace, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// HeldInput turns discrete key presses into held actions.
// A direction is held for a window of ticks after each press and a new
// direction releases the others. Every other action lasts one tick.
type HeldInput struct {
	hold      int
	remaining map[core.Action]int
}

// NewHeldInput creates a tracker for the given tick rate.
func NewHeldInput(tickRate int) *HeldInput {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	hold := int(holdWindow * time.Duration(tickRate) / time.Second)
	return &HeldInput{
		hold:      core.Max(1, hold),
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !a.IsDirection() {
		h.remaining[a] = 1
		return
	}
	for held := range h.remaining {
		if held.IsDirection() && held != a {
			delete(h.remaining, held)
		}
	}
	h.remaining[a] = h.hold
}

// Frame returns the actions held this tick and ages every hold by one tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held action.
func (h *HeldInput) Release() {
	clear(h.remaining)
}
