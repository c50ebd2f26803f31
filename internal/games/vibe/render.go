package vibe

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/vibe/engine"
)

// Each arena cell is drawn two columns wide so it looks square in a terminal.
const cellW = 2

// hudRows is the number of screen rows above the arena.
const hudRows = 2

// Cell glyphs
const (
	glyphWall   = "██"
	glyphBrick  = "▓▓"
	glyphPlayer = "☺ "
	glyphEnemy  = "▲▲"
	glyphBlast  = "░░"
	glyphHit    = "✖✖"
	glyphDevice = '◆'
)

// deathLabel floats above the player while the death pause runs.
const deathLabel = "ouch!"

// layout holds the minimum screen size for an arena.
type layout struct {
	minW int
	minH int
}

func computeLayout(w, h int) layout {
	return layout{minW: w * cellW, minH: h + hudRows}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.layout.minW, g.layout.minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	origin := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows).
		CenterIn(snap.Grid.W*cellW, snap.Grid.H)

	g.renderHUD(dst)
	renderArena(dst, origin, snap)
	renderDeathLabel(dst, origin, snap)
	g.renderOverlay(dst, origin)
}

// renderHUD draws score, lives, enemies and level.
func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", g.hud.Score)
	dst.DrawTextWithColor(1, 0, score, core.ColorBrightYellow)

	lives := fmt.Sprintf("Lives: %d  Enemies: %d", g.hud.Lives, g.hud.Enemies)
	dst.DrawTextCentered(0, lives, core.ColorDefault)

	level := fmt.Sprintf("Level: %d", g.hud.Level)
	dst.DrawTextWithColor(dst.Width()-len(level)-1, 0, level, core.ColorBrightCyan)

	if g.paused {
		dst.DrawTextCentered(1, "PAUSED", core.ColorBrightWhite)
		return
	}
	for x := range dst.Width() {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}
}

func renderArena(dst *core.Screen, origin core.Rect, snap engine.Snapshot) {
	for y := 0; y < snap.Grid.H; y++ {
		for x := 0; x < snap.Grid.W; x++ {
			c := engine.C(x, y)
			glyph, color := cellGlyph(snap, c)
			dst.DrawTextWithColor(origin.X+x*cellW, origin.Y+y, glyph, color)
		}
	}
}

// cellGlyph picks what to draw for one cell. A dead player's marker
// covers everything, then blasts, the player, enemies, devices and
// finally terrain.
func cellGlyph(snap engine.Snapshot, c engine.Coord) (string, core.Color) {
	if snap.Paused && snap.Player.Pos == c {
		return glyphHit, core.ColorBrightRed
	}
	if snap.BlastAt(c) {
		return glyphBlast, core.ColorBrightRed
	}
	if !snap.Paused && snap.Player.Pos == c {
		return glyphPlayer, core.ColorBrightGreen
	}
	if snap.EnemyAt(c) {
		return glyphEnemy, core.ColorBrightMagenta
	}
	if d, ok := snap.DeviceAt(c); ok {
		return string(glyphDevice) + countdown(d.Remaining), core.ColorYellow
	}

	switch snap.Grid.Get(c) {
	case engine.TileIndestructible:
		return glyphWall, core.ColorGray
	case engine.TileDestructible:
		return glyphBrick, core.ColorOrange
	default:
		return "  ", core.ColorDefault
	}
}

// renderDeathLabel writes deathLabel on the row above a dead player,
// kept on screen near the edges.
func renderDeathLabel(dst *core.Screen, origin core.Rect, snap engine.Snapshot) {
	if !snap.Paused {
		return
	}

	px := origin.X + snap.Player.Pos.X*cellW
	py := origin.Y + snap.Player.Pos.Y
	x := core.Clamp(px+cellW/2-len(deathLabel)/2, 0, dst.Width()-len(deathLabel))
	y := py - 1
	if !dst.Bounds().Contains(x, y) {
		y = py + 1
	}
	if !dst.Bounds().Contains(x, y) {
		return
	}
	dst.DrawTextWithColor(x, y, deathLabel, core.ColorBrightYellow)
}

// countdown returns the whole seconds left, rounded up, as one digit.
func countdown(ms int64) string {
	secs := core.Clamp(int((ms+999)/1000), 0, 9)
	return fmt.Sprintf("%d", secs)
}

// renderOverlay boxes the phase message over the arena.
func (g *Game) renderOverlay(dst *core.Screen, arena core.Rect) {
	if g.hud.Message == "" {
		return
	}

	lines := strings.Split(g.hud.Message, "\n")
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	box := arena.CenterIn(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	inner := box.Inset(1)
	for i, l := range lines {
		x := inner.X + (inner.W-len([]rune(l)))/2
		dst.DrawTextWithColor(x, inner.Y+i, l, core.ColorBrightWhite)
	}
}
