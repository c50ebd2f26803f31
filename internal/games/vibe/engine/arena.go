package engine

// PlayerStart is where the player spawns on every reset and respawn.
var PlayerStart = C(1, 1)

// startCluster returns the cells kept clear around the player start.
func startCluster() []Coord {
	return []Coord{
		PlayerStart,
		PlayerStart.Add(C(1, 0)),
		PlayerStart.Add(C(0, 1)),
	}
}

// inStartZone reports whether c is inside the square spanned by the
// start cluster. No destructible block is ever placed there.
func inStartZone(c Coord) bool {
	return c.X <= PlayerStart.X+1 && c.Y <= PlayerStart.Y+1
}

// Generate builds an arena template.
//
// Borders and interior even-even cells become indestructible pillars, the
// start cluster is forced empty, and floor(candidates*fill) of the remaining
// empty interior cells, excluding the start zone and every excluded cell, are
// drawn without replacement and made destructible.
func Generate(width, height int, fill float64, excluded []Coord, rng Random) *Grid {
	g := NewGrid(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := C(x, y)
			if g.IsBorder(c) || IsPillar(c) {
				g.Set(c, TileIndestructible)
			}
		}
	}

	for _, c := range startCluster() {
		g.Set(c, TileEmpty)
	}

	skip := make(map[Coord]bool, len(excluded))
	for _, c := range excluded {
		skip[c] = true
	}

	candidates := make([]Coord, 0, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			c := C(x, y)
			if inStartZone(c) || skip[c] {
				continue
			}
			if g.Get(c) == TileEmpty {
				candidates = append(candidates, c)
			}
		}
	}

	count := DestructibleCount(len(candidates), fill)
	for range count {
		i := rng.Intn(len(candidates))
		g.Set(candidates[i], TileDestructible)
		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	return g
}

// DestructibleCount is the number of blocks placed for a candidate pool.
func DestructibleCount(candidates int, fill float64) int {
	if fill <= 0 {
		return 0
	}
	if fill >= 1 {
		return candidates
	}
	return int(float64(candidates) * fill)
}
