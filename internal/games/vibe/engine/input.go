package engine

// Input is the per-tick snapshot of held intents.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Place bool // Action key: place a device, or confirm on end screens
	// Confirm is a discrete restart/continue intent (Enter).
	Confirm bool
}

// AnyDirection reports whether a movement key is held.
func (in Input) AnyDirection() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Delta sums every held direction. Opposite keys cancel and two
// perpendicular keys produce a diagonal step. ok is false when no
// direction is held.
func (in Input) Delta() (delta Coord, ok bool) {
	if in.Up {
		delta.Y--
	}
	if in.Down {
		delta.Y++
	}
	if in.Left {
		delta.X--
	}
	if in.Right {
		delta.X++
	}
	return delta, in.AnyDirection()
}

// confirms reports whether the snapshot carries a restart/continue intent.
func (in Input) confirms() bool {
	return in.Confirm || in.Place
}
