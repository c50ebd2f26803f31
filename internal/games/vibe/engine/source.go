package engine

// Random is the source of every random draw the engine makes.
// *math/rand.Rand satisfies it; tests substitute a seeded one.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// Clock is a monotonic millisecond time source.
type Clock interface {
	NowMillis() int64
}

// TickClock derives time from a tick counter at a fixed rate,
// so identical input sequences replay identically.
type TickClock struct {
	Rate  int // Ticks per second
	ticks int64
}

// NewTickClock creates a clock advancing 1000/rate milliseconds per tick.
func NewTickClock(rate int) *TickClock {
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{Rate: rate}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks elapsed.
func (c *TickClock) Ticks() int64 {
	return c.ticks
}

// NowMillis returns the elapsed time in milliseconds.
func (c *TickClock) NowMillis() int64 {
	return c.ticks * 1000 / int64(c.Rate)
}

// ManualClock is a clock moved explicitly by its owner.
type ManualClock struct {
	Now int64
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.Now
}

// Add advances the clock by ms milliseconds.
func (c *ManualClock) Add(ms int64) {
	c.Now += ms
}
