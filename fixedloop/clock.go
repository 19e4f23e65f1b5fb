package fixedloop

import "time"

// Clock abstracts the time source driving a loop, so tests and headless
// runs can advance time manually.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock via time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a deterministic, manually advanceable clock for tests.
// The zero value starts at an arbitrary fixed instant.
type FakeClock struct {
	now time.Time
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Now implements Clock.
func (c *FakeClock) Now() time.Time {
	return c.now
}
