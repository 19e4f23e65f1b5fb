// Package fixedloop runs an application at a fixed simulation rate while
// rendering as fast as the real clock allows.
//
// The loop follows the classic accumulator pattern: real elapsed time is
// accumulated and consumed in fixed-size update steps, and each tick ends
// with one render that receives the interpolation factor between the last
// two simulation states. Updates are therefore deterministic for a given
// clock, independent of render timing.
package fixedloop

import (
	"time"

	"github.com/gogpu/rast"
)

// App is the unit driven by a Loop.
type App interface {
	// Update advances the simulation by the fixed timestep.
	Update(dt time.Duration)

	// Render draws the current state. alpha in [0,1) is the fraction of a
	// fixed step accumulated but not yet simulated, for interpolation.
	Render(alpha float32)
}

// TickResult reports what a single Tick did.
type TickResult struct {
	// Updates is the number of fixed steps run this tick.
	Updates int

	// Alpha is the interpolation factor passed to Render.
	Alpha float32
}

// Loop drives an App from a Clock using a fixed timestep.
type Loop struct {
	clock Clock
	cfg   Config

	last  time.Time
	acc   time.Duration
	frame uint64
}

// New creates a loop reading time from clock.
func New(clock Clock, cfg Config) *Loop {
	return &Loop{
		clock: clock,
		cfg:   cfg,
		last:  clock.Now(),
	}
}

// Frame returns the number of ticks (or headless steps) run so far.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Tick advances the loop by the real time elapsed since the previous tick,
// running zero or more fixed updates and exactly one render.
func (l *Loop) Tick(app App) TickResult {
	now := l.clock.Now()
	frameDt := now.Sub(l.last)
	l.last = now
	if frameDt < 0 {
		frameDt = 0
	}
	if frameDt > l.cfg.MaxFrameDt {
		rast.Logger().Debug("fixedloop: frame dt clamped",
			"dt", frameDt, "max", l.cfg.MaxFrameDt)
		frameDt = l.cfg.MaxFrameDt
	}
	l.acc += frameDt

	updates := 0
	for l.acc >= l.cfg.FixedDt && updates < l.cfg.MaxUpdatesPerTick {
		app.Update(l.cfg.FixedDt)
		l.acc -= l.cfg.FixedDt
		updates++
	}
	if updates >= l.cfg.MaxUpdatesPerTick {
		// Drop the backlog rather than spiral further behind.
		l.acc = 0
	}

	var alpha float32
	if l.cfg.FixedDt > 0 {
		alpha = float32(l.acc.Seconds() / l.cfg.FixedDt.Seconds())
		if alpha > 0.999999 {
			alpha = 0.999999
		}
	}

	app.Render(alpha)
	l.frame++

	return TickResult{Updates: updates, Alpha: alpha}
}

// Step runs exactly n fixed updates without rendering, for headless
// simulation stepping.
func (l *Loop) Step(app App, n int) {
	for i := 0; i < n; i++ {
		app.Update(l.cfg.FixedDt)
		l.frame++
	}
}
