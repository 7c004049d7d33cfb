package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// SpreadClock gates an expensive simulation phase behind a delay expressed in
// 60 Hz frame units, so the gated rate stays the same regardless of how often
// the caller updates.
type SpreadClock struct {
	delay float64
	acc   float64
}

// NewSpreadClock constructs a clock that fires once per delay frame units.
func NewSpreadClock(delay float64) *SpreadClock {
	if delay <= 0 {
		delay = 1
	}
	return &SpreadClock{delay: delay}
}

// SetDelay changes the gate threshold. The accumulator is kept, so a lowered
// delay can fire on the next advance.
func (c *SpreadClock) SetDelay(delay float64) {
	if delay <= 0 {
		delay = 1
	}
	c.delay = delay
}

// Advance accumulates a wall-clock delta (seconds) and reports whether the
// gated phase should run now. The accumulator resets to zero when it fires.
func (c *SpreadClock) Advance(dt float64) bool {
	c.acc += dt * 60
	if c.acc >= c.delay {
		c.acc = 0
		return true
	}
	return false
}
