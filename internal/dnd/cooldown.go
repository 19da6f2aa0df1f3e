package dnd

import "time"

// DefaultCooldown is the hit-test window used when none is configured. It is
// also the duration of the glide displaced items animate with.
const DefaultCooldown = 300 * time.Millisecond

// CooldownGate permits at most one sample per window. It never blocks:
// callers ask, and skip the work when the gate is closed.
type CooldownGate struct {
	window    time.Duration
	sched     Scheduler
	canSample bool
	epoch     uint64
}

// NewCooldownGate returns an open gate. A non-positive window means
// [DefaultCooldown].
func NewCooldownGate(window time.Duration, sched Scheduler) *CooldownGate {
	if window <= 0 {
		window = DefaultCooldown
	}
	return &CooldownGate{window: window, sched: sched, canSample: true}
}

// CanSample reports whether a sample is currently permitted.
func (g *CooldownGate) CanSample() bool { return g.canSample }

// Window returns the cooldown duration.
func (g *CooldownGate) Window() time.Duration { return g.window }

// Sample takes the permit and schedules its return after the window. It
// reports false, and changes nothing, when the gate is already closed.
func (g *CooldownGate) Sample() bool {
	if !g.canSample {
		return false
	}
	g.canSample = false
	epoch := g.epoch
	g.sched.After(g.window, func() {
		if g.epoch == epoch {
			g.canSample = true
		}
	})
	return true
}

// Reset reopens the gate. A release scheduled before Reset no longer
// applies.
func (g *CooldownGate) Reset() {
	g.epoch++
	g.canSample = true
}
