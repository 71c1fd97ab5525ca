// Package clock drives a dynamical system one step per external tick.
//
// The loop is cooperative: the owner (CLI loop, TUI frame timer) calls
// Tick once per refresh and reads a snapshot afterwards. A paused clock
// still accepts ticks; they just do nothing. Exactly one tick is in
// flight at a time, so no locking is involved anywhere.
package clock

import (
	"fmt"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/trace"
)

// Clock owns a system's live state and its trajectory history.
type Clock struct {
	sys     dynamo.System
	stepper dynamo.Stepper
	buf     *trace.Buffer
	state   dynamo.State
	t       float64
	dt      float64
	speed   float64
	paused  bool
}

// Snapshot is the published view of a clock, safe to hand to renderers.
type Snapshot struct {
	State   dynamo.State
	Trail   []dynamo.State
	T       float64
	Running bool
}

func New(sys dynamo.System, stepper dynamo.Stepper, buf *trace.Buffer, dt float64) (*Clock, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %v", dynamo.ErrStepSize, dt)
	}
	return &Clock{
		sys:     sys,
		stepper: stepper,
		buf:     buf,
		state:   sys.DefaultState(),
		dt:      dt,
		speed:   1.0,
	}, nil
}

// Tick advances the system by one step and appends the result to the
// trail. While paused it is a no-op. Parameter edits made on the system
// since the last tick are picked up here; there is no smoothing, so an
// edit may kink the trajectory. That is intended.
func (c *Clock) Tick() {
	if c.paused {
		return
	}

	h := c.dt * c.speed
	next := c.stepper.Step(c.sys, c.state, c.t, h)
	if con, ok := c.sys.(dynamo.Constrained); ok {
		next = con.Constrain(next)
	}

	c.state = next
	c.t += h
	c.buf.Append(next)
}

func (c *Clock) Pause()  { c.paused = true }
func (c *Clock) Resume() { c.paused = false }
func (c *Clock) Toggle() { c.paused = !c.paused }

func (c *Clock) Running() bool { return !c.paused }

// Reset restores the system's default state, rewinds model time, and
// clears the trail. The running/paused flag is left as-is.
func (c *Clock) Reset() {
	c.state = c.sys.DefaultState()
	c.t = 0
	c.buf.Reset()
}

func (c *Clock) Snapshot() Snapshot {
	return Snapshot{
		State:   c.state.Clone(),
		Trail:   c.buf.Snapshot(),
		T:       c.t,
		Running: !c.paused,
	}
}

// State returns a copy of the current state.
func (c *Clock) State() dynamo.State { return c.state.Clone() }

func (c *Clock) T() float64 { return c.t }

func (c *Clock) System() dynamo.System { return c.sys }

func (c *Clock) Trail() *trace.Buffer { return c.buf }

func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed scales the effective step (h = dt * speed) from the next tick
// on. Non-positive multipliers are ignored.
func (c *Clock) SetSpeed(s float64) {
	if s > 0 {
		c.speed = s
	}
}

// SetStep replaces the base step from the next tick on.
func (c *Clock) SetStep(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w: got %v", dynamo.ErrStepSize, dt)
	}
	c.dt = dt
	return nil
}
