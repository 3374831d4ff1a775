package game

import "time"

// Clock is the session's game-time source. Timers only fire from Advance, so
// every callback runs on the caller's goroutine between input events.
type Clock struct {
	now    time.Duration
	timers []*Timer
	seq    int
}

// Timer is a cancellable handle for a deferred callback.
type Timer struct {
	at    time.Duration
	seq   int
	fn    func()
	clock *Clock
	done  bool // fired or stopped
}

// NewClock creates a clock at t=0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed game time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once d has elapsed.
func (c *Clock) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{at: c.now + d, seq: c.seq, fn: fn, clock: c}
	c.timers = append(c.timers, t)
	return t
}

// Stop cancels the timer. It reports whether the timer was still pending.
// Safe on a nil, fired or already stopped timer.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	return true
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && !t.done
}

// Remaining returns the time left before the timer fires, or 0.
func (t *Timer) Remaining() time.Duration {
	if !t.Pending() {
		return 0
	}
	return t.at - t.clock.now
}

// Advance moves game time forward by d, firing due timers in deadline order
// (ties in scheduling order). Timers scheduled by a callback fire in the same
// call if they fall due before the new time.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		next.done = true
		if next.at > c.now {
			c.now = next.at
		}
		next.fn()
	}
	c.now = target
	c.compact()
}

// Pending returns the number of timers waiting to fire.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (c *Clock) nextDue(limit time.Duration) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.done || t.at > limit {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *Clock) compact() {
	kept := c.timers[:0]
	for _, t := range c.timers {
		if !t.done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = kept
}
