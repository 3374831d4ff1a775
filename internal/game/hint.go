package game

import (
	"math/rand"
	"time"
)

const (
	// DefaultHintDelay is the idle time before a hint pulse.
	DefaultHintDelay = 3 * time.Second
	hintPulseLeg     = 250 * time.Millisecond
	hintPulseRepeats = 2
)

// HintScheduler highlights a reachable chip type after the player has been
// idle for a while. Any player action cancels it through Stop.
type HintScheduler struct {
	clock  *Clock
	tweens *Tweener
	rng    *rand.Rand
	delay  time.Duration
	chips  []*Chip
	log    *SessionLog

	timer     *Timer
	pulses    []*Tween
	remaining int
	shown     int
	exhausted bool
}

// NewHintScheduler creates an idle scheduler for chips.
func NewHintScheduler(clock *Clock, tweens *Tweener, rng *rand.Rand, delay time.Duration, chips []*Chip, log *SessionLog) *HintScheduler {
	if delay <= 0 {
		delay = DefaultHintDelay
	}
	return &HintScheduler{clock: clock, tweens: tweens, rng: rng, delay: delay, chips: chips, log: log}
}

// Arm schedules the next hint. An already pending timer is replaced.
func (h *HintScheduler) Arm() {
	h.timer.Stop()
	h.timer = h.clock.After(h.delay, h.fire)
	h.log.Add(h.clock.Now(), "hint", "armed", h.delay.String(), h.delay.Seconds())
}

// Stop cancels the pending timer, every running pulse and every chip's
// highlight fade, hides all highlights and clears the pulse list. Safe to
// call when idle.
func (h *HintScheduler) Stop() {
	wasActive := h.timer.Stop() || len(h.pulses) > 0
	for _, p := range h.pulses {
		p.Stop()
	}
	for _, c := range h.chips {
		c.highlight.Stop()
		c.highlight = nil
		c.Hover.Alpha = 0
	}
	h.pulses = h.pulses[:0]
	h.remaining = 0
	if wasActive {
		h.log.Add(h.clock.Now(), "hint", "stopped", "", 0)
	}
}

// Pending reports whether a hint timer is armed.
func (h *HintScheduler) Pending() bool {
	return h.timer.Pending()
}

// Pulses returns the in-flight highlight animations.
func (h *HintScheduler) Pulses() []*Tween {
	return h.pulses
}

// Shown returns how many hints have been played.
func (h *HintScheduler) Shown() int {
	return h.shown
}

// Exhausted reports whether the scheduler stopped because no chip was left.
func (h *HintScheduler) Exhausted() bool {
	return h.exhausted
}

func (h *HintScheduler) fire() {
	var alive []*Chip
	for _, c := range h.chips {
		if c.Alive {
			alive = append(alive, c)
		}
	}
	if len(alive) == 0 {
		h.hintExhausted()
		return
	}

	frame := alive[h.rng.Intn(len(alive))].Frame
	h.shown++
	h.log.Add(h.clock.Now(), "hint", "shown", frame, float64(h.shown))
	for _, c := range alive {
		if c.Frame != frame {
			continue
		}
		pulse := h.tweens.Alpha(c.Hover, 1, hintPulseLeg).
			Yoyo(true).
			Repeat(hintPulseRepeats).
			OnComplete(h.pulseDone)
		h.pulses = append(h.pulses, pulse)
		h.remaining++
	}
}

// hintExhausted is the terminal branch: nothing left to hint, never re-arm.
func (h *HintScheduler) hintExhausted() {
	h.exhausted = true
	h.Stop()
	h.log.Add(h.clock.Now(), "hint", "exhausted", "", 0)
}

func (h *HintScheduler) pulseDone() {
	h.remaining--
	if h.remaining > 0 {
		return
	}
	h.pulses = h.pulses[:0]
	h.Arm()
}
