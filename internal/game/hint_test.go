package game

import (
	"math/rand"
	"testing"
	"time"
)

type hintRig struct {
	clock  *Clock
	tweens *Tweener
	log    *SessionLog
	chips  []*Chip
	hints  *HintScheduler
}

func newHintRig(frames ...string) *hintRig {
	r := &hintRig{
		clock:  NewClock(),
		tweens: NewTweener(),
		log:    NewSessionLog(0),
		chips:  testChips(frames...),
	}
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test
	r.hints = NewHintScheduler(r.clock, r.tweens, rng, time.Second, r.chips, r.log)
	return r
}

// advance moves clock and tweens together the way Session.Update does.
func (r *hintRig) advance(d time.Duration) {
	for d > 0 {
		step := simFrame
		if d < step {
			step = d
		}
		r.clock.Advance(step)
		r.tweens.Update(step)
		d -= step
	}
}

func TestHint_FiresAfterDelay(t *testing.T) {
	r := newHintRig("ruby", "ruby", "emerald")
	r.hints.Arm()
	r.advance(990 * time.Millisecond)
	if r.hints.Shown() != 0 {
		t.Fatal("hint fired before the delay")
	}
	r.advance(20 * time.Millisecond)
	if r.hints.Shown() != 1 {
		t.Fatalf("expected one hint, got %d", r.hints.Shown())
	}

	e, ok := r.log.LastOf("hint", "shown")
	if !ok {
		t.Fatal("expected a hint/shown log entry")
	}
	want := 0
	for _, c := range r.chips {
		if c.Frame == e.Value {
			want++
		}
	}
	if len(r.hints.Pulses()) != want {
		t.Fatalf("expected %d pulses for %s, got %d", want, e.Value, len(r.hints.Pulses()))
	}
}

func TestHint_PulsesOnlyAliveChips(t *testing.T) {
	r := newHintRig("ruby", "ruby", "emerald")
	r.chips[1].Alive = false
	r.chips[2].Alive = false
	r.hints.Arm()
	r.advance(time.Second + simFrame)

	if len(r.hints.Pulses()) != 1 {
		t.Fatalf("expected a single pulse, got %d", len(r.hints.Pulses()))
	}
	r.advance(100 * time.Millisecond)
	if r.chips[0].Hover.Alpha <= 0 {
		t.Fatal("alive chip not highlighted")
	}
	if r.chips[1].Hover.Alpha != 0 {
		t.Fatal("dead chip of the hinted type was highlighted")
	}
}

func TestHint_RearmsAfterPulsesComplete(t *testing.T) {
	r := newHintRig("ruby", "ruby")
	r.hints.Arm()
	r.advance(time.Second + simFrame)
	if r.hints.Pending() {
		t.Fatal("timer should be consumed while pulsing")
	}
	total := r.hints.Pulses()[0].Total()
	r.advance(total + simFrame)

	if len(r.hints.Pulses()) != 0 {
		t.Fatalf("expected pulse list cleared, got %d", len(r.hints.Pulses()))
	}
	if !r.hints.Pending() {
		t.Fatal("expected the hint to re-arm after its pulses")
	}
	for _, c := range r.chips {
		if c.Hover.Alpha != 0 {
			t.Fatalf("chip %d left highlighted at %.2f", c.ID, c.Hover.Alpha)
		}
	}
}

func TestHint_StopCancelsPulsesWithoutRearm(t *testing.T) {
	r := newHintRig("ruby", "ruby")
	r.hints.Arm()
	r.advance(time.Second + 100*time.Millisecond)

	r.hints.Stop()
	for _, c := range r.chips {
		if c.Hover.Alpha != 0 {
			t.Fatal("Stop must hide every highlight")
		}
	}
	r.advance(5 * time.Second)
	if r.hints.Pending() || r.hints.Shown() != 1 {
		t.Fatalf("stopped hint came back: pending=%v shown=%d", r.hints.Pending(), r.hints.Shown())
	}
}

func TestHint_DoubleStopIsNoop(t *testing.T) {
	r := newHintRig("ruby")
	r.hints.Arm()
	r.hints.Stop()
	r.hints.Stop()
	if n := r.log.Count("hint", "stopped"); n != 1 {
		t.Fatalf("expected one stop entry, got %d", n)
	}
	if r.hints.Pending() {
		t.Fatal("timer still pending after Stop")
	}
}

func TestHint_ExhaustedWhenNoChipAlive(t *testing.T) {
	r := newHintRig("ruby", "emerald")
	for _, c := range r.chips {
		c.Alive = false
	}
	r.hints.Arm()
	r.advance(2 * time.Second)

	if !r.hints.Exhausted() {
		t.Fatal("expected the exhausted branch")
	}
	if r.hints.Pending() || r.hints.Shown() != 0 {
		t.Fatalf("exhausted scheduler must stay idle: pending=%v shown=%d", r.hints.Pending(), r.hints.Shown())
	}
	if !r.log.HasEntry("hint", "exhausted", "") {
		t.Fatal("expected a hint/exhausted log entry")
	}
}
