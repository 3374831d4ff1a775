package game

import (
	"strings"
	"testing"
	"time"
)

func TestClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewClock()
	var got []string
	c.After(2*time.Second, func() { got = append(got, "late") })
	c.After(time.Second, func() { got = append(got, "first") })
	c.After(time.Second, func() { got = append(got, "second") })

	c.Advance(3 * time.Second)

	if strings.Join(got, ",") != "first,second,late" {
		t.Fatalf("expected first,second,late; got %v", got)
	}
	if c.Now() != 3*time.Second {
		t.Fatalf("expected now=3s, got %s", c.Now())
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", c.Pending())
	}
}

func TestClock_NotDueDoesNotFire(t *testing.T) {
	c := NewClock()
	fired := false
	tm := c.After(time.Second, func() { fired = true })
	c.Advance(999 * time.Millisecond)
	if fired {
		t.Fatal("timer fired before its deadline")
	}
	if got := tm.Remaining(); got != time.Millisecond {
		t.Fatalf("expected 1ms remaining, got %s", got)
	}
	c.Advance(time.Millisecond)
	if !fired {
		t.Fatal("timer did not fire at its deadline")
	}
	if tm.Pending() {
		t.Fatal("fired timer still pending")
	}
}

func TestTimer_StopPreventsCallback(t *testing.T) {
	c := NewClock()
	fired := false
	tm := c.After(time.Second, func() { fired = true })
	if !tm.Stop() {
		t.Fatal("expected first Stop to report a pending timer")
	}
	if tm.Stop() {
		t.Fatal("expected second Stop to be a no-op")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
}

func TestTimer_NilStopIsSafe(t *testing.T) {
	var tm *Timer
	if tm.Stop() || tm.Pending() || tm.Remaining() != 0 {
		t.Fatal("nil timer should be inert")
	}
}

func TestClock_TimerScheduledByCallbackFiresInSameAdvance(t *testing.T) {
	c := NewClock()
	var at time.Duration = -1
	c.After(time.Second, func() {
		c.After(time.Second, func() { at = c.Now() })
	})
	c.Advance(3 * time.Second)
	if at != 2*time.Second {
		t.Fatalf("expected nested timer to fire at 2s, got %s", at)
	}
}
