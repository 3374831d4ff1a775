package main

import (
	"testing"
	"time"

	"github.com/Garsondee/Chip-Trail/internal/game"
)

func TestFirstAt(t *testing.T) {
	entries := []game.LogEntry{
		{At: time.Second, Category: "attempt", Key: "failed", Value: "left_region"},
		{At: 2 * time.Second, Category: "attempt", Key: "failed", Value: "wrong_type"},
		{At: 3 * time.Second, Category: "attempt", Key: "completed", Value: "ruby-0"},
	}
	if got := firstAt(entries, "attempt", "failed", "wrong"); got != 2*time.Second {
		t.Fatalf("expected 2s, got %s", got)
	}
	if got := firstAt(entries, "attempt", "failed", ""); got != time.Second {
		t.Fatalf("expected 1s, got %s", got)
	}
	if got := firstAt(entries, "hint", "shown", ""); got != -1 {
		t.Fatalf("expected -1 for a missing marker, got %s", got)
	}
}

func TestCountValue(t *testing.T) {
	entries := []game.LogEntry{
		{Category: "attempt", Key: "failed", Value: "wrong_type"},
		{Category: "attempt", Key: "failed", Value: "left_region"},
		{Category: "attempt", Key: "failed", Value: "wrong_type"},
	}
	if n := countValue(entries, "attempt", "failed", "wrong_type"); n != 2 {
		t.Fatalf("expected 2 wrong_type failures, got %d", n)
	}
}

func TestDetectStuck_FalseWhenWon(t *testing.T) {
	if ok, reason := detectStuck(runStats{won: true, attempts: 5, failures: 4}); ok {
		t.Fatalf("expected won run not to be stuck (reason=%s)", reason)
	}
}

func TestDetectStuck_MostlyFailed(t *testing.T) {
	ok, reason := detectStuck(runStats{attempts: 10, failures: 7, successes: 2})
	if !ok || reason != "mostly_failed" {
		t.Fatalf("expected mostly_failed, got ok=%v reason=%s", ok, reason)
	}
}

func TestDetectStuck_NoAttempt(t *testing.T) {
	ok, reason := detectStuck(runStats{})
	if !ok || reason != "no_attempt" {
		t.Fatalf("expected no_attempt, got ok=%v reason=%s", ok, reason)
	}
}

func TestFormatDuration_Missing(t *testing.T) {
	if got := formatDuration(-1); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := avgDurationString(nil); got != "n/a" {
		t.Fatalf("expected n/a for no samples, got %q", got)
	}
}

func TestRunSession_CleanBotWins(t *testing.T) {
	rs, err := runSession(1, 7, "st0068", 768, 1366, 0, 2*time.Minute)
	if err != nil {
		t.Fatalf("runSession: %v", err)
	}
	if !rs.won {
		t.Fatalf("expected a mistake-free bot to win, got %+v", rs)
	}
	if rs.successes != 3 || rs.failures != 0 {
		t.Fatalf("expected 3 successes and no failures, got %d/%d", rs.successes, rs.failures)
	}
	if rs.firstSuccess < 0 {
		t.Fatal("expected a first_success marker")
	}
}

func TestRunSession_Landscape(t *testing.T) {
	rs, err := runSession(1, 3, "practice", 1366, 768, 0, 2*time.Minute)
	if err != nil {
		t.Fatalf("runSession: %v", err)
	}
	if !rs.won || rs.successes != 2 {
		t.Fatalf("expected practice level won in 2 sequences, got won=%v successes=%d", rs.won, rs.successes)
	}
}
