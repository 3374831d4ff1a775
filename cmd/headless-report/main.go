package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/Garsondee/Chip-Trail/internal/game"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

type runStats struct {
	runIndex int
	seed     int64
	level    string

	won      bool
	wonAt    time.Duration
	elapsed  time.Duration
	mistakes int

	attempts  int
	successes int
	failures  int
	hints     int
	released  int

	wrongType  int
	leftRegion int

	firstSuccess time.Duration
	firstFailure time.Duration
	firstHint    time.Duration
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var mistakes float64
	var landscape bool
	var maxSeconds int
	var level string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&mistakes, "mistakes", 0.25, "probability that a bot attempt is a deliberate mistake")
	flag.BoolVar(&landscape, "landscape", false, "lay out for a 1366x768 landscape viewport")
	flag.IntVar(&maxSeconds, "max-seconds", 120, "game-time limit per run")
	flag.StringVar(&level, "level", "st0068", "level to play")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if mistakes < 0 || mistakes > 1 {
		fmt.Println("error: -mistakes must be within [0,1]")
		return
	}
	if maxSeconds <= 0 {
		fmt.Println("error: -max-seconds must be > 0")
		return
	}

	w, h := 768, 1366
	orient := "portrait"
	if landscape {
		w, h = 1366, 768
		orient = "landscape"
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("level=%s runs=%d orientation=%s mistakes=%.2f seed_base=%d seed_step=%d\n\n",
		level, runs, orient, mistakes, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runSession(i+1, seed, level, w, h, mistakes, time.Duration(maxSeconds)*time.Second)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runSession(runIndex int, seed int64, level string, w, h int, mistakeRate float64, limit time.Duration) (runStats, error) {
	ts, err := game.NewTestSim(
		game.WithSeed(seed),
		game.WithLevel(level),
		game.WithViewport(w, h),
		game.WithSkipIntro(),
	)
	if err != nil {
		return runStats{}, err
	}
	bot := game.NewBot(ts, seed, mistakeRate)
	bot.Play(limit)

	st := ts.Session.Stats()
	entries := ts.Log.Entries()
	return runStats{
		runIndex:     runIndex,
		seed:         seed,
		level:        level,
		won:          st.Won,
		wonAt:        st.WonAt,
		elapsed:      st.Elapsed,
		mistakes:     bot.Mistakes,
		attempts:     st.Attempts,
		successes:    st.Successes,
		failures:     st.Failures,
		hints:        st.Hints,
		released:     ts.Log.Count("attempt", "released"),
		wrongType:    countValue(entries, "attempt", "failed", "wrong_type"),
		leftRegion:   countValue(entries, "attempt", "failed", "left_region"),
		firstSuccess: firstAt(entries, "attempt", "completed", ""),
		firstFailure: firstAt(entries, "attempt", "failed", ""),
		firstHint:    firstAt(entries, "hint", "shown", ""),
	}, nil
}

// firstAt returns the game time of the first matching entry, or -1.
func firstAt(entries []game.LogEntry, category, key, contains string) time.Duration {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.At
		}
	}
	return -1
}

func countValue(entries []game.LogEntry, category, key, value string) int {
	n := 0
	for _, e := range entries {
		if e.Category == category && e.Key == key && e.Value == value {
			n++
		}
	}
	return n
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	outcome := "not won"
	if rs.won {
		outcome = "won after " + formatDuration(rs.wonAt)
	}
	fmt.Printf("outcome: %s (played %s)\n", outcome, formatDuration(rs.elapsed))
	fmt.Printf("attempts: total=%d completed=%d failed=%d released=%d mistakes=%d\n",
		rs.attempts, rs.successes, rs.failures, rs.released, rs.mistakes)
	fmt.Printf("failures: wrong_type=%d left_region=%d\n", rs.wrongType, rs.leftRegion)
	fmt.Printf("markers: first_success=%s first_failure=%s first_hint=%s\n",
		formatDuration(rs.firstSuccess), formatDuration(rs.firstFailure), formatDuration(rs.firstHint))
	if rs.attempts > 0 {
		fmt.Printf("success_rate: %.0f%%\n", successRate(rs)*100)
	}
	if rs.won {
		fmt.Printf("finished on the %s attempt\n", humanize.Ordinal(rs.attempts))
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	wins := 0
	totalAttempts := 0
	totalFailures := 0
	totalHints := 0
	var wonTimes []time.Duration
	var stuck []string

	for _, rs := range all {
		totalAttempts += rs.attempts
		totalFailures += rs.failures
		totalHints += rs.hints
		if rs.won {
			wins++
			wonTimes = append(wonTimes, rs.wonAt)
		}
		if ok, reason := detectStuck(rs); ok {
			stuck = append(stuck, fmt.Sprintf("run%d:%s", rs.runIndex, reason))
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d (%.0f%%)\n", len(all), wins, avg(wins*100, len(all)))
	fmt.Printf("attempts=%s failures=%s hints=%s\n",
		humanize.Comma(int64(totalAttempts)), humanize.Comma(int64(totalFailures)), humanize.Comma(int64(totalHints)))
	fmt.Printf("avg_per_run: attempts=%.1f failures=%.1f hints=%.1f\n",
		avg(totalAttempts, len(all)), avg(totalFailures, len(all)), avg(totalHints, len(all)))
	fmt.Printf("avg_time_to_win=%s\n", avgDurationString(wonTimes))
	if len(stuck) > 0 {
		fmt.Printf("stuck_runs=%d [%s]\n", len(stuck), strings.Join(stuck, " "))
	}
}

// detectStuck flags runs that ended without a win. The reason tells a
// level that cannot be finished apart from a bot that kept failing.
func detectStuck(rs runStats) (bool, string) {
	if rs.won {
		return false, ""
	}
	if rs.attempts == 0 {
		return true, "no_attempt"
	}
	if rs.failures*2 >= rs.attempts {
		return true, "mostly_failed"
	}
	return true, "no_sequence_left"
}

func successRate(rs runStats) float64 {
	if rs.attempts == 0 {
		return 0
	}
	return float64(rs.successes) / float64(rs.attempts)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgDurationString(vals []time.Duration) string {
	if len(vals) == 0 {
		return "n/a"
	}
	var sum time.Duration
	for _, v := range vals {
		sum += v
	}
	return formatDuration(sum / time.Duration(len(vals)))
}

// formatDuration renders game time to the nearest millisecond; negative
// values mean the marker never occurred.
func formatDuration(d time.Duration) string {
	if d < 0 {
		return "n/a"
	}
	if d < time.Millisecond {
		return "0s"
	}
	return durafmt.Parse(d.Round(time.Millisecond)).LimitFirstN(2).String()
}
