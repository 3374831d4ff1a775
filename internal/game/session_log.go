package game

import (
	"fmt"
	"strings"
	"time"
)

// LogEntry is one recorded session event.
type LogEntry struct {
	At       time.Duration // game time
	Category string        // phase, attempt, chip, hint, layout, cta
	Key      string        // specific event name within the category
	Value    string        // human-readable detail
	NumVal   float64       // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[  3.250s] attempt  failed           wrong_type
func (e LogEntry) String() string {
	return fmt.Sprintf("[%8.3fs] %-8s %-16s %s",
		e.At.Seconds(), e.Category, e.Key, e.Value)
}

// SessionLog collects structured events of one session. With a limit it keeps
// only the newest entries, like an on-screen ring buffer; without one it is
// unbounded for tests and headless runs.
type SessionLog struct {
	entries []LogEntry
	limit   int
	head    int
	total   int
}

// NewSessionLog creates a log. limit <= 0 means unbounded.
func NewSessionLog(limit int) *SessionLog {
	sl := &SessionLog{limit: limit}
	if limit > 0 {
		sl.entries = make([]LogEntry, 0, limit)
	}
	return sl
}

// Add records a new entry. A nil log discards it.
func (sl *SessionLog) Add(at time.Duration, category, key, value string, numVal float64) {
	if sl == nil {
		return
	}
	e := LogEntry{At: at, Category: category, Key: key, Value: value, NumVal: numVal}
	sl.total++
	if sl.limit <= 0 || len(sl.entries) < sl.limit {
		sl.entries = append(sl.entries, e)
		return
	}
	sl.entries[sl.head] = e
	sl.head = (sl.head + 1) % sl.limit
}

// Entries returns the retained entries, oldest first.
func (sl *SessionLog) Entries() []LogEntry {
	if sl == nil {
		return nil
	}
	if sl.head == 0 {
		return sl.entries
	}
	out := make([]LogEntry, 0, len(sl.entries))
	out = append(out, sl.entries[sl.head:]...)
	return append(out, sl.entries[:sl.head]...)
}

// Total returns how many entries were ever added, including evicted ones.
func (sl *SessionLog) Total() int {
	if sl == nil {
		return 0
	}
	return sl.total
}

// Recent returns up to n newest entries, oldest first.
func (sl *SessionLog) Recent(n int) []LogEntry {
	all := sl.Entries()
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SessionLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range sl.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (sl *SessionLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SessionLog) LastOf(category, key string) (LogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SessionLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SessionLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
