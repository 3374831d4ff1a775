package game

import "time"

// Config holds the session settings the entry points expose as flags.
type Config struct {
	Level     string
	Locale    string
	Seed      int64 // 0 picks a time-based seed
	Goal      int
	HintDelay time.Duration
	CTAURL    string
	Width     int // initial viewport, replaced by the first real layout
	Height    int
	Sound     bool
	Debug     bool
}

// DefaultConfig returns the settings of the shipped playable.
func DefaultConfig() Config {
	return Config{
		Level:     "st0068",
		Locale:    "en",
		Goal:      DefaultGoal,
		HintDelay: DefaultHintDelay,
		Width:     540,
		Height:    960,
		Sound:     true,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Locale == "" {
		c.Locale = d.Locale
	}
	if c.Goal <= 0 {
		c.Goal = d.Goal
	}
	if c.HintDelay <= 0 {
		c.HintDelay = d.HintDelay
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = d.Width, d.Height
	}
	return c
}
