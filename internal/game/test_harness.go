package game

import (
	"fmt"
	"time"
)

// simFrame is the fixed step TestSim advances time by.
const simFrame = time.Second / 60

// TestSim is a headless harness around a real Session. It has no ebiten
// dependency; time only moves when the caller advances it.
type TestSim struct {
	Session   *Session
	Log       *SessionLog
	Sounds    *SoundCounter
	CTAClicks int

	cfg       Config
	factory   SceneFactory
	resizer   ResizeCalculator
	skipIntro bool
	dragSteps int
}

// SoundCounter is a SoundPlayer that only counts cues.
type SoundCounter struct {
	Fails     int
	Successes int
	Wins      int
}

func (sc *SoundCounter) Fail()    { sc.Fails++ }
func (sc *SoundCounter) Success() { sc.Successes++ }
func (sc *SoundCounter) Win()     { sc.Wins++ }

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig  simOptionKind = iota // applied before the session is built
	simOptSession                      // applied to the built session
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the hint RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.cfg.Seed = seed }}
}

// WithViewport sets the initial viewport in pixels.
func WithViewport(w, h int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.cfg.Width, ts.cfg.Height = w, h }}
}

// WithGoal sets the chain length needed to consume a sequence.
func WithGoal(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.cfg.Goal = n }}
}

// WithHintDelay sets the idle time before a hint.
func WithHintDelay(d time.Duration) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.cfg.HintDelay = d }}
}

// WithLevel selects an embedded level.
func WithLevel(name string) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.cfg.Level = name }}
}

// WithScene replaces the level factory.
func WithScene(f SceneFactory) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.factory = f }}
}

// WithResizer replaces the resize calculator.
func WithResizer(r ResizeCalculator) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.resizer = r }}
}

// WithDragSteps sets how many moves DragThrough uses between two chips.
func WithDragSteps(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.dragSteps = n }}
}

// WithSkipIntro runs the intro to completion so play is enabled.
func WithSkipIntro() SimOption {
	return SimOption{simOptSession, func(ts *TestSim) { ts.skipIntro = true }}
}

// NewTestSim builds a session at design resolution (768x1366 portrait,
// factor 1) unless options say otherwise.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		Log:       NewSessionLog(0),
		Sounds:    &SoundCounter{},
		cfg:       DefaultConfig(),
		dragSteps: 8,
	}
	ts.cfg.Seed = 1
	ts.cfg.Width, ts.cfg.Height = 768, 1366
	for _, o := range opts {
		if o.kind == simOptConfig {
			o.fn(ts)
		}
	}
	s, err := NewSession(ts.cfg, SessionDeps{
		Factory:    ts.factory,
		Translator: NewCatalog().T,
		Resizer:    ts.resizer,
		CTA:        func() { ts.CTAClicks++ },
		Sounds:     ts.Sounds,
		Log:        ts.Log,
	})
	if err != nil {
		return nil, err
	}
	ts.Session = s
	for _, o := range opts {
		if o.kind == simOptSession {
			o.fn(ts)
		}
	}
	if ts.skipIntro {
		if err := ts.SkipIntro(); err != nil {
			return nil, err
		}
	}
	return ts, nil
}

// Advance moves game time forward by d in frame-sized steps.
func (ts *TestSim) Advance(d time.Duration) {
	for d > 0 {
		step := simFrame
		if d < step {
			step = d
		}
		ts.Session.Update(step)
		d -= step
	}
}

// SkipIntro advances until play is enabled.
func (ts *TestSim) SkipIntro() error {
	limit := ts.Session.intro.Duration(ts.Session.Layout().Landscape) + time.Second
	for elapsed := time.Duration(0); ts.Session.Phase() == PhaseIntro; elapsed += simFrame {
		if elapsed > limit {
			return fmt.Errorf("intro did not finish within %s", limit)
		}
		ts.Session.Update(simFrame)
	}
	return nil
}

func (ts *TestSim) Down(x, y float64) { ts.Session.PointerDown(x, y) }
func (ts *TestSim) Move(x, y float64) { ts.Session.PointerMove(x, y) }
func (ts *TestSim) Up()               { ts.Session.PointerUp() }

// Resize applies a new viewport the way Game.Update does.
func (ts *TestSim) Resize(w, h int) { ts.Session.Resize(w, h) }

// ChipCenter returns the screen centre of c.
func (ts *TestSim) ChipCenter(c *Chip) (float64, float64) {
	return ts.Session.ChipCenter(c)
}

// Chip returns the chip with the given ID, or nil.
func (ts *TestSim) Chip(id int) *Chip {
	for _, c := range ts.Session.Chips() {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ChipsOfType returns every chip with the given frame, alive or not.
func (ts *TestSim) ChipsOfType(frame string) []*Chip {
	var out []*Chip
	for _, c := range ts.Session.Chips() {
		if c.Frame == frame {
			out = append(out, c)
		}
	}
	return out
}

// AliveChips returns the chips not yet consumed.
func (ts *TestSim) AliveChips() []*Chip {
	var out []*Chip
	for _, c := range ts.Session.Chips() {
		if c.Alive {
			out = append(out, c)
		}
	}
	return out
}

// DragThrough presses on the first chip, moves in straight lines through
// the rest and keeps the pointer down. Call Up to release.
func (ts *TestSim) DragThrough(chips ...*Chip) {
	if len(chips) == 0 {
		return
	}
	x, y := ts.ChipCenter(chips[0])
	ts.Down(x, y)
	ts.Move(x+1, y)
	for _, c := range chips[1:] {
		tx, ty := ts.ChipCenter(c)
		ts.MoveTo(x, y, tx, ty)
		x, y = tx, ty
	}
}

// MoveTo moves the pointer from (x0,y0) to (x1,y1) in even steps.
func (ts *TestSim) MoveTo(x0, y0, x1, y1 float64) {
	n := ts.dragSteps
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		ts.Move(x0+(x1-x0)*f, y0+(y1-y0)*f)
	}
}
