package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseIntro Phase = iota // scripted ready/go sequence, input has no effect on chips
	PhaseReady              // play enabled, hints armed
	PhaseWon                // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseReady:
		return "ready"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

const (
	highlightFade = 250 * time.Millisecond
	wallFlash     = 250 * time.Millisecond
)

// SoundPlayer plays the audio side of gameplay feedback.
type SoundPlayer interface {
	Fail()
	Success()
	Win()
}

type noSound struct{}

func (noSound) Fail()    {}
func (noSound) Success() {}
func (noSound) Win()     {}

// CTAHandler is invoked when the call-to-action is clicked.
type CTAHandler func()

// SessionDeps are the external collaborators of a Session. Zero fields get
// the built-in implementations.
type SessionDeps struct {
	Factory    SceneFactory
	Translator Translator
	Resizer    ResizeCalculator
	CTA        CTAHandler
	Sounds     SoundPlayer
	Log        *SessionLog
}

// Session is one game: it owns every piece of mutable gameplay state and
// processes pointer, timer and animation events one at a time.
type Session struct {
	cfg   Config
	scene *Scene
	chips []*Chip
	t     Translator

	clock   *Clock
	tweens  *Tweener
	layout  *Layout
	tracker *DrawingTracker
	matcher *Matcher
	hints   *HintScheduler
	intro   *IntroSequence
	log     *SessionLog
	sounds  SoundPlayer
	cta     CTAHandler

	phase       Phase
	drawing     bool // an attempt is in progress
	pointerDown bool
	won         bool
	tick        int

	attempts  int
	failures  int
	successes int
	wonAt     time.Duration
}

// NewSession builds the scene for cfg.Level and lays it out for the
// configured viewport. The intro starts on the first Update.
func NewSession(cfg Config, deps SessionDeps) (*Session, error) {
	cfg = cfg.withDefaults()
	if deps.Translator == nil {
		deps.Translator = NewCatalog().T
	}
	if deps.Factory == nil {
		deps.Factory = NewLevelFactory(cfg.Locale)
	}
	if deps.Sounds == nil {
		deps.Sounds = noSound{}
	}
	if deps.CTA == nil {
		deps.CTA = func() {}
	}

	scene, err := deps.Factory.Build(cfg.Level, deps.Translator)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	if err := scene.validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:     cfg,
		scene:   scene,
		chips:   newChips(scene),
		t:       deps.Translator,
		clock:   NewClock(),
		tweens:  NewTweener(),
		layout:  NewLayout(deps.Resizer),
		tracker: &DrawingTracker{},
		matcher: NewMatcher(cfg.Goal),
		intro:   newIntroSequence(),
		log:     deps.Log,
		sounds:  deps.Sounds,
		cta:     deps.CTA,
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- hint choice only
	s.hints = NewHintScheduler(s.clock, s.tweens, rng, cfg.HintDelay, s.chips, s.log)
	s.log.Add(0, "phase", "enter", PhaseIntro.String(), 0)
	s.Resize(cfg.Width, cfg.Height)
	return s, nil
}

// Update advances game time: timers first, then animations, then the intro.
func (s *Session) Update(dt time.Duration) {
	s.tick++
	s.clock.Advance(dt)
	s.tweens.Update(dt)
	if s.phase == PhaseIntro {
		s.intro.Update(s, dt)
	}
}

// Resize re-lays out the scene for a new viewport (0 keeps the current one)
// and resets the attempt, since path coordinates depend on the old factor.
func (s *Session) Resize(width, height int) {
	s.layout.Apply(s.scene, width, height)
	orient := "portrait"
	if s.layout.Landscape {
		orient = "landscape"
	}
	w, h := s.layout.Viewport()
	s.log.Add(s.clock.Now(), "layout", "resize",
		fmt.Sprintf("%dx%d %s f=%.3f", w, h, orient, s.layout.Factor), s.layout.Factor)
	s.ResetAttempt()
}

// PointerDown starts an attempt when play is enabled and the pointer is over
// a live chip. A press on the CTA goes to the CTA handler instead.
func (s *Session) PointerDown(x, y float64) {
	s.pointerDown = true
	if s.ctaHit(x, y) {
		s.log.Add(s.clock.Now(), "cta", "click", s.phase.String(), 0)
		s.cta()
		return
	}
	if s.phase != PhaseReady || s.chipUnderPointer(x, y) == nil {
		return
	}
	hand := s.scene.Visuals[visHand]
	hand.Alpha = 1
	hand.X, hand.Y = x, y
	s.hints.Stop()
	s.drawing = true
	s.attempts++
	s.log.Add(s.clock.Now(), "attempt", "started", fmt.Sprintf("(%.0f,%.0f)", x, y), float64(s.attempts))
}

// PointerUp ends the attempt, whatever its sub-state.
func (s *Session) PointerUp() {
	s.pointerDown = false
	switch s.phase {
	case PhaseReady:
		if s.drawing {
			s.log.Add(s.clock.Now(), "attempt", "released", s.matcher.Target(), float64(s.matcher.Count()))
		}
		s.ResetAttempt()
		s.scene.Visuals[visHand].Alpha = 0
	case PhaseWon:
		s.scene.Visuals[visHand].Alpha = 0
	}
}

// PointerMove validates the drag. Only the first chip enter/exit transition
// found in chip order is processed per move.
func (s *Session) PointerMove(x, y float64) {
	if !s.pointerDown || !s.drawing {
		return
	}
	if !s.layout.Region.Contains(x, y) {
		s.fail("left_region")
		return
	}
	for _, c := range s.chips {
		if !c.InputEnabled {
			continue
		}
		over := s.overlaps(c, x, y)
		if over && !c.Over {
			if !s.enterChip(c) {
				return
			}
			break
		}
		if !over && c.Over {
			s.matcher.Exit(c)
			break
		}
	}
	s.tracker.AddPoint(x, y, s.Transform())
	hand := s.scene.Visuals[visHand]
	hand.X, hand.Y = x, y
}

// enterChip dispatches a chip enter and reports whether the attempt goes on.
func (s *Session) enterChip(c *Chip) bool {
	res := s.matcher.Enter(c)
	s.log.Add(s.clock.Now(), "chip", "enter", c.Key()+" "+res.String(), float64(s.matcher.Count()))
	switch res {
	case EnterWrongType:
		s.fail("wrong_type")
		return false
	case EnterRecorded:
		s.highlight(c, 1)
	case EnterComplete:
		s.highlight(c, 1)
		s.completeChain()
		return false
	}
	return true
}

func (s *Session) completeChain() {
	chain := s.matcher.Chain()
	keys := make([]string, 0, len(chain))
	for _, c := range chain {
		c.Alive = false
		c.InputEnabled = false
		keys = append(keys, c.Key())
	}
	s.successes++
	s.log.Add(s.clock.Now(), "attempt", "completed", strings.Join(keys, ","), float64(s.AliveCount()))
	s.scene.Visuals[visHand].Alpha = 0
	s.sounds.Success()
	s.ResetAttempt()
	s.CheckWin()
}

// fail plays the failure cue and aborts the attempt.
func (s *Session) fail(reason string) {
	s.failures++
	s.log.Add(s.clock.Now(), "attempt", "failed", reason, float64(s.failures))
	s.scene.Visuals[visHand].Alpha = 0
	s.tweens.To(
		func() float64 { return s.scene.Visuals[visWall].Alpha },
		func(a float64) { s.scene.Visuals[visWall].Alpha = a },
		1, wallFlash, CubicOut,
	).Yoyo(true)
	s.sounds.Fail()
	s.ResetAttempt()
}

// ResetAttempt clears all attempt bookkeeping. Chip alive state is kept; the
// hint timer is re-armed only if an attempt had been dragging. Safe from any
// state.
func (s *Session) ResetAttempt() {
	if s.drawing {
		s.hints.Arm()
	}
	s.drawing = false
	s.tracker.Clear()
	s.matcher.Reset()
	for _, c := range s.chips {
		c.Over = false
		if c.Alive {
			c.InputEnabled = true
		} else if c.Visual.Alpha > 0 {
			s.tweens.Alpha(c.Visual, 0, highlightFade)
		}
		s.highlight(c, 0)
	}
}

// highlight fades the chip's hover ring towards alpha, replacing the
// previous highlight tween of that chip. Hint pulses are not affected.
func (s *Session) highlight(c *Chip, alpha float64) {
	c.highlight.Stop()
	c.highlight = nil
	if c.Hover.Alpha == alpha {
		return
	}
	c.highlight = s.tweens.Alpha(c.Hover, alpha, highlightFade)
}

// CheckWin starts the won transition when no chip is alive. It fires once;
// later calls return false.
func (s *Session) CheckWin() bool {
	if s.won || s.AliveCount() > 0 {
		return false
	}
	s.won = true
	s.wonAt = s.clock.Now()
	s.setPhase(PhaseWon)
	s.playWinSequence()
	s.sounds.Win()
	return true
}

func (s *Session) startPlay() {
	s.setPhase(PhaseReady)
	s.hints.Arm()
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.log.Add(s.clock.Now(), "phase", "enter", p.String(), float64(p))
	s.phase = p
}

// Transform returns the live canvas coordinate transform.
func (s *Session) Transform() CanvasTransform {
	return s.layout.Transform(s.scene)
}

// ChipCenter returns the chip's centre in screen pixels.
func (s *Session) ChipCenter(c *Chip) (float64, float64) {
	return s.Transform().ToScreen(c.Visual.Local)
}

func (s *Session) overlaps(c *Chip, x, y float64) bool {
	ct := s.Transform()
	cx, cy := ct.ToScreen(c.Visual.Local)
	return dist(cx, cy, x, y) <= ct.Length(c.Visual.Radius)
}

func (s *Session) chipUnderPointer(x, y float64) *Chip {
	for _, c := range s.chips {
		if c.InputEnabled && s.overlaps(c, x, y) {
			return c
		}
	}
	return nil
}

func (s *Session) ctaHit(x, y float64) bool {
	cta := s.scene.Visuals[visCTA]
	return cta.Alpha > 0 && cta.Bounds().Contains(x, y)
}

// AliveCount returns the number of chips not yet consumed.
func (s *Session) AliveCount() int {
	n := 0
	for _, c := range s.chips {
		if c.Alive {
			n++
		}
	}
	return n
}

// SessionStats summarises play so far.
type SessionStats struct {
	Attempts  int
	Failures  int
	Successes int
	Hints     int
	Won       bool
	WonAt     time.Duration
	Elapsed   time.Duration
}

// Stats returns the counters of the session.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		Attempts:  s.attempts,
		Failures:  s.failures,
		Successes: s.successes,
		Hints:     s.hints.Shown(),
		Won:       s.won,
		WonAt:     s.wonAt,
		Elapsed:   s.clock.Now(),
	}
}

func (s *Session) Phase() Phase             { return s.phase }
func (s *Session) Scene() *Scene            { return s.scene }
func (s *Session) Chips() []*Chip           { return s.chips }
func (s *Session) Layout() *Layout          { return s.layout }
func (s *Session) Tracker() *DrawingTracker { return s.tracker }
func (s *Session) Matcher() *Matcher        { return s.matcher }
func (s *Session) Hints() *HintScheduler    { return s.hints }
func (s *Session) Log() *SessionLog         { return s.log }
func (s *Session) Clock() *Clock            { return s.clock }
func (s *Session) Tweens() *Tweener         { return s.tweens }
func (s *Session) Drawing() bool            { return s.drawing }
func (s *Session) Won() bool                { return s.won }
func (s *Session) Tick() int                { return s.tick }
func (s *Session) Config() Config           { return s.cfg }
