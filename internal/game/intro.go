package game

import "time"

const (
	introHold   = time.Second
	introPop    = 250 * time.Millisecond
	introSlide  = 500 * time.Millisecond
	playCanvasY = 410 // portrait canvas top once play starts, design units
)

// introStep mutates the scene and returns how long to wait before the next step.
type introStep struct {
	name string
	run  func(s *Session) time.Duration
}

// IntroSequence is the linear ready/go script played before input is enabled.
type IntroSequence struct {
	steps []introStep
	index int
	wait  time.Duration
	slide *Tween // portrait branch: canvas slides up and needs a relayout
	done  bool
}

func newIntroSequence() *IntroSequence {
	in := &IntroSequence{}
	in.steps = []introStep{
		{"hold", func(*Session) time.Duration { return introHold }},
		{"ready_in", func(s *Session) time.Duration {
			s.tweens.Scale(s.scene.Visuals[visReady], 1, introPop)
			return introPop
		}},
		{"hold", func(*Session) time.Duration { return introHold }},
		{"ready_out", func(s *Session) time.Duration {
			s.tweens.Alpha(s.scene.Visuals[visReady], 0, introPop)
			return introPop
		}},
		{"go_in", func(s *Session) time.Duration {
			ready := s.scene.Visuals[visReady]
			ready.Scale = 0
			ready.Alpha = 1
			ready.Text = s.t("go", s.cfg.Locale)
			s.tweens.Scale(ready, 1, introPop)
			return introPop
		}},
		{"hold", func(*Session) time.Duration { return introHold }},
		{"clear", in.clear},
		{"play", in.play},
	}
	return in
}

// clear fades the prompt and moves the canvas to its play position.
func (in *IntroSequence) clear(s *Session) time.Duration {
	v := s.scene.Visuals
	s.tweens.Alpha(v[visReady], 0, introPop)
	s.tweens.Alpha(v[visScroll], 0, introPop)
	top := float64(playCanvasY)
	v[visCanvas].Data.Offset.Portrait.Top = &top
	v[visCanvas].Data.Offset.Portrait.CenterY = nil
	v[visCanvas].Data.Offset.Portrait.Bottom = nil
	if !s.layout.Landscape {
		in.slide = s.tweens.MoveY(v[visCanvas], top*s.layout.Factor, introSlide)
		return introSlide
	}
	s.tweens.Alpha(v[visDraw], 1, introPop)
	return introPop
}

func (in *IntroSequence) play(s *Session) time.Duration {
	if in.slide != nil {
		in.slide.Stop()
		s.tweens.Alpha(s.scene.Visuals[visDraw], 1, introPop)
		s.Resize(0, 0)
	}
	s.startPlay()
	return 0
}

// Update advances the script by dt, running every step that falls due.
func (in *IntroSequence) Update(s *Session, dt time.Duration) {
	if in.done {
		return
	}
	in.wait -= dt
	for in.wait <= 0 {
		if in.index >= len(in.steps) {
			in.done = true
			return
		}
		step := in.steps[in.index]
		in.index++
		in.wait += step.run(s)
	}
}

// Duration returns the scripted length for the given orientation.
func (in *IntroSequence) Duration(landscape bool) time.Duration {
	d := 3*introHold + 3*introPop
	if landscape {
		return d + introPop
	}
	return d + introSlide
}
