package game

import "time"

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// CubicOut decelerates towards the end value.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Tween interpolates one float property. With Yoyo a cycle runs forward then
// back; Repeat adds extra cycles. Stop never runs completion callbacks.
type Tween struct {
	set      func(float64)
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
	ease     Ease
	yoyo     bool
	repeat   int
	cycle    int
	reverse  bool
	done     bool
	stopped  bool
	notify   bool // finished, callbacks not yet run
	complete []func()
}

// Yoyo makes each cycle return to the start value.
func (tw *Tween) Yoyo(v bool) *Tween {
	tw.yoyo = v
	return tw
}

// Repeat sets the number of extra cycles after the first.
func (tw *Tween) Repeat(n int) *Tween {
	if n < 0 {
		n = 0
	}
	tw.repeat = n
	return tw
}

// OnComplete registers fn to run once the tween finishes on its own.
func (tw *Tween) OnComplete(fn func()) *Tween {
	tw.complete = append(tw.complete, fn)
	return tw
}

// Stop halts the tween where it is. Idempotent; nil-safe.
func (tw *Tween) Stop() {
	if tw == nil {
		return
	}
	if tw.notify {
		tw.notify = false
		tw.stopped = true
		return
	}
	if tw.done {
		return
	}
	tw.stopped = true
	tw.done = true
}

// Active reports whether the tween is still running.
func (tw *Tween) Active() bool {
	return tw != nil && !tw.done
}

// Stopped reports whether the tween was cancelled rather than completed.
func (tw *Tween) Stopped() bool {
	return tw != nil && tw.stopped
}

// Total returns the full running time including yoyo legs and repeats.
func (tw *Tween) Total() time.Duration {
	legs := 1
	if tw.yoyo {
		legs = 2
	}
	return tw.duration * time.Duration(legs*(tw.repeat+1))
}

// step advances the tween and reports whether it finished during this call.
func (tw *Tween) step(dt time.Duration) bool {
	if tw.done {
		return false
	}
	if tw.duration <= 0 {
		tw.finish()
		return true
	}
	tw.elapsed += dt
	for tw.elapsed >= tw.duration {
		tw.elapsed -= tw.duration
		if tw.yoyo && !tw.reverse {
			tw.reverse = true
			continue
		}
		tw.reverse = false
		if tw.cycle < tw.repeat {
			tw.cycle++
			continue
		}
		tw.finish()
		return true
	}
	p := float64(tw.elapsed) / float64(tw.duration)
	if tw.reverse {
		p = 1 - p
	}
	tw.set(tw.from + (tw.to-tw.from)*tw.ease(p))
	return false
}

func (tw *Tween) finish() {
	tw.done = true
	tw.notify = true
	if tw.yoyo {
		tw.set(tw.from)
	} else {
		tw.set(tw.to)
	}
}

// Tweener owns every running tween of a session and advances them together.
type Tweener struct {
	active []*Tween
}

// NewTweener creates an empty tween manager.
func NewTweener() *Tweener {
	return &Tweener{}
}

// To starts a tween of the property behind get/set towards to.
func (tm *Tweener) To(get func() float64, set func(float64), to float64, d time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	tw := &Tween{set: set, from: get(), to: to, duration: d, ease: ease}
	tm.active = append(tm.active, tw)
	return tw
}

// Alpha tweens v.Alpha.
func (tm *Tweener) Alpha(v *Visual, to float64, d time.Duration) *Tween {
	return tm.To(func() float64 { return v.Alpha }, func(a float64) { v.Alpha = a }, to, d, Linear)
}

// Scale tweens v.Scale.
func (tm *Tweener) Scale(v *Visual, to float64, d time.Duration) *Tween {
	return tm.To(func() float64 { return v.Scale }, func(s float64) { v.Scale = s }, to, d, Linear)
}

// MoveX tweens v.X.
func (tm *Tweener) MoveX(v *Visual, to float64, d time.Duration) *Tween {
	return tm.To(func() float64 { return v.X }, func(x float64) { v.X = x }, to, d, Linear)
}

// MoveY tweens v.Y.
func (tm *Tweener) MoveY(v *Visual, to float64, d time.Duration) *Tween {
	return tm.To(func() float64 { return v.Y }, func(y float64) { v.Y = y }, to, d, Linear)
}

// Update advances all tweens by dt. Completion callbacks run after the
// finished tween has written its final value; tweens they start are first
// advanced on the next Update.
func (tm *Tweener) Update(dt time.Duration) {
	if len(tm.active) == 0 {
		return
	}
	snapshot := append([]*Tween(nil), tm.active...)
	var finished []*Tween
	for _, tw := range snapshot {
		if tw.step(dt) {
			finished = append(finished, tw)
		}
	}
	tm.prune()
	for _, tw := range finished {
		if !tw.notify {
			continue
		}
		tw.notify = false
		for _, fn := range tw.complete {
			fn()
		}
	}
}

// Running returns the number of active tweens.
func (tm *Tweener) Running() int {
	n := 0
	for _, tw := range tm.active {
		if !tw.done {
			n++
		}
	}
	return n
}

func (tm *Tweener) prune() {
	kept := tm.active[:0]
	for _, tw := range tm.active {
		if !tw.done {
			kept = append(kept, tw)
		}
	}
	for i := len(kept); i < len(tm.active); i++ {
		tm.active[i] = nil
	}
	tm.active = kept
}
