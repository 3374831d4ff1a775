package game

import (
	"math"
	"math/rand"
	"time"
)

const (
	botThink   = 400 * time.Millisecond // pause between attempts
	botTimeout = 2 * time.Minute
)

// Bot plays a TestSim session by dragging through chips of one type at a
// time. With a MistakeRate above zero some attempts deliberately fail.
type Bot struct {
	sim         *TestSim
	rng         *rand.Rand
	MistakeRate float64
	Mistakes    int
}

// NewBot creates a bot for ts. The seed drives mistake choices only.
func NewBot(ts *TestSim, seed int64, mistakeRate float64) *Bot {
	return &Bot{
		sim:         ts,
		rng:         rand.New(rand.NewSource(seed)), // #nosec G404 -- bot decisions
		MistakeRate: mistakeRate,
	}
}

// Play runs attempts until the session is won, no full sequence is left,
// or limit game time has passed (0 uses a default). It reports whether
// the session was won.
func (b *Bot) Play(limit time.Duration) bool {
	if limit <= 0 {
		limit = botTimeout
	}
	s := b.sim.Session
	start := s.Clock().Now()
	for !s.Won() && s.Clock().Now()-start < limit {
		if s.Phase() != PhaseReady {
			b.sim.Advance(simFrame)
			continue
		}
		chain := b.nextChain()
		if chain == nil {
			return false
		}
		if b.rng.Float64() < b.MistakeRate {
			b.Mistakes++
			b.mistake(chain)
		} else {
			b.sim.DragThrough(chain...)
		}
		b.sim.Up()
		b.sim.Advance(botThink)
	}
	return s.Won()
}

// nextChain picks the first chip type with enough live chips for a full
// sequence and orders them by nearest neighbour.
func (b *Bot) nextChain() []*Chip {
	goal := b.sim.Session.Matcher().Goal()
	byType := map[string][]*Chip{}
	var order []string
	for _, c := range b.sim.AliveChips() {
		if _, ok := byType[c.Frame]; !ok {
			order = append(order, c.Frame)
		}
		byType[c.Frame] = append(byType[c.Frame], c)
	}
	for _, frame := range order {
		if chips := byType[frame]; len(chips) >= goal {
			return b.nearestPath(chips)[:goal]
		}
	}
	return nil
}

func (b *Bot) nearestPath(chips []*Chip) []*Chip {
	rest := append([]*Chip(nil), chips...)
	path := []*Chip{rest[0]}
	rest = rest[1:]
	for len(rest) > 0 {
		lx, ly := b.sim.ChipCenter(path[len(path)-1])
		best, bestD := 0, math.Inf(1)
		for i, c := range rest {
			x, y := b.sim.ChipCenter(c)
			if d := dist(lx, ly, x, y); d < bestD {
				best, bestD = i, d
			}
		}
		path = append(path, rest[best])
		rest = append(rest[:best], rest[best+1:]...)
	}
	return path
}

// mistake starts on the chain's first chip and either runs into a chip of
// another type or leaves the drawing region.
func (b *Bot) mistake(chain []*Chip) {
	first := chain[0]
	var wrong []*Chip
	for _, c := range b.sim.AliveChips() {
		if c.Frame != first.Frame {
			wrong = append(wrong, c)
		}
	}
	if len(wrong) > 0 && b.rng.Intn(2) == 0 {
		b.sim.DragThrough(first, wrong[b.rng.Intn(len(wrong))])
		return
	}
	b.sim.DragThrough(first)
	x, y := b.sim.ChipCenter(first)
	r := b.sim.Session.Layout().Region
	b.sim.MoveTo(x, y, x, r.Y-10)
}
