package game

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// overlayLogLimit is how many session log entries the window keeps.
const overlayLogLimit = 200

// Game adapts a Session to ebiten: it feeds pointer events and frame time in,
// applies window resizes, and renders the scene.
type Game struct {
	session *Session
	cfg     Config

	pointer pointerInput
	events  []pointerEvent
	fonts   *fontCache

	// Layout only records the outside size; Update applies it so a resize
	// never lands in the middle of a pointer sequence.
	viewW, viewH       int
	pendingW, pendingH int

	overlay bool
	status  string // last overlay action result
}

// New creates the game window adapter for cfg.
func New(cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()
	deps := SessionDeps{
		Translator: NewCatalog().T,
		CTA:        OpenURL(cfg.CTAURL),
		Log:        NewSessionLog(overlayLogLimit),
	}
	if cfg.Sound {
		deps.Sounds = NewSoundBank()
	}
	fonts, err := newFontCache()
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	s, err := NewSession(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Game{
		session:  s,
		cfg:      cfg,
		fonts:    fonts,
		viewW:    cfg.Width,
		viewH:    cfg.Height,
		pendingW: cfg.Width,
		pendingH: cfg.Height,
		overlay:  cfg.Debug,
	}, nil
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

func (g *Game) Update() error {
	if g.pendingW != g.viewW || g.pendingH != g.viewH {
		g.viewW, g.viewH = g.pendingW, g.pendingH
		g.session.Resize(g.viewW, g.viewH)
	}

	g.handleKeys()

	g.events = g.pointer.poll(g.events[:0])
	for _, ev := range g.events {
		switch ev.kind {
		case pointerDown:
			g.session.PointerDown(ev.x, ev.y)
		case pointerMove:
			g.session.PointerMove(ev.x, ev.y)
		case pointerUp:
			g.session.PointerUp()
		}
	}

	g.session.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay = !g.overlay
		g.status = ""
	}
	if g.overlay && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		log := g.session.Log()
		if err := clipboard.WriteAll(log.Format()); err != nil {
			g.status = "copy failed: " + err.Error()
		} else {
			g.status = fmt.Sprintf("copied %d entries", len(log.Entries()))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	if g.overlay {
		g.drawOverlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
	}
	return g.pendingW, g.pendingH
}
