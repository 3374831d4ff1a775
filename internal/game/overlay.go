package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	overlayWidth      = 420
	overlayLineHeight = 14
	overlayMaxLines   = 24
)

// drawOverlay renders the debug panel: a state line and the newest session
// log entries, newest at the bottom. Toggled with F1.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	s := g.session
	entries := s.Log().Recent(overlayMaxLines)
	panelH := 16 + overlayLineHeight*(len(entries)+3) + 6

	vector.FillRect(screen, 0, 0, overlayWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 16, A: 232}, false)
	vector.StrokeRect(screen, 0, 0, overlayWidth, float32(panelH), 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
	vector.FillRect(screen, 0, 0, overlayWidth, 16, color.RGBA{R: 24, G: 30, B: 44, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "SESSION LOG  [F1] hide  [C] copy", 8, 1)

	l := s.Layout()
	orient := "portrait"
	if l.Landscape {
		orient = "landscape"
	}
	st := s.Stats()
	state := fmt.Sprintf("%s %s  alive=%d  f=%.3f %s  tries=%d ok=%d fail=%d",
		s.Config().Level, s.Phase(), s.AliveCount(), l.Factor, orient, st.Attempts, st.Successes, st.Failures)
	ebitenutil.DebugPrintAt(screen, state, 8, 18)
	engine := fmt.Sprintf("tick=%d  timers=%d  tweens=%d", s.Tick(), s.Clock().Pending(), s.Tweens().Running())
	ebitenutil.DebugPrintAt(screen, engine, 8, 18+overlayLineHeight)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 18+2*overlayLineHeight)
	}

	y := 18 + 3*overlayLineHeight
	for i, e := range entries {
		if i == len(entries)-1 {
			vector.FillRect(screen, 2, float32(y), overlayWidth-4, overlayLineHeight, color.RGBA{R: 36, G: 44, B: 64, A: 160}, false)
		}
		ebitenutil.DebugPrintAt(screen, e.String(), 8, y)
		y += overlayLineHeight
	}
}
