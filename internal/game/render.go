package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	pathWidth  = 7 // design units, before factor and canvas scale
	hoverWidth = 6
)

var (
	backgroundColor = color.RGBA{R: 14, G: 18, B: 30, A: 255}
	pathColor       = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	darkText        = color.RGBA{R: 26, G: 22, B: 18, A: 255}
	lightText       = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

func (g *Game) drawScene(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	sc := g.session.Scene()
	for _, name := range sc.Order {
		v := sc.Visuals[name]
		switch {
		case name == visCanvas:
			g.drawCanvas(screen, v)
		case v.Parent == visCanvas:
			// drawn with the canvas
		case name == visWall:
			if v.Alpha > 0 {
				b := screen.Bounds()
				vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), fade(v.Color, v.Alpha*0.6), false)
			}
		case name == visHand:
			g.drawHand(screen, v)
		case v.Kind == KindText:
			g.drawTextVisual(screen, v)
		default:
			g.drawBox(screen, v)
		}
	}
}

func (g *Game) drawCanvas(screen *ebiten.Image, canvas *Visual) {
	a := canvas.Alpha
	if a <= 0 {
		return
	}
	sc := g.session.Scene()
	ct := g.session.Transform()
	k := float32(ct.Length(1))

	if canvas.Color.A > 0 {
		pad := float32(12 * ct.Factor)
		b := canvas.Bounds()
		vector.FillRect(screen, float32(b.X)-pad, float32(b.Y)-pad, float32(b.W)+2*pad, float32(b.H)+2*pad, fade(canvas.Color, a), false)
	}
	back := sc.Visuals[visCanvasBack]
	bx, by := ct.ToScreen(Point{})
	vector.FillRect(screen, float32(bx), float32(by),
		float32(ct.Length(back.Data.Dimensions.W)), float32(ct.Length(back.Data.Dimensions.H)),
		fade(back.Color, a*back.Alpha), false)

	for _, seg := range g.session.Tracker().Segments() {
		x0, y0 := ct.ToScreen(seg.From)
		x1, y1 := ct.ToScreen(seg.To)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), pathWidth*k, fade(pathColor, a), true)
	}

	for _, c := range g.session.Chips() {
		cx, cy := ct.ToScreen(c.Visual.Local)
		if c.Visual.Alpha > 0 {
			vector.FillCircle(screen, float32(cx), float32(cy), float32(c.Visual.Radius)*k, fade(c.Visual.Color, a*c.Visual.Alpha), true)
		}
		if c.Hover.Alpha > 0 {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(c.Hover.Radius)*k, hoverWidth*k, fade(c.Hover.Color, a*c.Hover.Alpha), true)
		}
	}
}

func (g *Game) drawHand(screen *ebiten.Image, v *Visual) {
	if v.Alpha <= 0 {
		return
	}
	r := float32(v.W / 2)
	vector.FillCircle(screen, float32(v.X), float32(v.Y), r/3, fade(v.Color, v.Alpha), true)
	vector.StrokeCircle(screen, float32(v.X), float32(v.Y), r, float32(3*g.session.Layout().Factor), fade(v.Color, v.Alpha*0.8), true)
}

func (g *Game) drawBox(screen *ebiten.Image, v *Visual) {
	if v.Alpha <= 0 {
		return
	}
	b := v.Bounds()
	if v.Color.A > 0 {
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fade(v.Color, v.Alpha), false)
	}
	if v.Text != "" {
		g.drawText(screen, v.Text, v.FontSize, b.X+b.W/2, b.Y+b.H/2, v.Scale, v.Alpha, textOn(v.Color))
	}
}

func (g *Game) drawTextVisual(screen *ebiten.Image, v *Visual) {
	alpha := v.Alpha
	b := v.Bounds()
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	if p := g.session.Scene().Visual(v.Parent); p != nil {
		pb := p.Bounds()
		cx, cy = pb.X+pb.W/2, pb.Y+pb.H/2
		alpha *= p.Alpha
	}
	g.drawText(screen, v.Text, v.FontSize, cx, cy, v.Scale, alpha, v.Color)
}

func (g *Game) drawText(screen *ebiten.Image, s string, size, cx, cy, scale, alpha float64, clr color.RGBA) {
	if s == "" || scale <= 0 || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	face, err := g.fonts.face(size * g.session.Layout().Factor)
	if err != nil {
		g.status = "font: " + err.Error()
		return
	}
	text.Draw(screen, s, face, op)
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// textOn picks a readable text colour for a fill.
func textOn(bg color.RGBA) color.RGBA {
	if bg.A == 0 {
		return lightText
	}
	lum := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if lum > 150 {
		return darkText
	}
	return lightText
}
