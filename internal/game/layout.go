package game

// managedVisuals are repositioned on every resize. The canvas is handled
// separately because of its orientation-dependent scale.
var managedVisuals = []string{visHand, visLogo, visCTA, visScroll, visReadyGo, visDraw, visWall}

const (
	landscapeCanvasScale = 0.95
	portraitCanvasScale  = 1.0
)

// Layout owns the UI factor, orientation and permitted drawing region.
type Layout struct {
	resizer ResizeCalculator

	Width       float64
	Height      float64
	Factor      float64
	Landscape   bool
	CanvasScale float64
	Region      Rect

	viewW, viewH int
	relocations  []*Tween // post-win moves, invalid after a resize
}

// NewLayout creates a layout using r (FitResizer when nil).
func NewLayout(r ResizeCalculator) *Layout {
	if r == nil {
		r = FitResizer{}
	}
	return &Layout{resizer: r, Factor: 1, CanvasScale: portraitCanvasScale}
}

// Viewport returns the last viewport size passed to Apply.
func (l *Layout) Viewport() (int, int) {
	return l.viewW, l.viewH
}

// Place computes a visual's pivot position and size from its layout data.
// It is a pure function of its arguments.
func Place(data VisualData, factor, width, height float64, landscape bool) (x, y, w, h float64) {
	a := data.Offset.Portrait
	if landscape {
		a = data.Offset.Landscape
	}
	x = axis(a.Left, a.CenterX, a.Right, width, factor)
	y = axis(a.Top, a.CenterY, a.Bottom, height, factor)
	return x, y, data.Dimensions.W * factor, data.Dimensions.H * factor
}

func axis(start, center, end *float64, extent, factor float64) float64 {
	switch {
	case start != nil:
		return *start * factor
	case center != nil:
		return extent/2 + *center*factor
	case end != nil:
		return extent - *end*factor
	}
	return 0
}

// Track registers post-win tweens so the next Apply can cancel them.
func (l *Layout) Track(tweens ...*Tween) {
	l.relocations = append(l.relocations, tweens...)
}

// Apply re-runs the resize calculator and repositions every managed visual.
// A zero width or height keeps the previous viewport.
func (l *Layout) Apply(sc *Scene, width, height int) {
	if width > 0 && height > 0 {
		l.viewW, l.viewH = width, height
	}
	res := l.resizer.Resize(l.viewW, l.viewH, sc.Camera)
	l.Width, l.Height = res.Width, res.Height
	l.Factor, l.Landscape = res.Factor, res.Landscape

	for _, tw := range l.relocations {
		tw.Stop()
	}
	l.relocations = l.relocations[:0]

	for _, name := range managedVisuals {
		l.adjust(sc.Visuals[name], sc.Visuals[name].Data)
	}

	canvas := sc.Visuals[visCanvas]
	if l.Landscape {
		l.CanvasScale = landscapeCanvasScale
		dims := canvas.Data.Dimensions
		land := canvas.Data.Offset.Landscape
		centerY := -dims.H * (l.CanvasScale / 2)
		l.adjust(canvas, VisualData{
			Dimensions: Size{W: dims.W * l.CanvasScale, H: dims.H * l.CanvasScale},
			Offset: Offsets{Landscape: Anchor{
				Left:    land.Left,
				CenterX: land.CenterX,
				Right:   land.Right,
				CenterY: &centerY,
			}},
		})
	} else {
		l.CanvasScale = portraitCanvasScale
		l.adjust(canvas, canvas.Data)
	}

	back := sc.Visuals[visCanvasBack]
	l.Region = Rect{
		X: canvas.X + back.Local.X*l.Factor,
		Y: canvas.Y + back.Local.Y*l.Factor,
		W: back.Data.Dimensions.W * l.Factor * l.CanvasScale,
		H: back.Data.Dimensions.H * l.Factor * l.CanvasScale,
	}
}

// Transform returns the live canvas transform for sc.
func (l *Layout) Transform(sc *Scene) CanvasTransform {
	canvas := sc.Visuals[visCanvas]
	return CanvasTransform{
		Origin: Point{X: canvas.X, Y: canvas.Y},
		Back:   sc.Visuals[visCanvasBack].Local,
		Factor: l.Factor,
		Scale:  l.CanvasScale,
	}
}

func (l *Layout) adjust(v *Visual, data VisualData) {
	v.X, v.Y, v.W, v.H = Place(data, l.Factor, l.Width, l.Height, l.Landscape)
}
