package game

// Segment is one stroked line of the drawing path in canvas-local units.
type Segment struct {
	From, To Point
}

// DrawingTracker records the freehand path of the current attempt.
type DrawingTracker struct {
	points   []Point
	segments []Segment
	last     *Point
}

// AddPoint converts the screen point into canvas-local space through ct,
// strokes a segment from the previous point (or from itself on the first
// point) and appends it. It returns the local point.
func (dt *DrawingTracker) AddPoint(sx, sy float64, ct CanvasTransform) Point {
	p := ct.ToLocal(sx, sy)
	from := p
	if dt.last != nil {
		from = *dt.last
	}
	dt.segments = append(dt.segments, Segment{From: from, To: p})
	dt.points = append(dt.points, p)
	dt.last = &p
	return p
}

// Clear drops the path and the last point.
func (dt *DrawingTracker) Clear() {
	dt.points = dt.points[:0]
	dt.segments = dt.segments[:0]
	dt.last = nil
}

// Points returns the recorded path.
func (dt *DrawingTracker) Points() []Point {
	return dt.points
}

// Segments returns the stroked segments.
func (dt *DrawingTracker) Segments() []Segment {
	return dt.segments
}

// Last returns the most recent point, or nil when the path is empty.
func (dt *DrawingTracker) Last() *Point {
	return dt.last
}
