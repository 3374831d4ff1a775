package game

import "testing"

func TestCanvasTransform_RoundTrip(t *testing.T) {
	transforms := []CanvasTransform{
		{Origin: Point{X: 84, Y: 410}, Factor: 1, Scale: 1},
		{Origin: Point{X: 42, Y: 205}, Back: Point{X: 10, Y: 20}, Factor: 0.5, Scale: 1},
		{Origin: Point{X: 720, Y: 99}, Back: Point{X: 5, Y: 5}, Factor: 1.3, Scale: 0.95},
	}
	screens := [][2]float64{{0, 0}, {84, 410}, {300.5, 777.25}, {-20, 1500}}
	for _, ct := range transforms {
		for _, s := range screens {
			p := ct.ToLocal(s[0], s[1])
			x, y := ct.ToScreen(p)
			if !approxEqual(x, s[0], 1e-9) || !approxEqual(y, s[1], 1e-9) {
				t.Errorf("%+v: (%.2f,%.2f) -> %+v -> (%.6f,%.6f)", ct, s[0], s[1], p, x, y)
			}
		}
	}
}

func TestCanvasTransform_ScalesLocalUnits(t *testing.T) {
	ct := CanvasTransform{Origin: Point{X: 100, Y: 200}, Factor: 2, Scale: 0.95}
	p := ct.ToLocal(100+2*0.95*50, 200)
	if !approxEqual(p.X, 50, 1e-9) || p.Y != 0 {
		t.Fatalf("expected (50,0), got %+v", p)
	}
	if !approxEqual(ct.Length(10), 19, 1e-9) {
		t.Fatalf("expected length 19, got %.3f", ct.Length(10))
	}
}

func TestCanvasTransform_ZeroFactorTreatedAsOne(t *testing.T) {
	ct := CanvasTransform{Origin: Point{X: 10, Y: 10}}
	p := ct.ToLocal(30, 40)
	if p.X != 20 || p.Y != 30 {
		t.Fatalf("expected (20,30), got %+v", p)
	}
}

func TestRect_ContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}
	for _, pt := range [][2]float64{{10, 10}, {109.9, 59.9}, {50, 30}} {
		if !r.Contains(pt[0], pt[1]) {
			t.Errorf("expected %v inside %+v", pt, r)
		}
	}
	for _, pt := range [][2]float64{{9.9, 10}, {110, 30}, {50, 60}, {110, 60}} {
		if r.Contains(pt[0], pt[1]) {
			t.Errorf("expected %v outside %+v", pt, r)
		}
	}
	if r.Empty() || !(Rect{W: 0, H: 5}).Empty() {
		t.Fatal("Empty reports wrong result")
	}
}

func TestDrawingTracker_Segments(t *testing.T) {
	ct := CanvasTransform{Origin: Point{X: 100, Y: 100}, Factor: 1, Scale: 1}
	var dt DrawingTracker
	if dt.Last() != nil {
		t.Fatal("new tracker should have no last point")
	}

	first := dt.AddPoint(110, 120, ct)
	if first != (Point{X: 10, Y: 20}) {
		t.Fatalf("expected local (10,20), got %+v", first)
	}
	segs := dt.Segments()
	if len(segs) != 1 || segs[0].From != segs[0].To {
		t.Fatalf("first segment should start at itself, got %+v", segs)
	}

	dt.AddPoint(150, 120, ct)
	segs = dt.Segments()
	if len(segs) != 2 || segs[1].From != first || segs[1].To != (Point{X: 50, Y: 20}) {
		t.Fatalf("second segment should join the first two points, got %+v", segs)
	}

	dt.Clear()
	if len(dt.Points()) != 0 || len(dt.Segments()) != 0 || dt.Last() != nil {
		t.Fatal("Clear left state behind")
	}
}
