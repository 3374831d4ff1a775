package game

import "math"

// ResizeResult is what a ResizeCalculator reports for a viewport.
type ResizeResult struct {
	Width     float64
	Height    float64
	Factor    float64 // UI scale from design units to pixels
	Landscape bool
}

// ResizeCalculator turns a viewport size into effective dimensions, a UI
// factor and an orientation. Implementations must be pure.
type ResizeCalculator interface {
	Resize(width, height int, cam CameraSettings) ResizeResult
}

// FitResizer fits the orientation's design viewport inside the window.
type FitResizer struct{}

// Resize implements ResizeCalculator.
func (FitResizer) Resize(width, height int, cam CameraSettings) ResizeResult {
	w := math.Max(float64(width), 1)
	h := math.Max(float64(height), 1)
	landscape := w > h
	design := cam.Portrait
	if landscape {
		design = cam.Landscape
	}
	if design.W <= 0 || design.H <= 0 {
		return ResizeResult{Width: w, Height: h, Factor: 1, Landscape: landscape}
	}
	return ResizeResult{
		Width:     w,
		Height:    h,
		Factor:    math.Min(w/design.W, h/design.H),
		Landscape: landscape,
	}
}
