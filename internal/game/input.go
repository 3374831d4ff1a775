package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pointerEventKind int

const (
	pointerDown pointerEventKind = iota
	pointerMove
	pointerUp
)

type pointerEvent struct {
	kind pointerEventKind
	x, y float64
}

// pointerInput turns the first touch, or the left mouse button when no touch
// is active, into edge-triggered down/move/up events.
type pointerInput struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	lastX    int
	lastY    int
}

func (pi *pointerInput) poll(dst []pointerEvent) []pointerEvent {
	if pi.touching {
		if inpututil.IsTouchJustReleased(pi.touchID) {
			pi.touching = false
			return append(dst, pi.event(pointerUp, pi.lastX, pi.lastY))
		}
		x, y := ebiten.TouchPosition(pi.touchID)
		return pi.moved(dst, x, y)
	}
	if !pi.mouse {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			pi.touchID = ids[0]
			pi.touching = true
			x, y := ebiten.TouchPosition(ids[0])
			pi.lastX, pi.lastY = x, y
			return append(dst, pi.event(pointerDown, x, y))
		}
	}

	x, y := ebiten.CursorPosition()
	if pi.mouse {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			pi.mouse = false
			return append(dst, pi.event(pointerUp, x, y))
		}
		return pi.moved(dst, x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pi.mouse = true
		pi.lastX, pi.lastY = x, y
		return append(dst, pi.event(pointerDown, x, y))
	}
	return dst
}

func (pi *pointerInput) moved(dst []pointerEvent, x, y int) []pointerEvent {
	if x == pi.lastX && y == pi.lastY {
		return dst
	}
	pi.lastX, pi.lastY = x, y
	return append(dst, pi.event(pointerMove, x, y))
}

func (pi *pointerInput) event(kind pointerEventKind, x, y int) pointerEvent {
	return pointerEvent{kind: kind, x: float64(x), y: float64(y)}
}
