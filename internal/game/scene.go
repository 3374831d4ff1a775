package game

import (
	"errors"
	"fmt"
	"image/color"
)

// VisualKind tells the renderer how to draw a visual.
type VisualKind int

const (
	KindContainer VisualKind = iota
	KindSprite
	KindGraphics
	KindText
	KindChip
	KindHover
)

var visualKindNames = map[string]VisualKind{
	"container": KindContainer,
	"sprite":    KindSprite,
	"graphics":  KindGraphics,
	"text":      KindText,
	"chip":      KindChip,
	"hover":     KindHover,
}

// Anchor places a visual along each axis. At most one horizontal and one
// vertical field should be set; values are design units scaled by the UI factor.
type Anchor struct {
	Left    *float64 `json:"left,omitempty"`
	CenterX *float64 `json:"center-x,omitempty"`
	Right   *float64 `json:"right,omitempty"`
	Top     *float64 `json:"top,omitempty"`
	CenterY *float64 `json:"center-y,omitempty"`
	Bottom  *float64 `json:"bottom,omitempty"`
}

// Offsets holds the per-orientation anchors of a visual.
type Offsets struct {
	Portrait  Anchor `json:"portrait"`
	Landscape Anchor `json:"landscape"`
}

// VisualData is the layout side-channel attached to every visual.
type VisualData struct {
	Dimensions Size    `json:"dimensions"`
	Offset     Offsets `json:"offset"`
	Hover      string  `json:"hover,omitempty"`
}

// Visual is one named scene object. X/Y is the pivot point in screen pixels;
// canvas children (chips, hovers, canvasBack) use Local instead.
type Visual struct {
	Name     string
	Kind     VisualKind
	X, Y     float64
	W, H     float64
	Pivot    float64
	Alpha    float64
	Scale    float64
	Text     string
	FontSize float64
	Frame    string
	Parent   string
	Local    Point
	Radius   float64
	Color    color.RGBA
	Data     VisualData
}

// Bounds returns the visual's screen rectangle with the pivot applied.
func (v *Visual) Bounds() Rect {
	return Rect{X: v.X - v.W*v.Pivot, Y: v.Y - v.H*v.Pivot, W: v.W, H: v.H}
}

// CameraSettings is the fixed design viewport per orientation.
type CameraSettings struct {
	Portrait  Size `json:"portrait"`
	Landscape Size `json:"landscape"`
}

// Scene is the bundle of named visuals a SceneFactory produces.
type Scene struct {
	Level   string
	Camera  CameraSettings
	Visuals map[string]*Visual
	Order   []string // draw order
}

// Visual returns the named visual or nil.
func (sc *Scene) Visual(name string) *Visual {
	return sc.Visuals[name]
}

// Chips returns the chip visuals (those with a hover reference) in draw order.
func (sc *Scene) Chips() []*Visual {
	var out []*Visual
	for _, name := range sc.Order {
		v := sc.Visuals[name]
		if v.Data.Hover != "" {
			out = append(out, v)
		}
	}
	return out
}

// SceneFactory builds the visual objects of a level.
type SceneFactory interface {
	Build(level string, t Translator) (*Scene, error)
}

var (
	ErrUnknownLevel  = errors.New("unknown level")
	ErrMissingVisual = errors.New("missing visual")
	ErrNoChips       = errors.New("level has no chips")
)

// Names of the visuals the session drives directly.
const (
	visHand       = "hand"
	visLogo       = "logo"
	visCTA        = "cta"
	visScroll     = "scroll"
	visReadyGo    = "readyGo"
	visReady      = "ready"
	visDraw       = "draw"
	visWall       = "wall"
	visCanvas     = "canvas"
	visCanvasBack = "canvasBack"
)

var requiredVisuals = []string{
	visHand, visLogo, visCTA, visScroll, visReadyGo, visReady,
	visDraw, visWall, visCanvas, visCanvasBack,
}

// validate checks that sc carries everything a Session needs.
func (sc *Scene) validate() error {
	for _, name := range requiredVisuals {
		if sc.Visuals[name] == nil {
			return fmt.Errorf("level %s: %w %q", sc.Level, ErrMissingVisual, name)
		}
	}
	chips := sc.Chips()
	if len(chips) == 0 {
		return fmt.Errorf("level %s: %w", sc.Level, ErrNoChips)
	}
	for _, c := range chips {
		if sc.Visuals[c.Data.Hover] == nil {
			return fmt.Errorf("level %s: chip %s: %w %q", sc.Level, c.Name, ErrMissingVisual, c.Data.Hover)
		}
	}
	return nil
}

// Chip is a collectible token. ID is assigned in scene iteration order.
type Chip struct {
	ID           int
	Frame        string
	Alive        bool
	Over         bool
	InputEnabled bool
	Visual       *Visual
	Hover        *Visual

	highlight *Tween
}

// Key identifies the chip instance within an attempt.
func (c *Chip) Key() string {
	return fmt.Sprintf("%s-%d", c.Frame, c.ID)
}

// newChips wraps the scene's chip visuals.
func newChips(sc *Scene) []*Chip {
	visuals := sc.Chips()
	chips := make([]*Chip, 0, len(visuals))
	for id, v := range visuals {
		chips = append(chips, &Chip{
			ID:           id,
			Frame:        v.Frame,
			Alive:        true,
			InputEnabled: true,
			Visual:       v,
			Hover:        sc.Visuals[v.Data.Hover],
		})
	}
	return chips
}
