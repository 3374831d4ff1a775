package game

import (
	"embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

//go:embed levels/*.json
var levelFiles embed.FS

// hoverPad is how far a chip's highlight ring extends past the chip, in design units.
const hoverPad = 10

type levelFile struct {
	Camera  CameraSettings `json:"camera"`
	Visuals []visualDef    `json:"visuals"`
}

type visualDef struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Dimensions Size     `json:"dimensions"`
	Offset     Offsets  `json:"offset"`
	Pivot      float64  `json:"pivot"`
	Alpha      *float64 `json:"alpha"`
	Scale      *float64 `json:"scale"`
	Text       string   `json:"text"`
	FontSize   float64  `json:"fontSize"`
	Frame      string   `json:"frame"`
	Parent     string   `json:"parent"`
	Local      Point    `json:"local"`
	Radius     float64  `json:"radius"`
	Color      string   `json:"color"`
}

// LevelFactory builds scenes from the embedded level descriptors.
type LevelFactory struct {
	Locale string
	files  fs.FS
}

// NewLevelFactory returns a factory over the built-in levels.
func NewLevelFactory(locale string) *LevelFactory {
	return &LevelFactory{Locale: locale, files: levelFiles}
}

// Levels lists the level identifiers the factory knows, sorted.
func (lf *LevelFactory) Levels() []string {
	entries, err := fs.ReadDir(lf.files, "levels")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Build decodes the level descriptor and creates its visuals. Text visuals get
// their string from t; chips get a generated hover highlight.
func (lf *LevelFactory) Build(level string, t Translator) (*Scene, error) {
	data, err := fs.ReadFile(lf.files, path.Join("levels", level+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, level)
	}
	var lvl levelFile
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level %s: decode: %w", level, err)
	}
	if t == nil {
		t = identityTranslator
	}

	sc := &Scene{
		Level:   level,
		Camera:  lvl.Camera,
		Visuals: make(map[string]*Visual, len(lvl.Visuals)*2),
	}
	for _, def := range lvl.Visuals {
		v, err := lf.visual(def, t)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", level, err)
		}
		if _, dup := sc.Visuals[v.Name]; dup {
			return nil, fmt.Errorf("level %s: duplicate visual %q", level, v.Name)
		}
		sc.Visuals[v.Name] = v
		sc.Order = append(sc.Order, v.Name)

		if v.Kind == KindChip {
			hover := &Visual{
				Name:   v.Name + "Hover",
				Kind:   KindHover,
				Parent: v.Parent,
				Local:  v.Local,
				Radius: v.Radius + hoverPad,
				Alpha:  0,
				Scale:  1,
				Color:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
			}
			v.Data.Hover = hover.Name
			sc.Visuals[hover.Name] = hover
			sc.Order = append(sc.Order, hover.Name)
		}
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (lf *LevelFactory) visual(def visualDef, t Translator) (*Visual, error) {
	kind, ok := visualKindNames[def.Kind]
	if !ok {
		return nil, fmt.Errorf("visual %q: unknown kind %q", def.Name, def.Kind)
	}
	col, err := parseHexColor(def.Color)
	if err != nil {
		return nil, fmt.Errorf("visual %q: %w", def.Name, err)
	}
	v := &Visual{
		Name:     def.Name,
		Kind:     kind,
		Pivot:    def.Pivot,
		Alpha:    1,
		Scale:    1,
		FontSize: def.FontSize,
		Frame:    def.Frame,
		Parent:   def.Parent,
		Local:    def.Local,
		Radius:   def.Radius,
		Color:    col,
		Data: VisualData{
			Dimensions: def.Dimensions,
			Offset:     def.Offset,
		},
	}
	if def.Alpha != nil {
		v.Alpha = *def.Alpha
	}
	if def.Scale != nil {
		v.Scale = *def.Scale
	}
	if def.Text != "" {
		v.Text = t(def.Text, lf.Locale)
	}
	if kind == KindChip {
		v.Parent = visCanvas
		if v.Frame == "" {
			return nil, fmt.Errorf("visual %q: chip without frame", def.Name)
		}
	}
	return v, nil
}

// parseHexColor reads "#rrggbb" or "#rrggbbaa". Empty means fully transparent.
func parseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	a := uint8(n)
	c := color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: a}
	// color.RGBA is alpha-premultiplied.
	if a != 255 {
		c.R = uint8(uint32(c.R) * uint32(a) / 255)
		c.G = uint8(uint32(c.G) * uint32(a) / 255)
		c.B = uint8(uint32(c.B) * uint32(a) / 255)
	}
	return c, nil
}
