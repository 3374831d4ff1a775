package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestLevelFactory_Levels(t *testing.T) {
	got := NewLevelFactory("en").Levels()
	want := []string{"practice", "st0068"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLevelFactory_BuildsChipsWithHovers(t *testing.T) {
	sc := buildScene(t, "st0068")
	chips := sc.Chips()
	if len(chips) != 9 {
		t.Fatalf("expected 9 chips, got %d", len(chips))
	}
	counts := map[string]int{}
	for _, c := range chips {
		counts[c.Frame]++
		if c.Parent != visCanvas {
			t.Errorf("chip %s should belong to the canvas, parent=%q", c.Name, c.Parent)
		}
		h := sc.Visuals[c.Data.Hover]
		if h == nil || h.Kind != KindHover {
			t.Fatalf("chip %s has no hover visual", c.Name)
		}
		if h.Alpha != 0 || h.Radius != c.Radius+hoverPad || h.Local != c.Local {
			t.Errorf("hover %s: alpha=%.1f radius=%.0f local=%+v", h.Name, h.Alpha, h.Radius, h.Local)
		}
	}
	for _, f := range []string{"ruby", "emerald", "sapphire"} {
		if counts[f] != 3 {
			t.Errorf("expected 3 %s chips, got %d", f, counts[f])
		}
	}
}

func TestLevelFactory_TranslatesText(t *testing.T) {
	sc, err := NewLevelFactory("de").Build("st0068", NewCatalog().T)
	if err != nil {
		t.Fatal(err)
	}
	if got := sc.Visuals[visReady].Text; got != "Bereit?" {
		t.Fatalf("expected German prompt, got %q", got)
	}
	if got := sc.Visuals[visLogo].Text; got != "Chip Trail" {
		t.Fatalf("expected English fallback for the logo, got %q", got)
	}
}

func TestLevelFactory_UnknownLevel(t *testing.T) {
	_, err := NewLevelFactory("en").Build("missing", nil)
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestLevelFactory_Defaults(t *testing.T) {
	sc := buildScene(t, "st0068")
	if v := sc.Visuals[visCanvas]; v.Alpha != 1 || v.Scale != 1 {
		t.Fatalf("expected default alpha/scale 1, got %.1f/%.1f", v.Alpha, v.Scale)
	}
	if v := sc.Visuals[visReady]; v.Scale != 0 {
		t.Fatalf("expected ready prompt to start unscaled, got %.1f", v.Scale)
	}
	if v := sc.Visuals[visWall]; v.Alpha != 0 {
		t.Fatalf("expected wall hidden, got %.1f", v.Alpha)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ff8000")
	if err != nil || c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Fatalf("unexpected %+v %v", c, err)
	}
	c, err = parseHexColor("#ff000080")
	if err != nil || c.A != 128 || c.R != 128 {
		t.Fatalf("expected premultiplied half red, got %+v %v", c, err)
	}
	if c, _ := parseHexColor(""); c.A != 0 {
		t.Fatal("empty colour should be transparent")
	}
	if _, err := parseHexColor("#12"); err == nil {
		t.Fatal("expected an error for a short colour")
	}
}
