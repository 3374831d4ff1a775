package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCache hands out Go Regular faces per pixel size. Sizes are rounded so
// continuous resizing does not grow the cache without bound.
type fontCache struct {
	src   *opentype.Font
	faces map[int]text.Face
}

func newFontCache() (*fontCache, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	return &fontCache{src: ft, faces: map[int]text.Face{}}, nil
}

func (fc *fontCache) face(size float64) (text.Face, error) {
	px := int(math.Max(6, math.Round(size)))
	if f, ok := fc.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fc.src, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %dpx: %w", px, err)
	}
	face := text.NewGoXFace(f)
	fc.faces[px] = face
	return face, nil
}
