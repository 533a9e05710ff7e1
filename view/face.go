package view

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/kinetype"
)

// TTFFace wraps Ebitengine's text/v2 as a kinetype.GlyphFace, so NewText lays
// out glyph boxes from real font metrics and DrawScene draws them with the
// same face.
type TTFFace struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFace loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFace(ttfData []byte, size float64) (*TTFFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("view: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFace{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// Glyph implements kinetype.GlyphFace. The box spans the rune's advance and
// the font's ascent plus descent.
func (f *TTFFace) Glyph(r rune) (kinetype.Rect, float64, bool) {
	if !unicode.IsPrint(r) {
		return kinetype.Rect{}, 0, false
	}
	w, _ := text.Measure(string(r), f.face, f.lh)
	m := f.face.Metrics()
	return kinetype.Rect{Width: w, Height: m.HAscent + m.HDescent}, w, true
}

// LineHeight implements kinetype.GlyphFace.
func (f *TTFFace) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFace) Face() *text.GoTextFace {
	return f.face
}
