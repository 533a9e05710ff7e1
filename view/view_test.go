package view

import (
	"math"
	"testing"

	"github.com/phanxgames/kinetype"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBuildPolygonFan(t *testing.T) {
	p := kinetype.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: -5, Y: 5}}
	verts, inds := buildPolygonFan(p, kinetype.Color{R: 1, G: 0.5, B: 0, A: 1}, 0.5)
	if len(verts) != 5 {
		t.Fatalf("len(verts) = %d, want 5", len(verts))
	}
	if len(inds) != 9 {
		t.Fatalf("len(inds) = %d, want 9", len(inds))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	for i := range want {
		if inds[i] != want[i] {
			t.Errorf("inds[%d] = %d, want %d", i, inds[i], want[i])
		}
	}
	v := verts[1]
	if v.DstX != 10 || v.DstY != 0 {
		t.Errorf("verts[1] at (%v,%v), want (10,0)", v.DstX, v.DstY)
	}
	// Premultiplied by alpha 0.5.
	if v.ColorA != 0.5 || v.ColorR != 0.5 || v.ColorG != 0.25 {
		t.Errorf("vertex color = (%v,%v,%v,%v)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestBuildPolygonFanDegenerate(t *testing.T) {
	verts, inds := buildPolygonFan(kinetype.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, kinetype.ColorWhite, 1)
	if verts != nil || inds != nil {
		t.Error("fewer than 3 points should produce no geometry")
	}
}

func TestWorldGeoM(t *testing.T) {
	n := kinetype.NewContainer("n")
	n.SetPosition(100, 50)
	n.SetRotation(math.Pi / 2)

	m := worldGeoM(n.WorldTransform())
	x, y := m.Apply(10, 0)
	wx, wy := n.LocalToWorld(10, 0)
	if math.Abs(x-wx) > 1e-9 || math.Abs(y-wy) > 1e-9 {
		t.Errorf("GeoM.Apply = (%v,%v), want (%v,%v)", x, y, wx, wy)
	}
}

func TestTTFFaceGlyphs(t *testing.T) {
	face, err := LoadTTFFace(goregular.TTF, 24)
	if err != nil {
		t.Fatal(err)
	}
	if face.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v, want > 0", face.LineHeight())
	}

	box, adv, ok := face.Glyph('W')
	if !ok {
		t.Fatal("'W' should have a glyph")
	}
	if adv <= 0 || box.Width != adv || box.Height <= 0 {
		t.Errorf("Glyph('W') = %v, advance %v", box, adv)
	}
	_, advI, _ := face.Glyph('i')
	if advI >= adv {
		t.Errorf("advance('i') = %v, want less than advance('W') = %v", advI, adv)
	}
	if _, _, ok := face.Glyph('\n'); ok {
		t.Error("newline should not have a glyph")
	}
}

func TestTTFFaceLaysOutText(t *testing.T) {
	face, err := LoadTTFFace(goregular.TTF, 24)
	if err != nil {
		t.Fatal(err)
	}
	word := kinetype.NewText("w", "Wi", face)
	glyphs := word.Glyphs()
	if len(glyphs) != 2 {
		t.Fatalf("len(glyphs) = %d, want 2", len(glyphs))
	}
	_, adv, _ := face.Glyph('W')
	if math.Abs(glyphs[1].X-adv) > 1e-9 {
		t.Errorf("second glyph X = %v, want %v", glyphs[1].X, adv)
	}
}

func TestLoadTTFFaceInvalid(t *testing.T) {
	if _, err := LoadTTFFace([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestRunRejectsBadSize(t *testing.T) {
	if err := Run(kinetype.NewScene(), RunConfig{Width: 0, Height: 10}); err == nil {
		t.Error("expected error for zero width")
	}
}
