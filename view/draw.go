package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/kinetype"
)

// DrawOptions controls DrawScene.
type DrawOptions struct {
	// Face is the fallback face for glyphs of texts without a *TTFFace.
	Face *TTFFace
	// Outlines strokes the world outline of every solid node.
	Outlines bool
}

var outlineColor = color.RGBA{R: 0, G: 255, B: 128, A: 255}

// DrawScene draws every visible glyph and shape of scene onto dst in ZIndex
// order. It must not run concurrently with Scene.Update.
func DrawScene(dst *ebiten.Image, scene *kinetype.Scene, opts DrawOptions) {
	scene.Walk(func(n *kinetype.Node) bool {
		switch n.Type {
		case kinetype.NodeTypeGlyph:
			drawGlyph(dst, n, opts.Face)
		case kinetype.NodeTypeShape:
			drawShape(dst, n)
		}
		if opts.Outlines && n.Solid {
			strokeOutline(dst, n.Outline())
		}
		return true
	})
}

func drawGlyph(dst *ebiten.Image, n *kinetype.Node, fallback *TTFFace) {
	face := fallback
	if n.Parent != nil && n.Parent.Text != nil {
		if f, ok := n.Parent.Text.Face.(*TTFFace); ok {
			face = f
		}
	}
	if face == nil {
		drawShape(dst, n)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM = worldGeoM(n.WorldTransform())
	a := n.WorldAlpha() * n.Color.A
	op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
	text.Draw(dst, string(n.Rune), face.face, op)
}

func drawShape(dst *ebiten.Image, n *kinetype.Node) {
	verts, inds := buildPolygonFan(n.Outline(), n.Color, n.WorldAlpha())
	if verts == nil {
		return
	}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

func strokeOutline(dst *ebiten.Image, p kinetype.Polygon) {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, outlineColor, true)
	}
}

// worldGeoM converts a world affine matrix [a, b, c, d, tx, ty] to a GeoM.
func worldGeoM(t [6]float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

// buildPolygonFan generates vertices and indices for a fan-triangulated
// convex polygon filled with a flat premultiplied color.
// N vertices, 3*(N-2) indices.
func buildPolygonFan(points kinetype.Polygon, c kinetype.Color, alpha float64) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	a := float32(c.A * alpha)
	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		// Center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = float32(c.R) * a
		v.ColorG = float32(c.G) * a
		v.ColorB = float32(c.B) * a
		v.ColorA = a
	}

	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// --- White pixel singleton (no sync.Once; drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
