package kinetype

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// GlyphFace supplies per-rune metrics for breaking text into glyph nodes.
type GlyphFace interface {
	// Glyph returns the rune's box relative to the pen position (top of the
	// line) and the pen advance. ok is false for runes the face cannot show.
	Glyph(r rune) (box Rect, advance float64, ok bool)
	LineHeight() float64
}

// MonoFace is a fixed-cell face: every printable rune occupies one
// CellW x CellH box. Terminal rendering uses a 1x1 face so that world units
// map to character cells.
type MonoFace struct {
	CellW, CellH float64
}

// Glyph implements GlyphFace.
func (f MonoFace) Glyph(r rune) (Rect, float64, bool) {
	if !unicode.IsPrint(r) {
		return Rect{}, 0, false
	}
	return Rect{Width: f.CellW, Height: f.CellH}, f.CellW, true
}

// LineHeight implements GlyphFace.
func (f MonoFace) LineHeight() float64 {
	return f.CellH
}

// TextBlock holds the content of a Text node.
type TextBlock struct {
	Content string
	Face    GlyphFace

	measuredW float64
	measuredH float64
}

// Size returns the laid-out width and height of the text.
func (tb *TextBlock) Size() (w, h float64) {
	return tb.measuredW, tb.measuredH
}

// NewText creates a Text node whose children are one solid Glyph node per
// visible rune. The Text node is the glyphs' collision group, so letters of
// the same text do not collide with each other.
func NewText(name string, content string, face GlyphFace) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Text: &TextBlock{Face: face},
	}
	nodeDefaults(n)
	n.SetText(content)
	return n
}

// SetText replaces the content and rebuilds the glyph children. Previous
// glyph children are disposed.
func (n *Node) SetText(content string) {
	if n.Text == nil {
		panic("kinetype: SetText on a non-text node")
	}
	kept := n.children[:0]
	for _, c := range n.children {
		if c.Type == NodeTypeGlyph {
			c.Parent = nil
			c.dispose()
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	n.childrenSorted = false
	n.Text.Content = content
	n.layoutGlyphs()
}

// layoutGlyphs places glyphs left to right; '\n' starts a new line and runes
// without a box (spaces, unknown runes) only advance the pen.
func (n *Node) layoutGlyphs() {
	tb := n.Text
	tb.measuredW, tb.measuredH = 0, 0
	if tb.Face == nil {
		return
	}
	lh := tb.Face.LineHeight()

	var penX, penY float64
	index := 0
	for i := 0; i < len(tb.Content); {
		r, size := utf8.DecodeRuneInString(tb.Content[i:])
		i += size

		if r == '\n' {
			penX = 0
			penY += lh
			continue
		}
		box, advance, ok := tb.Face.Glyph(r)
		if ok && !unicode.IsSpace(r) {
			g := NewGlyph(n.Name+"/"+strconv.Itoa(index), r, Rect{Width: box.Width, Height: box.Height})
			g.X = penX + box.X
			g.Y = penY + box.Y
			g.Color = n.Color
			n.AddChild(g)
			index++
		}
		penX += advance
		if penX > tb.measuredW {
			tb.measuredW = penX
		}
	}
	if len(tb.Content) > 0 {
		tb.measuredH = penY + lh
	}
}

// Glyphs returns the glyph children of a text node in content order.
func (n *Node) Glyphs() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c.Type == NodeTypeGlyph {
			out = append(out, c)
		}
	}
	return out
}
