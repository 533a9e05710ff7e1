package kinetype

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default glyph tint.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Interval is a closed [Min, Max] range, typically a polygon projected onto
// an axis.
type Interval struct {
	Min, Max float64
}

// Overlaps reports whether the two intervals share interior. Intervals that
// only touch at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Min < other.Max && other.Min < i.Max
}

// NodeType distinguishes the role of a Node in the scene.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no outline of its own
	NodeTypeText                      // glyph group; children are Glyph nodes
	NodeTypeGlyph                     // a single rune with a box outline
	NodeTypeShape                     // free-standing convex outline (walls, paddles)
)

// EventType identifies a kind of scene event forwarded to an EntityStore.
type EventType uint8

const (
	EventCollision EventType = iota // fires once per resolved contact
)
