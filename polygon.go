package kinetype

import "math"

// Polygon is an ordered, implicitly closed list of vertices. Collision code
// assumes the polygon is convex; winding order does not matter.
type Polygon []Vec2

// Bounds returns the axis-aligned bounding box of the polygon.
// An empty polygon yields the zero Rect.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Project returns the range covered by the polygon along axis.
func (p Polygon) Project(axis Vec2) Interval {
	iv := Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range p {
		d := v.Dot(axis)
		if d < iv.Min {
			iv.Min = d
		}
		if d > iv.Max {
			iv.Max = d
		}
	}
	return iv
}

// Translate returns a copy of the polygon moved by d.
func (p Polygon) Translate(d Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// Contains reports whether (x, y) lies inside or on the polygon using a
// cross-product sign test. Polygons with fewer than 3 points contain nothing.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1, y1 := p[i].X, p[i].Y
		j := (i + 1) % n
		x2, y2 := p[j].X, p[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// RectPolygon returns the four corners of r, clockwise from the top-left
// in screen space.
func RectPolygon(r Rect) Polygon {
	return Polygon{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}
