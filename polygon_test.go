package kinetype

import (
	"math"
	"testing"
)

func TestPolygonBounds(t *testing.T) {
	p := Polygon{{1, 5}, {-3, 2}, {4, -1}}
	r := p.Bounds()
	want := Rect{X: -3, Y: -1, Width: 7, Height: 6}
	if r != want {
		t.Errorf("Bounds = %v, want %v", r, want)
	}
	if got := (Polygon{}).Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds = %v, want zero", got)
	}
}

func TestPolygonProject(t *testing.T) {
	p := RectPolygon(Rect{X: 2, Y: 3, Width: 4, Height: 5})
	iv := p.Project(Vec2{1, 0})
	assertNear(t, "x.Min", iv.Min, 2)
	assertNear(t, "x.Max", iv.Max, 6)

	iv = p.Project(Vec2{0, -1})
	assertNear(t, "-y.Min", iv.Min, -8)
	assertNear(t, "-y.Max", iv.Max, -3)

	d := 1 / math.Sqrt2
	iv = RectPolygon(Rect{Width: 1, Height: 1}).Project(Vec2{d, d})
	assertNear(t, "diag.Min", iv.Min, 0)
	assertNear(t, "diag.Max", iv.Max, math.Sqrt2)
}

func TestPolygonTranslateCopies(t *testing.T) {
	p := Polygon{{0, 0}, {1, 0}, {0, 1}}
	q := p.Translate(Vec2{10, 20})
	if q[1] != (Vec2{11, 20}) {
		t.Errorf("q[1] = %v, want (11,20)", q[1])
	}
	if p[1] != (Vec2{1, 0}) {
		t.Error("Translate should not modify the receiver")
	}
}

func TestPolygonContains(t *testing.T) {
	tri := Polygon{{0, 0}, {10, 0}, {0, 10}}
	tests := []struct {
		x, y float64
		want bool
	}{
		{1, 1, true},
		{0, 0, true},  // vertex
		{5, 0, true},  // edge
		{6, 6, false}, // past the hypotenuse
		{-1, 1, false},
	}
	for _, tt := range tests {
		if got := tri.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	// Winding order does not matter.
	rev := Polygon{{0, 10}, {10, 0}, {0, 0}}
	if !rev.Contains(1, 1) {
		t.Error("reversed triangle should contain (1,1)")
	}
	if (Polygon{{0, 0}, {1, 1}}).Contains(0.5, 0.5) {
		t.Error("a two-point polygon contains nothing")
	}
}

func TestIntervalOverlapsStrict(t *testing.T) {
	a := Interval{0, 10}
	if !a.Overlaps(Interval{5, 15}) {
		t.Error("[0,10] and [5,15] should overlap")
	}
	if a.Overlaps(Interval{10, 20}) {
		t.Error("touching intervals should not overlap")
	}
	if a.Overlaps(Interval{11, 20}) {
		t.Error("disjoint intervals should not overlap")
	}
	if !a.Overlaps(Interval{2, 3}) {
		t.Error("contained interval should overlap")
	}
}
