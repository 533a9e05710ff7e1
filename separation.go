package kinetype

// Separation computes minimum translation distances (MTD) between convex
// polygons with the separating axis theorem. The zero value reproduces the
// classic behavior, including its fallback for one-sided zero results.
type Separation struct {
	// TrustZero makes a zero result from either polygon's axes final. By
	// default a zero from one side is overridden by a non-zero result from the
	// other side, because axis generation can spuriously produce zero for
	// polygons that do overlap. The default can over-push polygons that are in
	// fact disjoint along one of A's axes only.
	TrustZero bool

	// ZeroTolerance is the length at or below which a push counts as zero.
	// 0 compares lengths exactly.
	ZeroTolerance float64
}

// MTD returns the MTD of a out of b using the default Separation.
func MTD(a, b Polygon) Vec2 {
	return Separation{}.MTD(a, b)
}

// MTD returns the smallest vector that, added to every point of a, makes a and
// b stop overlapping. The zero vector means no separation is needed: the
// polygons are disjoint, or neither polygon produced a usable axis.
func (s Separation) MTD(a, b Polygon) Vec2 {
	pushA, okA := pushOut(a, b)
	pushB, okB := pushOut(b, a)
	pushB = pushB.Neg()

	if !okA && !okB {
		return Vec2{}
	}

	zeroA := !okA || s.isZero(pushA)
	zeroB := !okB || s.isZero(pushB)

	switch {
	case zeroA && zeroB:
		return Vec2{}
	case zeroA || zeroB:
		if s.TrustZero {
			return Vec2{}
		}
		// Known workaround: distrust the zero side.
		if zeroA {
			return pushB
		}
		return pushA
	}

	if pushB.LenSq() < pushA.LenSq() {
		return pushB
	}
	return pushA
}

// IsZero reports whether v counts as "no separation" under s.
func (s Separation) IsZero(v Vec2) bool {
	return s.isZero(v)
}

func (s Separation) isZero(v Vec2) bool {
	if s.ZeroTolerance <= 0 {
		return v.Len() == 0
	}
	return v.Len() <= s.ZeroTolerance
}

// pushOut finds the smallest push that moves a out of b considering only a's
// edge normals. ok is false when every edge of a is degenerate. On an axis
// where the projections are disjoint the candidate is the zero vector, which
// then wins as the smallest.
func pushOut(a, b Polygon) (push Vec2, ok bool) {
	n := len(a)
	best := 0.0
	for i := 0; i < n; i++ {
		edge := a[(i+1)%n].Sub(a[i])
		axis, valid := edge.Perp().Normalize()
		if !valid {
			continue
		}

		ia := a.Project(axis)
		ib := b.Project(axis)

		var candidate Vec2
		if ia.Max >= ib.Min && ib.Max >= ia.Min {
			if ia.Max > ib.Max {
				candidate = axis.Scale(ib.Max - ia.Min)
			} else {
				candidate = axis.Scale(ib.Min - ia.Max)
			}
		}

		l := candidate.LenSq()
		if !ok || l < best {
			push = candidate
			best = l
			ok = true
		}
		if best == 0 {
			return push, true
		}
	}
	return push, ok
}
