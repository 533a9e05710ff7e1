package kinetype

// Contact describes a collision response that was applied.
type Contact struct {
	A, B Dynamic
	// MTD is the full separation of A from B before it was split.
	MTD Vec2
	// Normal is the unit collision normal facing A (unit(MTD)).
	Normal Vec2
}

// Responder separates overlapping bodies and reflects their velocities with an
// elastic impulse. It holds no per-call state.
type Responder struct {
	// Elasticity scales the reflected velocity component along the normal:
	// 0 removes it (fully inelastic), 1 mirrors it (perfectly elastic).
	// Values above 1 add energy.
	Elasticity float64

	// AbsorbEnergy is accepted for configuration compatibility and has no
	// effect on the response.
	AbsorbEnergy float64

	// Separation configures the narrow phase.
	Separation Separation
}

// Resolve separates a from b and reflects their velocities. It reports false
// when nothing was applied: the bodies are in a parent/child relationship, or
// their outlines need no separation.
//
// When b is immovable (no velocity) a moves the full MTD and only a's velocity
// is reflected. Otherwise the MTD is split evenly and both reflect; this holds
// even when a itself is immovable, so an immovable a is moved by half. Callers
// pairing an immovable body with a movable one should pass the movable body as
// a, as Scene does.
func (r Responder) Resolve(a, b Dynamic) (Contact, bool) {
	if isAncestorBody(a, b) || isAncestorBody(b, a) {
		return Contact{}, false
	}

	mtd := r.Separation.MTD(a.Outline(), b.Outline())
	if r.Separation.isZero(mtd) {
		return Contact{}, false
	}

	c := Contact{A: a, B: b, MTD: mtd}
	c.Normal, _ = mtd.Normalize()

	if _, movable := b.LinearVelocity(); !movable {
		a.Translate(mtd)
		r.reflect(a, mtd)
		return c, true
	}

	half := mtd.Scale(0.5)
	a.Translate(half)
	b.Translate(half.Neg())
	r.reflect(a, mtd)
	r.reflect(b, mtd.Neg())
	return c, true
}

// reflect bounces d's velocity off a surface whose outward direction (facing d)
// is toward. Velocities already leaving the surface are left alone.
func (r Responder) reflect(d Dynamic, toward Vec2) {
	v, ok := d.LinearVelocity()
	if !ok {
		return
	}
	n, ok := toward.Normalize()
	if !ok {
		return
	}
	d.SetLinearVelocity(Reflect(v, n, r.Elasticity))
}

// Reflect returns v bounced off a surface with unit normal n:
//
//	v' = v - (1 + e)(n·v)n
//
// applied only when v points into the surface (n·v < 0, an angle above 90
// degrees). Otherwise v is returned unchanged.
func Reflect(v, n Vec2, elasticity float64) Vec2 {
	d := n.Dot(v)
	if d >= 0 {
		return v
	}
	return v.Sub(n.Scale((1 + elasticity) * d))
}
