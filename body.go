package kinetype

// Body is anything the spatial index can track: an entity with a world-space
// convex outline and an axis-aligned box derived from it.
//
// The index holds Bodies by identity and never owns them. Implementations
// must be comparable (pointer receivers are the norm).
type Body interface {
	// Bounds returns the current world-space bounding box. The index reads
	// it live on every comparison, so it should be cheap after the first
	// call in a frame.
	Bounds() Rect

	// Outline returns the current world-space convex outline.
	Outline() Polygon

	// CollisionGroup returns the id of the rigid group the body belongs to,
	// or 0 when ungrouped. Bodies with the same non-zero group never collide.
	CollisionGroup() uint32
}

// Dynamic is a Body that collision response can move.
type Dynamic interface {
	Body

	// Translate moves the body by d in world space.
	Translate(d Vec2)

	// LinearVelocity returns the body's velocity. ok is false for immovable
	// bodies.
	LinearVelocity() (v Vec2, ok bool)

	// SetLinearVelocity replaces the velocity. Immovable bodies ignore it.
	SetLinearVelocity(v Vec2)

	// ParentBody returns the enclosing Dynamic, or nil at the top of the tree.
	ParentBody() Dynamic
}

// sameGroup reports whether a and b are the same body or belong to the same
// non-zero collision group.
func sameGroup(a, b Body) bool {
	if a == b {
		return true
	}
	ga := a.CollisionGroup()
	return ga != 0 && ga == b.CollisionGroup()
}

// isAncestorBody reports whether candidate encloses d somewhere up its
// parent chain.
func isAncestorBody(candidate, d Dynamic) bool {
	for p := d.ParentBody(); p != nil; p = p.ParentBody() {
		if p == candidate {
			return true
		}
	}
	return false
}
