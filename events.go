package kinetype

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, every applied collision is forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event CollisionEvent)
}

// CollisionEvent carries contact data for scene-level handlers and the ECS
// bridge. A and B are nil when the colliding bodies are not *Node.
type CollisionEvent struct {
	Type    EventType
	Frame   uint64
	A, B    *Node
	EntityA uint32
	EntityB uint32
	MTD     Vec2
	Normal  Vec2    // unit normal facing A
	Impact  float64 // closing speed along the normal before response
}

// --- Handler registry ---

type collisionHandler struct {
	id uint32
	fn func(CollisionEvent)
}

type handlerRegistry struct {
	collision []collisionHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.collision
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = collisionHandler{}
			h.reg.collision = s[:len(s)-1]
			return
		}
	}
}

// OnCollision registers a scene-level callback fired for every applied
// contact, after the nodes' own OnCollide callbacks.
func (s *Scene) OnCollision(fn func(CollisionEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.collision = append(s.handlers.collision, collisionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// dispatchContact fires node callbacks, scene handlers, and the entity store.
func (s *Scene) dispatchContact(c Contact, impact float64) {
	a, _ := c.A.(*Node)
	b, _ := c.B.(*Node)

	ev := CollisionEvent{
		Type:   EventCollision,
		Frame:  s.frame,
		A:      a,
		B:      b,
		MTD:    c.MTD,
		Normal: c.Normal,
		Impact: impact,
	}
	if a != nil {
		ev.EntityA = a.EntityID
		if a.OnCollide != nil {
			a.OnCollide(CollisionContext{
				Node: a, Other: b, EntityID: a.EntityID, UserData: a.UserData,
				MTD: c.MTD, Normal: c.Normal,
			})
		}
	}
	if b != nil {
		ev.EntityB = b.EntityID
		if b.OnCollide != nil {
			b.OnCollide(CollisionContext{
				Node: b, Other: a, EntityID: b.EntityID, UserData: b.UserData,
				MTD: c.MTD.Neg(), Normal: c.Normal.Neg(),
			})
		}
	}

	for _, h := range s.handlers.collision {
		h.fn(ev)
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}
