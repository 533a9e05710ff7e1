package kinetype

import (
	"fmt"
	"time"
)

// indexedNode remembers when a solid node was last seen in the tree and the
// collision group it was indexed under.
type indexedNode struct {
	frame uint64
	group uint32
}

// Scene is the top-level object that owns the node tree, the spatial index,
// and the per-frame simulation step.
//
// Each Update runs in a fixed order: (1) script, tweens, OnUpdate behaviours,
// the update func and velocity integration move things; (2) the spatial index
// picks up added and removed solid nodes and re-sorts once; (3) Bounce nodes
// resolve overlaps against their candidates and collision events fire;
// (4) renderers read the final positions. A Scene is not safe for concurrent
// use; a renderer on another goroutine must serialise with Update.
type Scene struct {
	root     *Node
	index    *SpatialIndex
	physics  PhysicsConfig
	resp     Responder
	store    EntityStore
	debug    bool
	handlers handlerRegistry
	script   *ScriptRunner

	tweens     []*TweenGroup
	updateFunc func() error
	frame      uint64

	// Per-frame buffers
	solids     []*Node
	movers     []*Node
	candidates []Body
	indexed    map[*Node]indexedNode
}

// NewScene creates a new scene with a pre-created root container and the
// default physics config.
func NewScene() *Scene {
	s := &Scene{
		root:    NewContainer("root"),
		index:   NewSpatialIndex(),
		indexed: make(map[*Node]indexedNode),
	}
	s.physics = DefaultPhysicsConfig()
	s.resp = s.physics.Responder()
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Index returns the scene's spatial index. Bodies inserted by hand are queried
// like nodes but are never integrated or removed by the scene.
func (s *Scene) Index() *SpatialIndex {
	return s.index
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Physics returns the active physics config.
func (s *Scene) Physics() PhysicsConfig {
	return s.physics
}

// SetPhysics replaces the physics config after validating it.
func (s *Scene) SetPhysics(cfg PhysicsConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set physics: %w", err)
	}
	s.physics = cfg
	s.resp = cfg.Responder()
	return nil
}

// SetUpdateFunc sets a callback run once per Update during the behaviour
// phase, after tweens and OnUpdate callbacks. Returning an error aborts the
// frame before the index is touched.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// AddTween registers a tween group to be advanced every Update.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and per-frame
// index and collision stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// Update advances the simulation by one tick.
func (s *Scene) Update() error {
	dt := 1 / s.physics.TickRate
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// (1) behaviours and movement
	if s.script != nil {
		s.script.step(s)
	}
	s.updateTweens(float32(dt))
	runBehaviours(s.root, dt)
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.collect()
	s.integrate(dt)

	if s.debug {
		stats.behaviourTime = time.Since(t0)
		t0 = time.Now()
	}

	// (2) broad phase
	updateWorldTransform(s.root)
	s.syncIndex()
	s.index.Update()

	if s.debug {
		stats.indexTime = time.Since(t0)
		stats.bodies = s.index.Len()
		stats.swaps = s.index.Swaps()
		t0 = time.Now()
	}

	// (3) narrow phase and response
	stats.candidates, stats.contacts = s.resolveCollisions()

	if s.debug {
		stats.resolveTime = time.Since(t0)
		s.debugLog(stats)
	}
	s.frame++
	return nil
}

// Walk visits visible nodes depth-first in ZIndex order, starting at the root.
// Returning false from fn skips the node's subtree.
func (s *Scene) Walk(fn func(n *Node) bool) {
	walk(s.root, fn)
}

func walk(n *Node, fn func(*Node) bool) {
	if !n.Visible || !fn(n) {
		return
	}
	for _, c := range n.SortedChildren() {
		walk(c, fn)
	}
}

func (s *Scene) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// runBehaviours calls OnUpdate depth-first. Children are snapshotted so a
// behaviour may add or remove siblings.
func runBehaviours(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	if len(n.children) == 0 {
		return
	}
	children := append([]*Node(nil), n.children...)
	for _, c := range children {
		if c.Parent == n {
			runBehaviours(c, dt)
		}
	}
}

// collect gathers the solid and moving nodes currently attached to the tree.
func (s *Scene) collect() {
	s.solids = s.solids[:0]
	s.movers = s.movers[:0]
	s.collectFrom(s.root)
}

func (s *Scene) collectFrom(n *Node) {
	if n.disposed {
		return
	}
	if n.Solid && len(n.Shape) > 0 {
		n.solidIndex = len(s.solids)
		s.solids = append(s.solids, n)
	}
	if n.Velocity != nil {
		s.movers = append(s.movers, n)
	}
	for _, c := range n.children {
		s.collectFrom(c)
	}
}

func (s *Scene) integrate(dt float64) {
	g := s.physics.Gravity
	for _, n := range s.movers {
		v := n.Velocity
		v.X += g.X * dt
		v.Y += g.Y * dt
		if v.X != 0 || v.Y != 0 {
			n.Translate(Vec2{v.X * dt, v.Y * dt})
		}
	}
}

// syncIndex inserts newly attached solid nodes, re-inserts nodes whose
// collision group changed, and removes nodes that left the tree or were
// disposed.
func (s *Scene) syncIndex() {
	for _, n := range s.solids {
		group := n.CollisionGroup()
		prev, ok := s.indexed[n]
		switch {
		case !ok:
			s.index.Insert(n)
		case prev.group != group:
			s.index.Reindex(n)
		}
		s.indexed[n] = indexedNode{frame: s.frame + 1, group: group}
	}
	for n, in := range s.indexed {
		if in.frame != s.frame+1 {
			s.index.Remove(n)
			delete(s.indexed, n)
		}
	}
}

// resolveCollisions runs the responder for every Bounce node against its
// candidates. Pairs of two Bounce nodes from the tree are resolved once, from
// the earlier node's side. A movable candidate takes the A role against an
// immovable node, so a node without velocity is never pushed.
func (s *Scene) resolveCollisions() (candidates, contacts int) {
	for _, n := range s.solids {
		if !n.Bounce || n.disposed {
			continue
		}
		var err error
		s.candidates, err = s.index.AppendPotentialCollisions(s.candidates[:0], n)
		if err != nil {
			continue
		}
		for _, c := range s.candidates {
			other, ok := c.(Dynamic)
			if !ok {
				continue
			}
			if on, isNode := c.(*Node); isNode {
				if on.disposed || (on.Bounce && s.resolvedBefore(on, n)) {
					continue
				}
			}
			candidates++

			a, b := Dynamic(n), other
			if _, movable := n.LinearVelocity(); !movable {
				if _, otherMovable := other.LinearVelocity(); otherMovable {
					a, b = other, n
				}
			}
			va, _ := a.LinearVelocity()
			vb, _ := b.LinearVelocity()
			contact, applied := s.resp.Resolve(a, b)
			if !applied {
				continue
			}
			contacts++
			s.dispatchContact(contact, -va.Sub(vb).Dot(contact.Normal))
		}
	}
	return candidates, contacts
}

// resolvedBefore reports whether on comes before n in this frame's solid list.
// Nodes inserted into the index by hand are not in the list and never are.
func (s *Scene) resolvedBefore(on, n *Node) bool {
	i := on.solidIndex
	return i < n.solidIndex && i < len(s.solids) && s.solids[i] == on
}
