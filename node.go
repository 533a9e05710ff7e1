package kinetype

import "sort"

// CollisionContext carries contact data to a node's OnCollide callback.
type CollisionContext struct {
	Node     *Node // the node receiving the callback
	Other    *Node // the node it collided with; nil if Other is not a *Node
	EntityID uint32
	UserData any
	MTD      Vec2 // translation that separated Node from Other
	Normal   Vec2 // unit normal facing Node
}

// nodeIDCounter is a plain counter (no atomic; kinetype is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// containers, texts, glyphs and shapes to avoid interface dispatch on the hot
// path; *Node implements Body and Dynamic.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	// Computed world state. worldVersion bumps on every recompute; children
	// remember the parent version they were built from.
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool
	worldVersion   uint64
	parentVersion  uint64

	// Visibility
	Alpha   float64
	Visible bool
	Color   Color
	ZIndex  int

	// Metadata
	UserData any
	EntityID uint32

	// Glyph fields (NodeTypeGlyph)
	Rune rune

	// Text fields (NodeTypeText)
	Text *TextBlock

	// Shape is the local-space convex outline. Glyphs get their box from the
	// face; shapes get the points passed to NewShape.
	Shape []Vec2

	// Physics. Solid nodes are tracked by the scene's spatial index. Bounce
	// nodes additionally resolve overlaps each frame. A nil Velocity marks the
	// node as immovable for collision response.
	Solid    bool
	Bounce   bool
	Velocity *Vec2

	// Per-node callbacks (nil by default; zero cost when unused)
	OnUpdate  func(dt float64)
	OnCollide func(CollisionContext)

	// Cached world outline, valid while outlineVersion == worldVersion.
	outline        Polygon
	bounds         Rect
	outlineVersion uint64
	outlineValid   bool

	// Internal
	solidIndex     int // position in the scene's solid list this frame
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no outline.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewShape creates a solid node with the given local convex outline.
func NewShape(name string, points []Vec2) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Solid: true}
	nodeDefaults(n)
	n.SetShape(points)
	return n
}

// NewGlyph creates a solid glyph node with a box outline in local space.
func NewGlyph(name string, r rune, box Rect) *Node {
	n := &Node{Name: name, Type: NodeTypeGlyph, Rune: r, Solid: true}
	nodeDefaults(n)
	n.SetShape(RectPolygon(box))
	return n
}

// SetShape replaces the local outline and invalidates the cached world outline.
func (n *Node) SetShape(points []Vec2) {
	n.Shape = append(n.Shape[:0], points...)
	n.outlineValid = false
}

// SetVelocity makes the node movable with the given world-space velocity.
func (n *Node) SetVelocity(vx, vy float64) {
	if n.Velocity == nil {
		n.Velocity = &Vec2{}
	}
	n.Velocity.X = vx
	n.Velocity.Y = vy
}

// --- Body / Dynamic ---

// Outline returns the node's shape in world space. The result is cached
// against the world transform version and rebuilt on demand, so repeated
// calls within a frame are cheap. The returned slice MUST NOT be mutated.
func (n *Node) Outline() Polygon {
	n.syncWorldTransform()
	if n.outlineValid && n.outlineVersion == n.worldVersion {
		return n.outline
	}
	n.outline = n.outline[:0]
	for _, p := range n.Shape {
		wx, wy := transformPoint(n.worldTransform, p.X, p.Y)
		n.outline = append(n.outline, Vec2{wx, wy})
	}
	if len(n.outline) > 0 {
		n.bounds = n.outline.Bounds()
	} else {
		wx, wy := transformPoint(n.worldTransform, 0, 0)
		n.bounds = Rect{X: wx, Y: wy}
	}
	n.outlineVersion = n.worldVersion
	n.outlineValid = true
	return n.outline
}

// Bounds returns the world-space bounding box of the node's outline. A node
// without a shape reports a zero-size box at its world origin.
func (n *Node) Bounds() Rect {
	n.Outline()
	return n.bounds
}

// CollisionGroup returns the owning text's ID for glyphs, so that letters of
// the same word never collide with each other, and 0 otherwise.
func (n *Node) CollisionGroup() uint32 {
	if n.Parent != nil && n.Parent.Type == NodeTypeText {
		return n.Parent.ID
	}
	return 0
}

// Translate moves the node by a world-space offset. The offset is converted
// into the parent's local space so rotated or scaled parents are honored.
func (n *Node) Translate(d Vec2) {
	if n.Parent != nil {
		n.Parent.syncWorldTransform()
		inv := invertAffine(n.Parent.worldTransform)
		d = Vec2{inv[0]*d.X + inv[2]*d.Y, inv[1]*d.X + inv[3]*d.Y}
	}
	n.X += d.X
	n.Y += d.Y
	n.transformDirty = true
}

// LinearVelocity returns the node's velocity; ok is false when Velocity is nil.
func (n *Node) LinearVelocity() (Vec2, bool) {
	if n.Velocity == nil {
		return Vec2{}, false
	}
	return *n.Velocity, true
}

// SetLinearVelocity replaces the velocity of a movable node. It is a no-op
// for immovable nodes; use SetVelocity to make a node movable.
func (n *Node) SetLinearVelocity(v Vec2) {
	if n.Velocity == nil {
		return
	}
	*n.Velocity = v
}

// ParentBody returns the parent as a Dynamic, or nil for a detached or root node.
func (n *Node) ParentBody() Dynamic {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("kinetype: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("kinetype: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	child.transformDirty = true
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("kinetype: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("kinetype: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("kinetype: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	child.transformDirty = true
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("kinetype: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	child.transformDirty = true
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("kinetype: child index out of range")
	}
	child := n.children[index]
	n.removeChildByPtr(child)
	child.Parent = nil
	child.transformDirty = true
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		child.transformDirty = true
	}
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindChild returns the first descendant (depth-first) with the given name,
// or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// SortedChildren returns the children ordered by ZIndex, ties keeping
// insertion order. Renderers draw in this order. The returned slice MUST NOT
// be mutated and is only valid until the next tree change.
func (n *Node) SortedChildren() []*Node {
	if n.childrenSorted && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. A scene drops disposed nodes
// from its spatial index on the next Update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Text = nil
	n.Velocity = nil
	n.UserData = nil
	n.OnUpdate = nil
	n.OnCollide = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childrenSorted = false
			return
		}
	}
}
