// Package kinetype is a retained-mode kinetic typography toolkit: every glyph
// is a scene-graph node that can move, tween, and collide with other glyphs.
//
// # Quick start
//
//	scene := kinetype.NewScene()
//	word := kinetype.NewText("hello", "hello", kinetype.MonoFace{CellW: 8, CellH: 12})
//	scene.Root().AddChild(word)
//	for _, g := range word.Glyphs() {
//		g.SetVelocity(0, 40)
//		g.Bounce = true
//	}
//	for {
//		scene.Update()
//		// draw with kinetype/view (Ebitengine) or kinetype/term (tcell)
//	}
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root].
// Children inherit their parent's transform and alpha. [NewText] creates a
// text node with one glyph child per visible rune; [NewShape] creates a free
// convex outline such as a wall.
//
// # Collision
//
// Solid nodes are tracked by a [SpatialIndex], an incremental sweep-and-prune
// broad phase that re-sorts box edges with insertion sort once per frame.
// Bounce nodes resolve overlaps with a [Responder], which separates outlines
// using the separating axis theorem ([Separation]) and reflects velocities
// with an elastic impulse. Glyphs of the same text share a collision group and
// never collide with each other.
//
// Applied contacts are reported through [Node.OnCollide], [Scene.OnCollision],
// and an optional [EntityStore] (see kinetype/ecs for a Donburi adapter).
//
// # Tweens
//
// Tweens are provided by [gween]; see [TweenPosition] and [Scene.AddTween].
//
// [gween]: https://github.com/tanema/gween
package kinetype
