package kinetype

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotIndexed is returned when a query names a body that was never inserted
// into the SpatialIndex (or was already removed). It signals a lifecycle bug
// in the caller, not a transient condition.
var ErrNotIndexed = errors.New("kinetype: body not found in index")

// Axis selects one of the two sweep axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// sapEdge is one end of a body's box on one axis. Its coordinate is not
// cached: it is read live from the owner's bounds, so the lists drift out of
// order as bodies move and Update restores them.
type sapEdge struct {
	owner *sapEntry
	high  bool
}

func (e sapEdge) value(axis Axis) float64 {
	return boundEdge(e.owner.body.Bounds(), axis, e.high)
}

// sapEntry is the index's bookkeeping for one body.
type sapEntry struct {
	body    Body
	seq     uint64
	overlap [2]map[*sapEntry]struct{}
}

// SpatialIndex is an incremental sweep-and-prune broad phase. It keeps the
// box edges of every indexed body in two lists (one per axis) and, for every
// body, the set of bodies it overlaps on each axis. Update re-sorts the lists
// with insertion sort; each adjacent swap is the event that toggles an
// overlap, so with small per-frame movement a frame costs close to O(n).
//
// Queries reflect positions as of the last Update. SpatialIndex is not safe
// for concurrent use.
type SpatialIndex struct {
	lists   [2][]sapEdge
	entries map[Body]*sapEntry
	order   []*sapEntry // insertion order, for deterministic iteration
	nextSeq uint64
	swaps   int
	scratch []*sapEntry
}

// NewSpatialIndex creates an empty index.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{entries: make(map[Body]*sapEntry)}
}

// Len returns the number of indexed bodies.
func (s *SpatialIndex) Len() int {
	return len(s.entries)
}

// Contains reports whether b is indexed.
func (s *SpatialIndex) Contains(b Body) bool {
	_, ok := s.entries[b]
	return ok
}

// Swaps returns the number of adjacent edge swaps performed by the most
// recent Update.
func (s *SpatialIndex) Swaps() int {
	return s.swaps
}

// Insert adds b using its current bounds. Inserting an indexed body is a no-op.
//
// The high edge of each axis goes to its binary-searched slot; the low edge is
// appended at the end of the list, out of order on purpose. The next Update
// then sweeps the low edge down past every edge above it, which is exactly the
// set of swaps needed to discover every body b overlaps on that axis.
func (s *SpatialIndex) Insert(b Body) {
	if _, ok := s.entries[b]; ok {
		return
	}
	e := &sapEntry{
		body: b,
		seq:  s.nextSeq,
		overlap: [2]map[*sapEntry]struct{}{
			make(map[*sapEntry]struct{}),
			make(map[*sapEntry]struct{}),
		},
	}
	s.nextSeq++
	s.entries[b] = e
	s.order = append(s.order, e)

	r := b.Bounds()
	for axis := AxisX; axis <= AxisY; axis++ {
		list := s.lists[axis]
		hi := boundEdge(r, axis, true)
		i := sort.Search(len(list), func(i int) bool {
			return edgeLess(hi, true, list[i].value(axis), list[i].high)
		})
		list = append(list, sapEdge{})
		copy(list[i+1:], list[i:])
		list[i] = sapEdge{owner: e, high: true}
		list = append(list, sapEdge{owner: e, high: false})
		s.lists[axis] = list
	}
}

// Remove drops b's edges and removes b from every other body's overlap sets.
// Bounds are not read, so it is safe to call after the body's geometry has
// become invalid. Removing a body that is not indexed is a no-op.
func (s *SpatialIndex) Remove(b Body) {
	e, ok := s.entries[b]
	if !ok {
		return
	}
	for axis := AxisX; axis <= AxisY; axis++ {
		s.lists[axis] = removeEdges(s.lists[axis], e)
		for other := range e.overlap[axis] {
			delete(other.overlap[axis], e)
		}
		e.overlap[axis] = nil
	}
	delete(s.entries, b)
	for i, o := range s.order {
		if o == e {
			copy(s.order[i:], s.order[i+1:])
			s.order[len(s.order)-1] = nil
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
}

// Reindex removes and re-inserts b. Call it after b changes collision group,
// since pairs inside a group are never tracked.
func (s *SpatialIndex) Reindex(b Body) {
	s.Remove(b)
	s.Insert(b)
}

// Update re-sorts both edge lists and refreshes the overlap sets. Call it
// exactly once per frame, after bodies have moved and before collisions are
// queried.
func (s *SpatialIndex) Update() {
	s.swaps = 0
	s.sortAxis(AxisX)
	s.sortAxis(AxisY)
}

// sortAxis is a plain insertion sort over the edge list. Lists are nearly
// sorted from the previous frame, so this is close to linear; do not replace
// it with a general-purpose sort.
func (s *SpatialIndex) sortAxis(axis Axis) {
	list := s.lists[axis]
	for i := 1; i < len(list); i++ {
		key := list[i]
		kv := key.value(axis)
		j := i - 1
		for ; j >= 0; j-- {
			other := list[j]
			if !edgeLess(kv, key.high, other.value(axis), other.high) {
				break
			}
			list[j+1] = other
			s.swapped(axis, key.owner, other.owner)
		}
		list[j+1] = key
	}
}

// swapped recomputes the overlap of two owners on axis after one of their
// edges passed the other. Edges of the same body or group are skipped:
// bookkeeping them would put a body in its own overlap set.
func (s *SpatialIndex) swapped(axis Axis, a, b *sapEntry) {
	s.swaps++
	if sameGroup(a.body, b.body) {
		return
	}
	if boundSpan(a.body.Bounds(), axis).Overlaps(boundSpan(b.body.Bounds(), axis)) {
		a.overlap[axis][b] = struct{}{}
		b.overlap[axis][a] = struct{}{}
	} else {
		delete(a.overlap[axis], b)
		delete(b.overlap[axis], a)
	}
}

// PotentialCollisions returns the bodies whose boxes overlap b's on both axes
// as of the last Update, excluding bodies in b's collision group, in insertion
// order. It fails with ErrNotIndexed if b was never inserted. An indexed body
// with no overlaps yields an empty result and a nil error.
func (s *SpatialIndex) PotentialCollisions(b Body) ([]Body, error) {
	return s.AppendPotentialCollisions(nil, b)
}

// AppendPotentialCollisions is like PotentialCollisions but appends to dst,
// letting per-frame callers reuse a buffer.
func (s *SpatialIndex) AppendPotentialCollisions(dst []Body, b Body) ([]Body, error) {
	e, ok := s.entries[b]
	if !ok {
		return dst, fmt.Errorf("%w (%T)", ErrNotIndexed, b)
	}
	s.scratch = e.collect(s.scratch[:0], 0)
	for _, o := range s.scratch {
		dst = append(dst, o.body)
	}
	return dst, nil
}

// Pairs calls fn once for every unordered pair of bodies whose boxes overlap
// on both axes, skipping pairs in the same collision group. Pairs are visited
// in insertion order of the first body, then of the second. fn may move
// bodies; the overlap sets are not refreshed until the next Update. fn may
// also remove bodies, and removed bodies are not passed to later calls.
func (s *SpatialIndex) Pairs(fn func(a, b Body)) {
	var buf []*sapEntry
	order := append([]*sapEntry(nil), s.order...)
	for _, e := range order {
		if e.overlap[AxisX] == nil {
			continue // removed by fn
		}
		buf = e.collect(buf[:0], e.seq+1)
		for _, o := range buf {
			if e.overlap[AxisX] == nil {
				break
			}
			if o.overlap[AxisX] == nil {
				continue
			}
			fn(e.body, o.body)
		}
	}
}

// Bodies returns the indexed bodies in insertion order.
func (s *SpatialIndex) Bodies() []Body {
	out := make([]Body, len(s.order))
	for i, e := range s.order {
		out[i] = e.body
	}
	return out
}

// axisOverlaps returns the bodies b overlaps on a single axis, in insertion
// order, or nil when b is not indexed.
func (s *SpatialIndex) axisOverlaps(b Body, axis Axis) []Body {
	e, ok := s.entries[b]
	if !ok {
		return nil
	}
	entries := make([]*sapEntry, 0, len(e.overlap[axis]))
	for o := range e.overlap[axis] {
		entries = append(entries, o)
	}
	sortBySeq(entries)
	out := make([]Body, len(entries))
	for i, o := range entries {
		out[i] = o.body
	}
	return out
}

// collect appends the entries overlapping e on both axes with seq >= minSeq,
// sorted by seq.
func (e *sapEntry) collect(dst []*sapEntry, minSeq uint64) []*sapEntry {
	xs, ys := e.overlap[AxisX], e.overlap[AxisY]
	if len(ys) < len(xs) {
		xs, ys = ys, xs
	}
	start := len(dst)
	for o := range xs {
		if o.seq < minSeq {
			continue
		}
		if _, ok := ys[o]; !ok {
			continue
		}
		if sameGroup(e.body, o.body) {
			continue
		}
		dst = append(dst, o)
	}
	sortBySeq(dst[start:])
	return dst
}

func sortBySeq(entries []*sapEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
}

// removeEdges filters e's edges out of list, preserving order.
func removeEdges(list []sapEdge, e *sapEntry) []sapEdge {
	out := list[:0]
	for _, ed := range list {
		if ed.owner != e {
			out = append(out, ed)
		}
	}
	for i := len(out); i < len(list); i++ {
		list[i] = sapEdge{}
	}
	return out
}

// edgeLess orders edges by coordinate. At equal coordinates a high edge sorts
// before a low edge, so two boxes that merely touch end up in the order that
// reads as "not overlapping", matching Interval.Overlaps.
func edgeLess(av float64, aHigh bool, bv float64, bHigh bool) bool {
	if av != bv {
		return av < bv
	}
	return aHigh && !bHigh
}

func boundEdge(r Rect, axis Axis, high bool) float64 {
	switch {
	case axis == AxisX && !high:
		return r.MinX()
	case axis == AxisX:
		return r.MaxX()
	case !high:
		return r.MinY()
	default:
		return r.MaxY()
	}
}

func boundSpan(r Rect, axis Axis) Interval {
	if axis == AxisX {
		return Interval{Min: r.MinX(), Max: r.MaxX()}
	}
	return Interval{Min: r.MinY(), Max: r.MaxY()}
}
