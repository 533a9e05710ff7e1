package kinetype

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and collision metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	behaviourTime time.Duration
	indexTime     time.Duration
	resolveTime   time.Duration
	bodies        int
	swaps         int
	candidates    int
	contacts      int
}

// debugLog prints timing and collision stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.behaviourTime + stats.indexTime + stats.resolveTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[kinetype] frame %d | behaviour: %v | index: %v | resolve: %v | total: %v\n",
		s.frame, stats.behaviourTime, stats.indexTime, stats.resolveTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[kinetype] bodies: %d | swaps: %d | candidates: %d | contacts: %d\n",
		stats.bodies, stats.swaps, stats.candidates, stats.contacts)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("kinetype debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[kinetype] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
// Large flat texts are common, but every child is a body in the spatial index.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[kinetype] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
