package hungarian

import (
	"fmt"

	"github.com/katalvlaran/pointmatch/geometry"
)

// tree is the alternating forest of one outer iteration, stored as an arena
// of fixed-size arrays that reset clears without reallocating.
//
// Sources in the tree (inT) form T; the remaining sources form F. Targets in
// the tree (inS) form S. A source's parent is a target and a target's parent
// is a source; the root target has no parent.
type tree struct {
	sourceParent []geometry.TargetID
	targetParent []geometry.SourceID
	inT          []bool
	inS          []bool
	path         []edge // reused between flips
}

func newTree(a, b int) *tree {
	tr := &tree{
		sourceParent: make([]geometry.TargetID, a),
		targetParent: make([]geometry.SourceID, b),
		inT:          make([]bool, a),
		inS:          make([]bool, b),
		path:         make([]edge, 0, 2*a+1),
	}
	tr.reset()

	return tr
}

// reset empties the tree in place.
func (tr *tree) reset() {
	for i := range tr.sourceParent {
		tr.sourceParent[i] = geometry.NoTarget
		tr.inT[i] = false
	}
	for j := range tr.targetParent {
		tr.targetParent[j] = geometry.NoSource
		tr.inS[j] = false
	}
	tr.path = tr.path[:0]
}

// root seeds S with the bad target j.
func (tr *tree) root(j geometry.TargetID) {
	tr.inS[j] = true
}

// grow attaches di under dj and kj under di, moving di from F to T and kj
// into S.
func (tr *tree) grow(di geometry.SourceID, dj, kj geometry.TargetID) {
	tr.sourceParent[di] = dj
	tr.targetParent[kj] = di
	tr.inT[di] = true
	tr.inS[kj] = true
}

// pathFromSource collects the (vertex, parent) edges from source s up to the
// root. The walk is bounded by the arena size; exceeding it means a cycle.
func (tr *tree) pathFromSource(s geometry.SourceID) ([]edge, error) {
	tr.path = tr.path[:0]

	return tr.walk(s, tr.sourceParent[s])
}

// pathFromTarget collects the (vertex, parent) edges from target t up to the
// root.
func (tr *tree) pathFromTarget(t geometry.TargetID) ([]edge, error) {
	tr.path = tr.path[:0]
	s := tr.targetParent[t]
	if s == geometry.NoSource {
		return tr.path, nil
	}
	tr.path = append(tr.path, edge{s: s, t: t})

	return tr.walk(s, tr.sourceParent[s])
}

// walk continues a path whose current source is s with parent t.
func (tr *tree) walk(s geometry.SourceID, t geometry.TargetID) ([]edge, error) {
	limit := len(tr.sourceParent) + len(tr.targetParent)
	for t != geometry.NoTarget {
		tr.path = append(tr.path, edge{s: s, t: t})
		s = tr.targetParent[t]
		if s == geometry.NoSource {
			break
		}
		tr.path = append(tr.path, edge{s: s, t: t})
		if len(tr.path) > limit {
			return nil, fmt.Errorf("path longer than %d edges: %w", limit, ErrCorruptTree)
		}
		t = tr.sourceParent[s]
	}

	return tr.path, nil
}
