package hungarian

import "github.com/katalvlaran/pointmatch/geometry"

// store is the partial matching, kept symmetric:
// sourceMate[i] == j ⇔ targetMate[j] == i.
type store struct {
	sourceMate []geometry.TargetID
	targetMate []geometry.SourceID
}

func newStore(a, b int) *store {
	s := &store{
		sourceMate: make([]geometry.TargetID, a),
		targetMate: make([]geometry.SourceID, b),
	}
	for i := range s.sourceMate {
		s.sourceMate[i] = geometry.NoTarget
	}
	for j := range s.targetMate {
		s.targetMate[j] = geometry.NoSource
	}

	return s
}

// match pairs i with j after releasing their previous partners.
func (s *store) match(i geometry.SourceID, j geometry.TargetID) {
	if old := s.sourceMate[i]; old != geometry.NoTarget {
		s.targetMate[old] = geometry.NoSource
	}
	if old := s.targetMate[j]; old != geometry.NoSource {
		s.sourceMate[old] = geometry.NoTarget
	}
	s.sourceMate[i] = j
	s.targetMate[j] = i
}

// symmetric reports whether both mate arrays agree.
func (s *store) symmetric() bool {
	for i, j := range s.sourceMate {
		if j != geometry.NoTarget && s.targetMate[j] != geometry.SourceID(i) {
			return false
		}
	}
	for j, i := range s.targetMate {
		if i != geometry.NoSource && s.sourceMate[i] != geometry.TargetID(j) {
			return false
		}
	}

	return true
}

// edge is one source–target edge of an alternating path.
type edge struct {
	s geometry.SourceID
	t geometry.TargetID
}

// flip applies an augmenting path: starting from the second edge when the
// path length is even (the first when odd) every other edge becomes matched.
// Edges in between were matched and get released by match.
func (s *store) flip(path []edge) {
	var c int
	for c = 1 - len(path)%2; c < len(path); c += 2 {
		s.match(path[c].s, path[c].t)
	}
}
