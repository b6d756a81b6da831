package completion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/nearest"
)

// ErrNoNeighbour indicates an uncovered vertex without any opposite-side
// vertex to fall back to.
var ErrNoNeighbour = errors.New("completion: vertex has no opposite neighbour")

// Pair is one emitted edge, as flat vertex indices. From is the vertex that
// was uncovered when the pair was emitted.
type Pair struct {
	From geometry.Vertex
	To   geometry.Vertex
}

// Pairing is the final output.
type Pairing struct {
	Pairs []Pair
	Total float64
}

// Matching is the read-only view of the exact phase Complete needs.
type Matching interface {
	// MateOfSource returns the target matched to source i, or NoTarget.
	MateOfSource(i geometry.SourceID) geometry.TargetID
}

// Complete pairs every vertex of in.
// A nil m means no exact-phase edges: every vertex falls back to its
// nearest neighbour.
// Complexity: O(a+b).
func Complete(in geometry.Instance, tab *nearest.Table, m Matching) (Pairing, error) {
	n := in.Len()
	covered := make([]bool, n)
	out := Pairing{Pairs: make([]Pair, 0, n)}

	var (
		v, partner geometry.Vertex
		p, q       geometry.Point
		err        error
	)
	for v = 0; int(v) < n; v++ {
		if covered[v] {
			continue
		}
		partner = tab.Closest(v)
		if int(v) < in.A() && m != nil {
			if j := m.MateOfSource(geometry.SourceID(v)); j != geometry.NoTarget {
				partner = in.TargetVertex(j)
			}
		}
		if partner < 0 {
			return Pairing{}, fmt.Errorf("vertex %d: %w", v, ErrNoNeighbour)
		}
		if p, err = in.Point(v); err != nil {
			return Pairing{}, err
		}
		if q, err = in.Point(partner); err != nil {
			return Pairing{}, err
		}

		out.Pairs = append(out.Pairs, Pair{From: v, To: partner})
		covered[v], covered[partner] = true, true
		out.Total += geometry.Distance(p, q)
	}

	return out, nil
}
