package nearest

import (
	"math"

	"github.com/katalvlaran/pointmatch/geometry"
)

// Table stores the nearest opposite-side neighbour of every vertex.
// A vertex whose opposite side is empty keeps +Inf distance and no neighbour.
type Table struct {
	sourceDist    []float64
	targetDist    []float64
	sourceClosest []geometry.TargetID
	targetClosest []geometry.SourceID
	a             int
}

// Build computes the table for in.
func Build(in geometry.Instance) *Table {
	a, b := in.A(), in.B()
	t := &Table{
		sourceDist:    make([]float64, a),
		targetDist:    make([]float64, b),
		sourceClosest: make([]geometry.TargetID, a),
		targetClosest: make([]geometry.SourceID, b),
		a:             a,
	}
	inf := math.Inf(1)
	for i := range t.sourceDist {
		t.sourceDist[i] = inf
		t.sourceClosest[i] = geometry.NoTarget
	}
	for j := range t.targetDist {
		t.targetDist[j] = inf
		t.targetClosest[j] = geometry.NoSource
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < a; i++ {
		for j = 0; j < b; j++ {
			d = geometry.Distance(in.Sources[i], in.Targets[j])
			if d < t.sourceDist[i] {
				t.sourceDist[i] = d
				t.sourceClosest[i] = geometry.TargetID(j)
			}
			if d < t.targetDist[j] {
				t.targetDist[j] = d
				t.targetClosest[j] = geometry.SourceID(i)
			}
		}
	}

	return t
}

// SourceNearest returns the distance from source i to its closest target.
func (t *Table) SourceNearest(i geometry.SourceID) float64 { return t.sourceDist[i] }

// TargetNearest returns the distance from target j to its closest source.
func (t *Table) TargetNearest(j geometry.TargetID) float64 { return t.targetDist[j] }

// SourceClosest returns the closest target of source i, or NoTarget.
func (t *Table) SourceClosest(i geometry.SourceID) geometry.TargetID { return t.sourceClosest[i] }

// TargetClosest returns the closest source of target j, or NoSource.
func (t *Table) TargetClosest(j geometry.TargetID) geometry.SourceID { return t.targetClosest[j] }

// ReducedCost returns nearest[i] + nearest[j] − distance(i,j), the amount
// saved by pairing i with j instead of sending both to their own nearest
// neighbours.
func (t *Table) ReducedCost(in geometry.Instance, i geometry.SourceID, j geometry.TargetID) float64 {
	return t.sourceDist[i] + t.targetDist[j] - in.Cost(i, j)
}

// Nearest returns the nearest opposite-side distance of a flat vertex.
// The vertex must be in [0, a+b).
func (t *Table) Nearest(v geometry.Vertex) float64 {
	if int(v) < t.a {
		return t.sourceDist[v]
	}

	return t.targetDist[int(v)-t.a]
}

// Closest returns the closest opposite-side vertex of a flat vertex, or -1
// when the opposite side is empty.
func (t *Table) Closest(v geometry.Vertex) geometry.Vertex {
	if int(v) < t.a {
		if c := t.sourceClosest[v]; c != geometry.NoTarget {
			return geometry.Vertex(t.a + int(c))
		}
		return -1
	}
	if c := t.targetClosest[int(v)-t.a]; c != geometry.NoSource {
		return geometry.Vertex(c)
	}

	return -1
}
