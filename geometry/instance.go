package geometry

import "fmt"

// SourceID indexes the source side, in [0, a).
type SourceID int

// TargetID indexes the target side, in [0, b).
type TargetID int

// Vertex is the flat index used on the wire: sources occupy [0, a) and
// targets occupy [a, a+b).
type Vertex int

const (
	// NoSource marks the absence of a source (unmatched target, tree root).
	NoSource SourceID = -1

	// NoTarget marks the absence of a target (unmatched source, tree root).
	NoTarget TargetID = -1
)

// Side tells which half of the vertex range an index belongs to.
type Side int

const (
	// SourceSide is the first a vertices.
	SourceSide Side = iota

	// TargetSide is the last b vertices.
	TargetSide
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == SourceSide {
		return "source"
	}

	return "target"
}

// Instance is one matching problem: a source set and a target set.
// The slices are treated as read-only by every package of this module.
type Instance struct {
	Sources []Point
	Targets []Point
}

// NewInstance splits a flat point list into its first a sources and the
// remaining points as targets. It panics if a is outside [0, len(points)].
func NewInstance(a int, points []Point) Instance {
	if a < 0 || a > len(points) {
		panic(fmt.Sprintf("geometry: source count %d outside [0,%d]", a, len(points)))
	}

	return Instance{Sources: points[:a:a], Targets: points[a:]}
}

// A returns the number of sources.
func (in Instance) A() int { return len(in.Sources) }

// B returns the number of targets.
func (in Instance) B() int { return len(in.Targets) }

// Len returns a+b, the number of vertices.
func (in Instance) Len() int { return len(in.Sources) + len(in.Targets) }

// SourceVertex converts a source index into its flat vertex.
func (in Instance) SourceVertex(i SourceID) Vertex { return Vertex(i) }

// TargetVertex converts a target index into its flat vertex.
func (in Instance) TargetVertex(j TargetID) Vertex { return Vertex(len(in.Sources) + int(j)) }

// Side resolves a flat vertex into its side and its per-side index.
// The per-side index is a SourceID when side==SourceSide and a TargetID value
// otherwise; use Source/Target for typed access.
func (in Instance) Side(v Vertex) (Side, int, error) {
	if v < 0 || int(v) >= in.Len() {
		return SourceSide, 0, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}
	if int(v) < len(in.Sources) {
		return SourceSide, int(v), nil
	}

	return TargetSide, int(v) - len(in.Sources), nil
}

// Point returns the coordinate of a flat vertex.
func (in Instance) Point(v Vertex) (Point, error) {
	side, idx, err := in.Side(v)
	if err != nil {
		return Point{}, err
	}
	if side == SourceSide {
		return in.Sources[idx], nil
	}

	return in.Targets[idx], nil
}

// Cost returns the distance between source i and target j.
func (in Instance) Cost(i SourceID, j TargetID) float64 {
	return Distance(in.Sources[i], in.Targets[j])
}

// Validate checks that every coordinate is finite.
// Complexity: O(a+b).
func (in Instance) Validate() error {
	for i, p := range in.Sources {
		if !finite(p) {
			return fmt.Errorf("source %d (%v, %v): %w", i, p.X, p.Y, ErrNonFinite)
		}
	}
	for j, p := range in.Targets {
		if !finite(p) {
			return fmt.Errorf("target %d (%v, %v): %w", j, p.X, p.Y, ErrNonFinite)
		}
	}

	return nil
}
