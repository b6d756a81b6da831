package hungarian

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pointmatch/geometry"
)

// Options configures Solve.
//
// Tolerance       – zero threshold for slacks and duals (default 1e-15).
// FixedTolerance  – if true, Tolerance is used verbatim instead of being
//
//	widened to the instance's cost scale.
//
// CheckInvariants – if true, dual feasibility and matching symmetry are
//
//	verified after every dual update and every flip (O(a·b) each).
//
// Logger          – debug sink for per-iteration tracing (default no-op).
type Options struct {
	Tolerance       Tolerance
	FixedTolerance  bool
	CheckInvariants bool
	Logger          *zap.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the default configuration.
//
// Defaults:
//   - Tolerance:       DefaultTolerance (1e-15), widened to the cost scale.
//   - CheckInvariants: false.
//   - Logger:          zap.NewNop().
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Logger:    zap.NewNop(),
	}
}

// WithTolerance sets the zero threshold. Invalid values surface as
// ErrBadTolerance from Solve.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = Tolerance(tol)
	}
}

// WithFixedTolerance keeps the configured tolerance as-is for every instance.
func WithFixedTolerance() Option {
	return func(o *Options) {
		o.FixedTolerance = true
	}
}

// WithInvariantChecks enables feasibility and symmetry checks after every
// state change. Intended for tests and debugging.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithLogger routes debug tracing to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats counts how often each branch of the search fired.
type Stats struct {
	OuterIterations int // bad targets processed
	Augmentations   int // case 1: free source reached, matching grew by one
	Growths         int // case 2: matched source absorbed into the tree
	DualAdjustments int // case 3: partial dual shift by the least slack
	Reroutes        int // case 4: full epsilon shift and re-route
}

// Result is the outcome of the exact phase.
type Result struct {
	// SourceMate[i] is the target matched to source i, or geometry.NoTarget.
	SourceMate []geometry.TargetID

	// TargetMate[j] is the source matched to target j, or geometry.NoSource.
	TargetMate []geometry.SourceID

	// Alpha and Beta are the final dual potentials.
	Alpha []float64
	Beta  []float64

	// Weight is Σ w(i,j) over matched pairs, the distance saved relative to
	// sending every vertex to its nearest neighbour.
	Weight float64

	// Tolerance is the effective zero threshold used for this instance.
	Tolerance Tolerance

	Stats Stats
}

// Matched returns the number of matched pairs.
func (r *Result) Matched() int {
	var n int
	for _, j := range r.SourceMate {
		if j != geometry.NoTarget {
			n++
		}
	}

	return n
}

// MateOfSource returns the target matched to source i, or geometry.NoTarget.
// It lets a Result feed the completion pass directly.
func (r *Result) MateOfSource(i geometry.SourceID) geometry.TargetID {
	return r.SourceMate[i]
}
