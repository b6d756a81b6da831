package hungarian

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/matrix"
	"github.com/katalvlaran/pointmatch/nearest"
)

// feasibilitySlack is the relative slack allowed by the invariant checks.
// It is far looser than the search tolerance because it bounds accumulated
// rounding over a whole solve, not a single comparison.
const feasibilitySlack = 1e-9

// solver is the complete mutable state of one Solve call.
type solver struct {
	a, b  int
	w     *matrix.Dense // w(i,j) = nearest[i] + nearest[j] − d(i,j)
	tol   Tolerance
	alpha []float64
	beta  []float64
	m     *store
	tr    *tree
	stats Stats
	opts  Options

	outerLimit int
	innerLimit int
}

// Solve runs the exact phase on in.
//
// tab may be nil, in which case the nearest table is built here; pass a
// prebuilt one to share it with the completion pass.
//
// Preconditions and validation (in order):
//  1. Options: tolerance finite and ≥ 0 (ErrBadTolerance).
//  2. Coordinates finite (geometry.ErrNonFinite).
//  3. a = b = 0 ⇒ empty result; exactly one side empty ⇒ ErrEmptySide.
//  4. a ≤ b (ErrMoreSources).
//
// Errors during the search (ErrNoProgress, ErrInfeasible, ErrAsymmetric,
// ErrCorruptTree) signal invariant violations and abort the solve.
func Solve(in geometry.Instance, tab *nearest.Table, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Tolerance.Valid() {
		return nil, fmt.Errorf("tolerance %v: %w", float64(o.Tolerance), ErrBadTolerance)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a, b := in.A(), in.B()
	switch {
	case a == 0 && b == 0:
		return &Result{Tolerance: o.Tolerance}, nil
	case a == 0 || b == 0:
		return nil, fmt.Errorf("a=%d b=%d: %w", a, b, ErrEmptySide)
	case a > b:
		return nil, fmt.Errorf("a=%d b=%d: %w", a, b, ErrMoreSources)
	}
	if tab == nil {
		tab = nearest.Build(in)
	}

	sv, err := newSolver(in, tab, o)
	if err != nil {
		return nil, err
	}
	if err = sv.run(); err != nil {
		return nil, err
	}

	return sv.result(), nil
}

// newSolver caches the weight table and initialises the duals:
// alpha = 0, beta[j] = max_i w(i,j).
func newSolver(in geometry.Instance, tab *nearest.Table, o Options) (*solver, error) {
	a, b := in.A(), in.B()
	w, err := matrix.Fill(a, b, func(i, j int) float64 {
		return tab.ReducedCost(in, geometry.SourceID(i), geometry.TargetID(j))
	})
	if err != nil {
		return nil, fmt.Errorf("weight table: %w", err)
	}

	sv := &solver{
		a:          a,
		b:          b,
		w:          w,
		alpha:      make([]float64, a),
		beta:       make([]float64, b),
		m:          newStore(a, b),
		tr:         newTree(a, b),
		opts:       o,
		outerLimit: 2*b + 8,
		innerLimit: 8*(a+b+1) + 64,
	}

	var scale float64
	var j int
	for j = 0; j < b; j++ {
		sv.beta[j], _, err = w.ColMax(j)
		if err != nil {
			return nil, err
		}
		scale = math.Max(scale, math.Abs(sv.beta[j]))
	}
	for i := 0; i < a; i++ {
		for _, v := range w.Row(i) {
			scale = math.Max(scale, math.Abs(v))
		}
	}

	sv.tol = o.Tolerance
	if !o.FixedTolerance {
		// alpha+beta−w sums three terms of at most this size each.
		sv.tol = o.Tolerance.Scaled(3 * scale)
	}

	return sv, nil
}

// run is the outer loop: resolve bad targets until none is left.
func (sv *solver) run() error {
	var (
		ej  geometry.TargetID
		bad int
		err error
	)
	for {
		ej, bad = sv.pickBad()
		if bad == 0 {
			break
		}
		if sv.stats.OuterIterations >= sv.outerLimit {
			return fmt.Errorf("%d outer iterations, %d bad targets left: %w",
				sv.stats.OuterIterations, bad, ErrNoProgress)
		}
		if ce := sv.opts.Logger.Check(zap.DebugLevel, "resolving bad target"); ce != nil {
			ce.Write(
				zap.Int("iteration", sv.stats.OuterIterations),
				zap.Int("bad", bad),
				zap.Int("target", int(ej)),
				zap.Float64("beta", sv.beta[ej]),
			)
		}
		if err = sv.search(ej); err != nil {
			return err
		}
		sv.stats.OuterIterations++
	}

	sv.opts.Logger.Debug("exact phase done",
		zap.Int("a", sv.a),
		zap.Int("b", sv.b),
		zap.Float64("tolerance", float64(sv.tol)),
		zap.Int("outer", sv.stats.OuterIterations),
		zap.Int("augmentations", sv.stats.Augmentations),
		zap.Int("growths", sv.stats.Growths),
		zap.Int("dual_adjustments", sv.stats.DualAdjustments),
		zap.Int("reroutes", sv.stats.Reroutes),
	)

	return nil
}

// pickBad returns the bad target with the smallest beta (smallest index on
// ties) and the number of bad targets.
func (sv *solver) pickBad() (geometry.TargetID, int) {
	best, count := geometry.NoTarget, 0
	var j int
	for j = 0; j < sv.b; j++ {
		if sv.m.targetMate[j] != geometry.NoSource || !sv.tol.Exceeds(sv.beta[j]) {
			continue
		}
		count++
		if best == geometry.NoTarget || sv.beta[j] < sv.beta[best] {
			best = geometry.TargetID(j)
		}
	}

	return best, count
}

// result snapshots the solver state.
func (sv *solver) result() *Result {
	r := &Result{
		SourceMate: sv.m.sourceMate,
		TargetMate: sv.m.targetMate,
		Alpha:      sv.alpha,
		Beta:       sv.beta,
		Tolerance:  sv.tol,
		Stats:      sv.stats,
	}
	for i, j := range r.SourceMate {
		if j != geometry.NoTarget {
			r.Weight += sv.w.Row(i)[j]
		}
	}

	return r
}

// checkInvariants verifies dual feasibility and matching symmetry.
// Complexity: O(a·b).
func (sv *solver) checkInvariants(stage string) error {
	if !sv.opts.CheckInvariants {
		return nil
	}
	if !sv.m.symmetric() {
		return fmt.Errorf("after %s: %w", stage, ErrAsymmetric)
	}
	var i, j int
	for i = 0; i < sv.w.Rows(); i++ {
		row := sv.w.Row(i)
		for j = 0; j < sv.w.Cols(); j++ {
			slack := sv.alpha[i] + sv.beta[j] - row[j]
			if slack < -feasibilitySlack*(1+math.Abs(row[j])) {
				return fmt.Errorf("after %s: source %d target %d slack %g: %w",
					stage, i, j, slack, ErrInfeasible)
			}
		}
	}

	return nil
}
