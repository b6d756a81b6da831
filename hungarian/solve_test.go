package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/hungarian"
	"github.com/katalvlaran/pointmatch/nearest"
)

// TestSolve_TwoClusters: (0,0),(10,10) against (0,1),(10,11) must pair each
// source with the target right above it.
func TestSolve_TwoClusters(t *testing.T) {
	in := geometry.Instance{
		Sources: []geometry.Point{pt(0, 0), pt(10, 10)},
		Targets: []geometry.Point{pt(0, 1), pt(10, 11)},
	}
	res, err := hungarian.Solve(in, nil, hungarian.WithInvariantChecks())
	require.NoError(t, err)

	assert.Equal(t, []geometry.TargetID{0, 1}, res.SourceMate)
	assert.Equal(t, []geometry.SourceID{0, 1}, res.TargetMate)
	assert.Equal(t, 2, res.Matched())
	assert.Equal(t, 2.0, res.Weight)
	assert.Equal(t, 2, res.Stats.OuterIterations)
	assert.Equal(t, 2, res.Stats.Augmentations)
}

// TestSolve_OneSourceThreeTargets: the source takes its nearest target, the
// far targets are left to the completion pass with zeroed potentials.
func TestSolve_OneSourceThreeTargets(t *testing.T) {
	in := geometry.Instance{
		Sources: []geometry.Point{pt(0, 0)},
		Targets: []geometry.Point{pt(1, 0), pt(100, 0), pt(0, 100)},
	}
	res, err := hungarian.Solve(in, nil, hungarian.WithInvariantChecks())
	require.NoError(t, err)

	assert.Equal(t, []geometry.TargetID{0}, res.SourceMate)
	assert.Equal(t, []geometry.SourceID{0, ns, ns}, res.TargetMate)
	assert.Equal(t, 1, res.Matched())
	for j := 1; j < 3; j++ {
		assert.InDelta(t, 0, res.Beta[j], 1e-12, "unmatched target %d keeps slack", j)
	}
}

func TestSolve_SinglePair(t *testing.T) {
	in := geometry.Instance{
		Sources: []geometry.Point{pt(1, 1)},
		Targets: []geometry.Point{pt(4, 5)},
	}
	res, err := hungarian.Solve(in, nil)
	require.NoError(t, err)

	assert.Equal(t, []geometry.TargetID{0}, res.SourceMate)
	assert.Equal(t, 5.0, res.Weight, "w = 5 + 5 − 5")
}

// TestSolve_EquidistantTieBreak pins the deterministic choices: both targets
// are bad with equal beta, the smaller index is served first and keeps the
// source; the second one is resolved by a reroute with an empty path.
func TestSolve_EquidistantTieBreak(t *testing.T) {
	in := geometry.Instance{
		Sources: []geometry.Point{pt(0, 0)},
		Targets: []geometry.Point{pt(1, 0), pt(-1, 0)},
	}
	res, err := hungarian.Solve(in, nil, hungarian.WithInvariantChecks())
	require.NoError(t, err)

	assert.Equal(t, []geometry.TargetID{0}, res.SourceMate)
	assert.Equal(t, hungarian.Stats{
		OuterIterations: 2,
		Augmentations:   1,
		Growths:         1,
		Reroutes:        1,
	}, res.Stats)
	assert.Equal(t, 1.0, res.Alpha[0])
	assert.Equal(t, []float64{0, 0}, res.Beta)
}

func TestSolve_EmptyInstance(t *testing.T) {
	res, err := hungarian.Solve(geometry.Instance{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Matched())
	assert.Equal(t, 0.0, res.Weight)
}

func TestSolve_Errors(t *testing.T) {
	one := []geometry.Point{pt(0, 0)}
	two := []geometry.Point{pt(0, 0), pt(1, 1)}

	_, err := hungarian.Solve(geometry.Instance{Targets: two}, nil)
	assert.ErrorIs(t, err, hungarian.ErrEmptySide)

	_, err = hungarian.Solve(geometry.Instance{Sources: two}, nil)
	assert.ErrorIs(t, err, hungarian.ErrEmptySide)

	_, err = hungarian.Solve(geometry.Instance{Sources: two, Targets: one}, nil)
	assert.ErrorIs(t, err, hungarian.ErrMoreSources)

	_, err = hungarian.Solve(geometry.Instance{Sources: one, Targets: one}, nil, hungarian.WithTolerance(-1))
	assert.ErrorIs(t, err, hungarian.ErrBadTolerance)

	_, err = hungarian.Solve(geometry.Instance{Sources: one, Targets: one}, nil, hungarian.WithTolerance(math.NaN()))
	assert.ErrorIs(t, err, hungarian.ErrBadTolerance)

	nan := []geometry.Point{pt(math.NaN(), 0)}
	_, err = hungarian.Solve(geometry.Instance{Sources: one, Targets: nan}, nil)
	assert.ErrorIs(t, err, geometry.ErrNonFinite)
}

// TestSolve_OptimalAndFeasible checks, on random small instances, that the
// result satisfies every invariant and reaches the brute-force optimum.
func TestSolve_OptimalAndFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	var trial int
	for trial = 0; trial < 300; trial++ {
		a := 1 + rng.Intn(4)
		b := a + rng.Intn(6-a)
		in := randomInstance(rng, a, b, trial%3 == 0)
		tab := nearest.Build(in)

		res, err := hungarian.Solve(in, tab, hungarian.WithInvariantChecks())
		require.NoError(t, err, "trial %d: %+v", trial, in)

		// matching symmetry
		for i, j := range res.SourceMate {
			if j != geometry.NoTarget {
				require.Equal(t, geometry.SourceID(i), res.TargetMate[j], "trial %d", trial)
			}
		}
		for j, i := range res.TargetMate {
			if i != geometry.NoSource {
				require.Equal(t, geometry.TargetID(j), res.SourceMate[i], "trial %d", trial)
			}
		}

		// feasibility, tightness of matched edges, complementary slackness
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				w := tab.ReducedCost(in, geometry.SourceID(i), geometry.TargetID(j))
				slack := res.Alpha[i] + res.Beta[j] - w
				require.GreaterOrEqual(t, slack, -1e-9, "trial %d edge %d-%d", trial, i, j)
				if res.SourceMate[i] == geometry.TargetID(j) {
					require.InDelta(t, 0, slack, 1e-9, "trial %d matched edge %d-%d", trial, i, j)
				}
			}
			if res.SourceMate[i] == geometry.NoTarget {
				require.Equal(t, 0.0, res.Alpha[i], "trial %d free source %d", trial, i)
			}
		}
		for j := 0; j < b; j++ {
			require.GreaterOrEqual(t, res.Beta[j], -1e-9, "trial %d", trial)
			if res.TargetMate[j] == geometry.NoSource {
				require.False(t, res.Tolerance.Exceeds(res.Beta[j]), "trial %d target %d still bad", trial, j)
			}
		}

		require.InDelta(t, bruteMaxWeight(in, tab), res.Weight, 1e-9, "trial %d: %+v", trial, in)

		// each augmentation adds a pair, each reroute keeps the count
		require.Equal(t, res.Stats.Augmentations, res.Matched(), "trial %d", trial)
		require.Equal(t, res.Stats.OuterIterations, res.Stats.Augmentations+res.Stats.Reroutes, "trial %d", trial)
	}
}

// TestSolve_FixedToleranceConverges keeps the raw 1e-15 threshold on
// coordinates up to 100, where dual shifts leave rounding residue well above
// it. Every solve must still finish at the optimum.
func TestSolve_FixedToleranceConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(193))
	var trial, k int
	for trial = 0; trial < 200; trial++ {
		a := 1 + rng.Intn(5)
		b := a + rng.Intn(9-a)
		in := randomInstance(rng, a, b, false)
		for k = range in.Sources {
			in.Sources[k] = pt(10*in.Sources[k].X, 10*in.Sources[k].Y)
		}
		for k = range in.Targets {
			in.Targets[k] = pt(10*in.Targets[k].X, 10*in.Targets[k].Y)
		}
		tab := nearest.Build(in)

		res, err := hungarian.Solve(in, tab, hungarian.WithFixedTolerance(), hungarian.WithInvariantChecks())
		require.NoError(t, err, "trial %d: %+v", trial, in)
		assert.Equal(t, hungarian.DefaultTolerance, res.Tolerance)
		require.InDelta(t, bruteMaxWeight(in, tab), res.Weight, 1e-7, "trial %d: %+v", trial, in)
		require.Equal(t, res.Stats.Augmentations, res.Matched(), "trial %d", trial)
	}
}

// TestSolve_Deterministic runs the same instance twice.
func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	in := randomInstance(rng, 6, 9, true)

	r1, err := hungarian.Solve(in, nil)
	require.NoError(t, err)
	r2, err := hungarian.Solve(in, nil)
	require.NoError(t, err)

	assert.Equal(t, r1.SourceMate, r2.SourceMate)
	assert.Equal(t, r1.Alpha, r2.Alpha)
	assert.Equal(t, r1.Beta, r2.Beta)
	assert.Equal(t, r1.Stats, r2.Stats)
}

// TestSolve_LargeCoordinates exercises the scaled tolerance: with the fixed
// default tolerance, rounding noise at this magnitude exceeds 1e-15.
func TestSolve_LargeCoordinates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	in := randomInstance(rng, 5, 5, false)
	for k := range in.Sources {
		in.Sources[k] = pt(in.Sources[k].X*1e5+3e6, in.Sources[k].Y*1e5-2e6)
	}
	for k := range in.Targets {
		in.Targets[k] = pt(in.Targets[k].X*1e5+3e6, in.Targets[k].Y*1e5-2e6)
	}
	tab := nearest.Build(in)

	res, err := hungarian.Solve(in, tab, hungarian.WithInvariantChecks())
	require.NoError(t, err)
	assert.Greater(t, float64(res.Tolerance), float64(hungarian.DefaultTolerance))
	assert.InDelta(t, bruteMaxWeight(in, tab), res.Weight, 1e-6)
}

func TestSolve_FixedToleranceKept(t *testing.T) {
	in := geometry.Instance{
		Sources: []geometry.Point{pt(0, 0)},
		Targets: []geometry.Point{pt(300, 400)},
	}
	res, err := hungarian.Solve(in, nil, hungarian.WithTolerance(1e-12), hungarian.WithFixedTolerance())
	require.NoError(t, err)
	assert.Equal(t, hungarian.Tolerance(1e-12), res.Tolerance)
}

// TestSolve_LogsIterations checks the debug trace through an observer core.
func TestSolve_LogsIterations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	in := geometry.Instance{
		Sources: []geometry.Point{pt(0, 0), pt(10, 10)},
		Targets: []geometry.Point{pt(0, 1), pt(10, 11)},
	}
	_, err := hungarian.Solve(in, nil, hungarian.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("resolving bad target").Len())
	done := logs.FilterMessage("exact phase done").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ContextMap()["augmentations"])
}
