package hungarian_test

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/nearest"
)

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

// randomInstance draws a sources and b targets. With grid=true coordinates
// are small integers, which produces many exact ties.
func randomInstance(rng *rand.Rand, a, b int, grid bool) geometry.Instance {
	draw := func() geometry.Point {
		if grid {
			return pt(float64(rng.Intn(5)), float64(rng.Intn(5)))
		}
		return pt(rng.Float64()*10, rng.Float64()*10)
	}
	var in geometry.Instance
	for k := 0; k < a; k++ {
		in.Sources = append(in.Sources, draw())
	}
	for k := 0; k < b; k++ {
		in.Targets = append(in.Targets, draw())
	}

	return in
}

// bruteMaxWeight enumerates every partial matching (k sources, ordered
// choice of k targets) and returns the largest total reduced cost.
// Requires a ≤ b.
func bruteMaxWeight(in geometry.Instance, tab *nearest.Table) float64 {
	a, b := in.A(), in.B()
	best := 0.0 // the empty matching
	var k int
	for k = 1; k <= a; k++ {
		for _, src := range combin.Combinations(a, k) {
			for _, dst := range combin.Permutations(b, k) {
				var sum float64
				for x := range src {
					sum += tab.ReducedCost(in, geometry.SourceID(src[x]), geometry.TargetID(dst[x]))
				}
				if sum > best {
					best = sum
				}
			}
		}
	}

	return best
}
