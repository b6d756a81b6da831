package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/hungarian"
)

// ExampleSolve pairs two sources with the two targets sitting right above
// them. Each bad target is reached through a tight edge to a free source, so
// both outer iterations end in a plain augmentation.
func ExampleSolve() {
	in := geometry.Instance{
		Sources: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
		Targets: []geometry.Point{{X: 0, Y: 1}, {X: 10, Y: 11}},
	}
	res, err := hungarian.Solve(in, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, j := range res.SourceMate {
		fmt.Printf("source %d -> target %d\n", i, j)
	}
	fmt.Printf("weight=%.1f augmentations=%d reroutes=%d\n",
		res.Weight, res.Stats.Augmentations, res.Stats.Reroutes)
	// Output:
	// source 0 -> target 0
	// source 1 -> target 1
	// weight=2.0 augmentations=2 reroutes=0
}

// ExampleSolve_surplusTargets shows a surplus target left unmatched: its
// potential is paid down to zero instead, and the completion pass will
// attach it to its nearest source.
func ExampleSolve_surplusTargets() {
	in := geometry.Instance{
		Sources: []geometry.Point{{X: 0, Y: 0}},
		Targets: []geometry.Point{{X: 1, Y: 0}, {X: 100, Y: 0}},
	}
	res, err := hungarian.Solve(in, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("mates:", res.TargetMate)
	fmt.Println("beta:", res.Beta)
	// Output:
	// mates: [0 -1]
	// beta: [0 0]
}
