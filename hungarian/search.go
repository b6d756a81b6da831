package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pointmatch/geometry"
)

// search resolves one bad target ej by growing an alternating tree from it.
//
// State: T = ∅, S = {ej}, F = all sources, epsilon = beta[ej]. Each step
// takes the least-slack pair (di, dj) over F×S and dispatches:
//
//  1. slack ≤ tol, di free    → attach di under dj, flip from di, done.
//  2. slack ≤ tol, di matched → absorb di and its mate kj; track the smallest
//     beta seen in S as the new epsilon and re-route target.
//  3. epsilon > slack         → shift duals by slack, epsilon −= slack. A pair
//     that rounding leaves above tol is attached directly as in 1 or 2.
//  4. otherwise               → shift duals by epsilon, flip from ej, done.
//
// With F empty there is no candidate pair; the slack is +Inf and case 4
// applies.
func (sv *solver) search(ej geometry.TargetID) error {
	sv.tr.reset()
	sv.tr.root(ej)
	eps := sv.beta[ej]

	var (
		delta float64
		di    geometry.SourceID
		dj    geometry.TargetID
		steps int
		done  bool
		err   error
	)
	for steps = 0; steps < sv.innerLimit; steps++ {
		delta, di, dj = sv.leastSlack()

		switch {
		case di != geometry.NoSource && !sv.tol.Exceeds(delta):
			if done, err = sv.attach(di, dj, &eps, &ej); done || err != nil {
				return err
			}

		case eps > delta:
			sv.shift(delta)
			eps -= delta
			sv.stats.DualAdjustments++
			if err = sv.checkInvariants("dual adjustment"); err != nil {
				return err
			}
			// The shift makes (di, dj) tight up to rounding. When the residue
			// still exceeds the tolerance, the next scan would shift by noise
			// again; attach the pair now instead.
			if !sv.tol.IsZero(sv.slack(di, dj)) {
				if done, err = sv.attach(di, dj, &eps, &ej); done || err != nil {
					return err
				}
			}

		default:
			sv.shift(eps)
			path, err := sv.tr.pathFromTarget(ej)
			if err != nil {
				return err
			}
			sv.m.flip(path)
			sv.stats.Reroutes++

			return sv.checkInvariants("reroute")
		}
	}

	return fmt.Errorf("target %d: %d inner steps: %w", ej, steps, ErrNoProgress)
}

// attach handles a tight pair (di, dj). A free di ends the search with an
// augmentation (done=true). A matched di is absorbed into the tree together
// with its mate kj, which becomes the re-route target when its beta is the
// smallest seen so far.
func (sv *solver) attach(di geometry.SourceID, dj geometry.TargetID, eps *float64, ej *geometry.TargetID) (bool, error) {
	kj := sv.m.sourceMate[di]
	if kj == geometry.NoTarget {
		sv.tr.sourceParent[di] = dj
		path, err := sv.tr.pathFromSource(di)
		if err != nil {
			return true, err
		}
		sv.m.flip(path)
		sv.stats.Augmentations++

		return true, sv.checkInvariants("augment")
	}

	sv.tr.grow(di, dj, kj)
	if sv.beta[kj] < *eps {
		*eps, *ej = sv.beta[kj], kj
	}
	sv.stats.Growths++

	return false, nil
}

// slack returns alpha[i] + beta[j] − w(i,j).
func (sv *solver) slack(i geometry.SourceID, j geometry.TargetID) float64 {
	return sv.alpha[i] + sv.beta[j] - sv.w.Row(int(i))[j]
}

// leastSlack scans F×S in ascending (source, target) order and returns the
// first pair with minimal alpha[i] + beta[j] − w(i,j). Without candidates it
// returns (+Inf, NoSource, NoTarget).
// Complexity: O(a·b).
func (sv *solver) leastSlack() (float64, geometry.SourceID, geometry.TargetID) {
	delta := math.Inf(1)
	di, dj := geometry.NoSource, geometry.NoTarget

	var (
		i, j  int
		ai, c float64
		row   []float64
	)
	for i = 0; i < sv.a; i++ {
		if sv.tr.inT[i] {
			continue
		}
		ai, row = sv.alpha[i], sv.w.Row(i)
		for j = 0; j < sv.b; j++ {
			if !sv.tr.inS[j] {
				continue
			}
			if c = ai + sv.beta[j] - row[j]; c < delta {
				delta, di, dj = c, geometry.SourceID(i), geometry.TargetID(j)
			}
		}
	}

	return delta, di, dj
}

// shift raises alpha on T and lowers beta on S by d. Tree edges keep their
// slack, edges from T to outside S gain slack, edges from F into S lose it.
func (sv *solver) shift(d float64) {
	var i, j int
	for i = 0; i < sv.a; i++ {
		if sv.tr.inT[i] {
			sv.alpha[i] += d
		}
	}
	for j = 0; j < sv.b; j++ {
		if sv.tr.inS[j] {
			sv.beta[j] -= d
		}
	}
}
