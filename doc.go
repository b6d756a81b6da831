// Package pointmatch pairs two planar point sets at minimum total distance.
//
// 🚀 What is pointmatch?
//
//	Given a sources and b targets (a ≤ b) in the plane, pointmatch emits a
//	list of source–target pairs that touches every point and whose summed
//	Euclidean length is minimal:
//		• nearest/    – closest opposite-side point for every vertex
//		• hungarian/  – exact primal-dual phase on reduced costs
//		• completion/ – pairs every point the exact phase left uncovered
//		• pointio/    – text and YAML codecs for instances and pairings
//
// ✨ How it works
//
//   - Every point could simply pair with its nearest opposite point. The
//     exact phase finds the set of one-to-one pairs that saves the most
//     relative to that baseline, using weights
//     w(i,j) = nearest[i] + nearest[j] − d(i,j).
//   - The completion pass then gives every remaining point its nearest
//     partner.
//
// The result is a minimum-cost edge cover of the complete bipartite graph.
// When the point sets form tight, well-separated couples it coincides with
// the minimum-cost perfect matching.
//
// Quick start:
//
//	in := geometry.Instance{Sources: src, Targets: dst}
//	rep, err := pointmatch.Match(in)
//	for _, p := range rep.Pairing.Pairs { … }
//
// See cmd/pointmatch for the command-line front end.
package pointmatch
