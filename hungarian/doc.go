// Package hungarian implements the exact phase of geometric point matching:
// a primal-dual (Hungarian-style) engine on reduced costs.
//
// 🚀 What does it solve?
//
//	Given a sources and b targets in the plane (a ≤ b), every vertex either
//	takes part in a matched source–target edge or falls back to its nearest
//	opposite neighbour. Pairing i with j instead saves
//
//	    w(i,j) = nearest[i] + nearest[j] − d(i,j)
//
//	so minimising the total distance is a maximum-weight bipartite matching
//	under w. The engine finds it exactly; package completion then attaches
//	every uncovered vertex to its nearest neighbour.
//
// ✨ How it works:
//
//   - Duals: alpha[i] (sources, start at 0) and beta[j] (targets, start at
//     max_i w(i,j)) satisfy alpha[i] + beta[j] ≥ w(i,j) at all times.
//   - A target is "bad" when it is unmatched and beta[j] still exceeds the
//     tolerance. Each outer iteration takes the bad target with the smallest
//     beta (smallest index on ties) and grows an alternating tree from it.
//   - The inner loop finds the least-slack edge between unvisited sources F
//     and tree targets S, then either augments (free source reached), grows
//     the tree (matched source reached), shifts the duals by the slack, or
//     shifts by the remaining epsilon and re-routes the matching so the
//     tightest tree target is the one left uncovered.
//
// ⚙️ Usage:
//
//	res, err := hungarian.Solve(in, nil,
//	    hungarian.WithTolerance(1e-12),
//	    hungarian.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrEmptySide, ErrMoreSources, ErrNoProgress, ...
//	}
//	mate := res.SourceMate[0]
//
// Numeric policy: every "is this zero" question goes through Tolerance. By
// default the configured tolerance is a floor that is widened to a few ulps
// of the instance's cost scale; WithFixedTolerance disables the widening.
//
// Complexity: O(b) outer iterations, O(a) inner steps each, O(a·b) per step
// ⇒ O(a²·b²) worst case; O(a·b) memory for the cached weight table.
package hungarian
