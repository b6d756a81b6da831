// Package nearest precomputes, for every vertex of a matching instance, the
// closest vertex on the opposite side and the distance to it.
//
// The table serves two consumers:
//
//	• the matching engine, which seeds its dual potentials from the
//	  per-vertex nearest distances (reduced cost = nearest[i] + nearest[j] − d(i,j));
//	• the completion pass, which pairs every vertex the exact phase left
//	  uncovered with its precomputed closest neighbour.
//
// Build makes one pass over all source×target pairs, sources outer and
// targets inner, both ascending, and only replaces a candidate on a strictly
// smaller distance. Ties therefore go to the first pair met in that order,
// i.e. to the smallest opposite-side index.
//
// Complexity: O(a·b) time, O(a+b) memory.
package nearest
