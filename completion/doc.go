// Package completion turns the exact-phase matching into the final list of
// pairs.
//
// Vertices are visited in flat order 0 … a+b−1. An uncovered vertex is
// paired with its exact-phase mate when it is a matched source, and with its
// precomputed nearest opposite neighbour otherwise; both endpoints become
// covered and the pair's distance is added to the total. The neighbour may
// already be covered, so a vertex can appear in several pairs, but every
// vertex appears at least once and starts at most one pair.
package completion
