// Package pointio reads matching instances and writes pairings.
//
// Text input is whitespace separated:
//
//	a b
//	x0 y0
//	...
//	x(a+b-1) y(a+b-1)
//
// The first a points are sources, the remaining b are targets. Tokens past
// the last coordinate are ignored.
//
// Text output is the pair count, one "u v" line per pair (0-based flat
// vertex indices) and the total distance with a fixed number of decimals
// (9 by default). YAML input/output carry the same data as mappings.
//
// Failures wrap a sentinel (ErrMalformed, ErrShortInput, ErrBadCount,
// ErrUnknownFormat) with position context; match them with errors.Is.
package pointio
