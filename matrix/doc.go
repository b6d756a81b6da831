// Package matrix provides the dense float64 storage used by the matching
// engine to cache per-pair weights.
//
// Dense is row-major and backed by one flat slice, so a full row scan walks
// contiguous memory. Fill and ColMax return sentinel errors; Row hands out
// a view for hot loops that have already validated their indices.
package matrix
