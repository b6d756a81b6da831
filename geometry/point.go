package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an immutable planar coordinate.
type Point = r2.Vec

// DistanceMagnitude returns the squared Euclidean distance between p and q.
// Complexity: O(1).
func DistanceMagnitude(p, q Point) float64 {
	return r2.Norm2(r2.Sub(p, q))
}

// Distance returns the Euclidean distance between p and q.
//
// It is computed as the square root of DistanceMagnitude (not math.Hypot) so
// that Distance is monotone in DistanceMagnitude bit for bit.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Sqrt(DistanceMagnitude(p, q))
}

// finite reports whether both coordinates of p are finite numbers.
func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
