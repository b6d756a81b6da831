package hungarian

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the absolute threshold under which a reduced cost, a slack or
// a dual value counts as zero. All numeric comparisons of the engine go
// through its methods.
type Tolerance float64

// DefaultTolerance is the zero threshold used unless configured otherwise.
const DefaultTolerance Tolerance = 1e-15

// ulpsPerScale is how many machine epsilons of the cost scale Scaled allows.
const ulpsPerScale = 64

// IsZero reports whether |x| ≤ t. NaN and ±Inf are never zero.
func (t Tolerance) IsZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0, float64(t))
}

// Exceeds reports whether x > t, i.e. x is positive beyond noise.
func (t Tolerance) Exceeds(x float64) bool {
	return x > float64(t)
}

// Valid reports whether t is finite and non-negative.
func (t Tolerance) Valid() bool {
	f := float64(t)
	return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Scaled widens t to a few ulps of magnitude, the largest absolute value the
// duals and weights reach. Sums of that size carry rounding error of the same
// order, so a smaller threshold would mistake noise for slack.
func (t Tolerance) Scaled(magnitude float64) Tolerance {
	floor := Tolerance(ulpsPerScale * math.Abs(magnitude) * epsilon)
	if floor > t {
		return floor
	}

	return t
}

// epsilon is the float64 machine epsilon (2⁻⁵²).
const epsilon = 0x1p-52
