package hungarian

import "errors"

// Sentinel errors returned by Solve. Match them with errors.Is.
var (
	// ErrEmptySide indicates that exactly one side of the instance is empty,
	// so no vertex on the other side can be paired.
	ErrEmptySide = errors.New("hungarian: one side of the instance is empty")

	// ErrMoreSources indicates a > b. The engine requires every source to be
	// matchable into the target set.
	ErrMoreSources = errors.New("hungarian: more sources than targets")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("hungarian: tolerance must be finite and non-negative")

	// ErrNoProgress indicates the iteration guard tripped: the search stopped
	// converging, which only happens on an internal invariant violation.
	ErrNoProgress = errors.New("hungarian: search made no progress")

	// ErrInfeasible indicates that a dual update broke alpha[i]+beta[j] ≥ w(i,j).
	ErrInfeasible = errors.New("hungarian: dual feasibility violated")

	// ErrAsymmetric indicates that the matching store lost its symmetry.
	ErrAsymmetric = errors.New("hungarian: matching is not symmetric")

	// ErrCorruptTree indicates a parent-pointer cycle in the alternating tree.
	ErrCorruptTree = errors.New("hungarian: alternating tree is corrupt")
)
