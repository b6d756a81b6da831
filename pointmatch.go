package pointmatch

import (
	"github.com/katalvlaran/pointmatch/completion"
	"github.com/katalvlaran/pointmatch/geometry"
	"github.com/katalvlaran/pointmatch/hungarian"
	"github.com/katalvlaran/pointmatch/nearest"
)

// Report bundles the final pairing with the intermediate state that
// produced it.
type Report struct {
	Pairing completion.Pairing
	Result  *hungarian.Result
	Nearest *nearest.Table
}

// Match runs the full pipeline on in: validation, nearest table, exact
// phase, completion. opts configure the exact phase.
//
// Errors are those of hungarian.Solve and completion.Complete, unchanged,
// so callers can match them with errors.Is.
//
// Complexity: O(a·b) for the table plus the exact phase.
func Match(in geometry.Instance, opts ...hungarian.Option) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	tab := nearest.Build(in)

	res, err := hungarian.Solve(in, tab, opts...)
	if err != nil {
		return nil, err
	}
	p, err := completion.Complete(in, tab, res)
	if err != nil {
		return nil, err
	}

	return &Report{Pairing: p, Result: res, Nearest: tab}, nil
}
