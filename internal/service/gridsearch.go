package service

import (
	"context"
	"math"

	"github.com/somnolog/somnolog/internal/domain"
)

// GridDimension is one swept axis of the recommendation search: a
// closed inclusive range walked at a fixed step.
type GridDimension struct {
	Name string
	Min  float64
	Max  float64
	Step float64
}

// Values materializes the dimension's candidate values. Each value is
// computed from the index so long sweeps don't accumulate float error.
func (d GridDimension) Values() []float64 {
	n := int(math.Floor((d.Max-d.Min)/d.Step+1e-9)) + 1
	if n < 1 {
		n = 1
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = d.Min + d.Step*float64(i)
	}
	return values
}

// Objective selects the comparison direction of the sweep.
type Objective int

const (
	Maximize Objective = iota
	Minimize
)

// gridSearch exhaustively evaluates the cartesian product of dims,
// dims[0] outermost and the last dimension fastest, and returns the
// best point with its score. The comparison is strict, so the first
// candidate reaching the best score wins and sweep order is part of
// the contract. Candidates whose score callback reports not-ok are
// skipped; if no candidate ever improves on the sentinel the search
// reports domain.ErrNoRecommendation instead of returning sentinel
// zeros.
func gridSearch(
	ctx context.Context,
	dims []GridDimension,
	objective Objective,
	sentinel float64,
	score func(ctx context.Context, point []float64) (float64, bool),
) ([]float64, float64, error) {
	values := make([][]float64, len(dims))
	for i, d := range dims {
		values[i] = d.Values()
	}

	idx := make([]int, len(dims))
	point := make([]float64, len(dims))
	bestPoint := make([]float64, len(dims))
	best := sentinel
	found := false

	for {
		for i := range idx {
			point[i] = values[i][idx[i]]
		}

		if v, ok := score(ctx, point); ok {
			better := (objective == Maximize && v > best) ||
				(objective == Minimize && v < best)
			if better {
				best = v
				copy(bestPoint, point)
				found = true
			}
		}

		// Odometer increment, last dimension fastest.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(values[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}

	if !found {
		return nil, 0, domain.ErrNoRecommendation
	}
	return bestPoint, best, nil
}
